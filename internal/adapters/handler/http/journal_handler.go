package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
	"github.com/zenhabit/zenhabit-engine/internal/core/services"
)

type JournalHandler struct {
	session *services.SessionService
	journal *services.JournalService
	log     zerolog.Logger
}

func NewJournalHandler(session *services.SessionService, journal *services.JournalService, log zerolog.Logger) *JournalHandler {
	return &JournalHandler{
		session: session,
		journal: journal,
		log:     log,
	}
}

type createEntryRequest struct {
	Date            string  `json:"date"`
	HappyReason     string  `json:"happy_reason"`
	AngerReason     string  `json:"anger_reason"`
	ThingsToImprove string  `json:"things_to_improve"`
	NewLearnings    string  `json:"new_learnings"`
	ScreenTime      float64 `json:"screen_time"`
	MoodScore       int     `json:"mood_score"`
}

func (h *JournalHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/entries")
	{
		entries.GET("", h.List)
		entries.POST("", h.Create)
		entries.DELETE("/:id", h.Delete)
	}
}

// List serves the full journal, newest calendar date first.
func (h *JournalHandler) List(c *gin.Context) {
	entries := domain.AllByDateDescending(h.journal.All())
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *JournalHandler) Create(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.CreateEntryInput{
		Date:            req.Date,
		HappyReason:     req.HappyReason,
		AngerReason:     req.AngerReason,
		ThingsToImprove: req.ThingsToImprove,
		NewLearnings:    req.NewLearnings,
		ScreenTime:      req.ScreenTime,
		MoodScore:       req.MoodScore,
	}

	entry, err := h.session.SubmitEntry(c.Request.Context(), input)
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		handleError(c, h.log, err)
		return
	}
	if err != nil {
		// Entry lives in memory for the rest of the session; the write
		// failure is already logged by the store.
		h.log.Warn().Str("entry_id", entry.ID).Msg("entry created without durable write")
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *JournalHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.session.DeleteEntry(c.Request.Context(), id)
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		handleError(c, h.log, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func handleError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidEntry):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, services.ErrUnknownView):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrInsightInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "an insight request is already running"})

	case errors.Is(err, services.ErrInsufficientEntries):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "insights locked",
			"message": "at least 3 entries are needed before insights can be generated",
		})

	default:
		log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
