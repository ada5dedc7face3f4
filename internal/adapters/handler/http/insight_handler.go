package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/zenhabit/zenhabit-engine/internal/core/services"
)

type InsightHandler struct {
	session *services.SessionService
	journal *services.JournalService
	log     zerolog.Logger
}

func NewInsightHandler(session *services.SessionService, journal *services.JournalService, log zerolog.Logger) *InsightHandler {
	return &InsightHandler{
		session: session,
		journal: journal,
		log:     log,
	}
}

func (h *InsightHandler) RegisterRoutes(router *gin.RouterGroup) {
	insights := router.Group("/insights")
	{
		insights.GET("", h.Current)
		insights.POST("/refresh", h.Refresh)
	}
}

// Current reports the last fetched insight along with the loading flag the
// view layer uses to disable its refresh trigger.
func (h *InsightHandler) Current(c *gin.Context) {
	insight, loading := h.session.CurrentInsight()

	c.JSON(http.StatusOK, gin.H{
		"insight":  insight,
		"loading":  loading,
		"unlocked": h.journal.Count() >= services.MinInsightEntries,
	})
}

// Refresh runs one analysis request. Failures of the generation service
// never surface here; the response is the fallback insight in that case.
func (h *InsightHandler) Refresh(c *gin.Context) {
	insight, err := h.session.RefreshInsights(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, insight)
}
