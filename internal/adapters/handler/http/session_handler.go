package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/zenhabit/zenhabit-engine/internal/core/services"
)

type SessionHandler struct {
	session *services.SessionService
	log     zerolog.Logger
}

func NewSessionHandler(session *services.SessionService, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		log:     log,
	}
}

type switchViewRequest struct {
	View string `json:"view" binding:"required"`
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	session := router.Group("/session")
	{
		session.GET("", h.Current)
		session.PUT("/view", h.SwitchView)
	}
}

func (h *SessionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"active_view": h.session.ActiveView()})
}

func (h *SessionHandler) SwitchView(c *gin.Context) {
	var req switchViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.session.SwitchView(services.View(req.View)); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"active_view": h.session.ActiveView()})
}
