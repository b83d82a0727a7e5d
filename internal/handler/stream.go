package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradescope/internal/auth"
	"tradescope/internal/stream"
)

type StreamHandler struct {
	Hub *stream.Hub
}

func (h *StreamHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/stream", h.stream)
}

// @Summary Subscribe to journal change events over websocket
// @Tags stream
// @Success 101 {string} string "switching protocols"
// @Router /api/v1/stream [get]
func (h *StreamHandler) stream(c *gin.Context) {
	if h.Hub == nil {
		Error(c, http.StatusServiceUnavailable, "stream disabled", nil)
		return
	}
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing identity", nil)
		return
	}
	_ = h.Hub.Serve(c.Request.Context(), c.Writer, c.Request, userID)
}
