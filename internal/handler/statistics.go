package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradescope/internal/auth"
	"tradescope/internal/service"
)

type StatisticsHandler struct {
	Stats *service.StatsService
}

func (h *StatisticsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/statistics")
	g.GET("/global", h.global)
	g.GET("/:account_id", h.account)
}

// @Summary Per-account trading statistics
// @Tags statistics
// @Param account_id path string true "account id"
// @Success 200 {object} apiResponse
// @Router /api/v1/statistics/{account_id} [get]
func (h *StatisticsHandler) account(c *gin.Context) {
	if h.Stats == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	data, err := h.Stats.Statistics(c.Request.Context(), auth.UserID(c), c.Param("account_id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, data, nil)
}

// @Summary Cross-account statistics
// @Tags statistics
// @Success 200 {object} apiResponse
// @Router /api/v1/statistics/global [get]
func (h *StatisticsHandler) global(c *gin.Context) {
	if h.Stats == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	data, err := h.Stats.Global(c.Request.Context(), auth.UserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, data, nil)
}
