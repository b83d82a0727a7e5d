package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradescope/internal/auth"
	"tradescope/internal/service"
)

type DashboardHandler struct {
	Stats *service.StatsService
}

func (h *DashboardHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/dashboard")
	g.GET("/:account_id", h.dashboard)
	g.GET("/:account_id/calendar", h.calendar)
	g.GET("/:account_id/equity-history", h.equityHistory)
}

// @Summary Account dashboard
// @Tags dashboard
// @Param account_id path string true "account id"
// @Param month query int false "calendar month (1-12)"
// @Param year query int false "calendar year"
// @Success 200 {object} apiResponse
// @Router /api/v1/dashboard/{account_id} [get]
func (h *DashboardHandler) dashboard(c *gin.Context) {
	if h.Stats == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	now := time.Now().UTC()
	month, year := monthYearQuery(c, now)
	data, err := h.Stats.Dashboard(c.Request.Context(), auth.UserID(c), c.Param("account_id"), month, year, now)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, data, nil)
}

// @Summary Month calendar grid
// @Tags dashboard
// @Param account_id path string true "account id"
// @Param month query int false "month (1-12)"
// @Param year query int false "year"
// @Success 200 {object} apiResponse
// @Router /api/v1/dashboard/{account_id}/calendar [get]
func (h *DashboardHandler) calendar(c *gin.Context) {
	if h.Stats == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	month, year := monthYearQuery(c, time.Now().UTC())
	grid, err := h.Stats.Calendar(c.Request.Context(), auth.UserID(c), c.Param("account_id"), month, year)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, grid, nil)
}

// @Summary Daily capital snapshot history
// @Tags dashboard
// @Param account_id path string true "account id"
// @Param since query string false "inclusive start date (YYYY-MM-DD)"
// @Param limit query int false "max points"
// @Success 200 {object} apiResponse
// @Router /api/v1/dashboard/{account_id}/equity-history [get]
func (h *DashboardHandler) equityHistory(c *gin.Context) {
	if h.Stats == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	items, err := h.Stats.EquityHistory(
		c.Request.Context(),
		auth.UserID(c),
		c.Param("account_id"),
		dateQueryPtr(c, "since"),
		intQuery(c, "limit", 0),
	)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, items, nil)
}
