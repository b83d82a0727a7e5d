package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradescope/internal/auth"
	"tradescope/internal/service"
)

type ProfileHandler struct {
	Profiles *service.ProfileService
}

func (h *ProfileHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/profile")
	g.GET("", h.get)
	g.PUT("/plan", h.setPlan)
}

// @Summary Current profile and plan
// @Tags profile
// @Success 200 {object} apiResponse
// @Router /api/v1/profile [get]
func (h *ProfileHandler) get(c *gin.Context) {
	if h.Profiles == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID := auth.UserID(c)
	profile, err := h.Profiles.Get(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	userPlan, err := h.Profiles.Plan(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, gin.H{"profile": profile, "plan": userPlan}, nil)
}

type setPlanRequest struct {
	Email              string `json:"email"`
	Plan               string `json:"plan"`
	SubscriptionStatus string `json:"subscription_status"`
}

// @Summary Record a plan change
// @Tags profile
// @Param body body setPlanRequest true "plan state"
// @Success 200 {object} apiResponse
// @Router /api/v1/profile/plan [put]
func (h *ProfileHandler) setPlan(c *gin.Context) {
	if h.Profiles == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req setPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	profile, err := h.Profiles.SetPlan(c.Request.Context(), auth.UserID(c), req.Email, req.Plan, req.SubscriptionStatus)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, profile, nil)
}
