package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tradescope/internal/auth"
	"tradescope/internal/models"
	"tradescope/internal/plan"
	"tradescope/internal/repository"
	"tradescope/internal/service"
)

// PlaybookHandler manages the ordered list of trading rules a user checks
// off before entering a position.
type PlaybookHandler struct {
	Repo     repository.Repository
	Profiles *service.ProfileService
}

func (h *PlaybookHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/playbook")
	g.GET("", h.list)
	g.POST("", h.create)
	g.DELETE("/:id", h.remove)
}

// @Summary List playbook rules
// @Tags playbook
// @Success 200 {object} apiResponse
// @Router /api/v1/playbook [get]
func (h *PlaybookHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	userID := auth.UserID(c)
	if err := h.Profiles.RequireFeature(c.Request.Context(), userID, plan.FeaturePlaybook); err != nil {
		serviceError(c, err)
		return
	}
	items, err := h.Repo.ListPlaybookRules(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, items, nil)
}

type createRuleRequest struct {
	Text      string `json:"text"`
	SortOrder int    `json:"sort_order"`
}

// @Summary Add a playbook rule
// @Tags playbook
// @Param body body createRuleRequest true "rule"
// @Success 200 {object} apiResponse
// @Router /api/v1/playbook [post]
func (h *PlaybookHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	userID := auth.UserID(c)
	if err := h.Profiles.RequireFeature(c.Request.Context(), userID, plan.FeaturePlaybook); err != nil {
		serviceError(c, err)
		return
	}
	var req createRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		Error(c, http.StatusBadRequest, "rule text is required", nil)
		return
	}
	item := &models.PlaybookRule{
		UserID:    userID,
		Text:      text,
		SortOrder: req.SortOrder,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.InsertPlaybookRule(c.Request.Context(), item); err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Delete a playbook rule
// @Tags playbook
// @Param id path int true "rule id"
// @Success 200 {object} apiResponse
// @Router /api/v1/playbook/{id} [delete]
func (h *PlaybookHandler) remove(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	userID := auth.UserID(c)
	if err := h.Profiles.RequireFeature(c.Request.Context(), userID, plan.FeaturePlaybook); err != nil {
		serviceError(c, err)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Repo.DeletePlaybookRule(c.Request.Context(), userID, id); err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, gin.H{"deleted": true}, nil)
}
