package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradescope/internal/auth"
	"tradescope/internal/repository"
	"tradescope/internal/service"
)

type AccountsHandler struct {
	Accounts *service.AccountService
}

func (h *AccountsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/accounts")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type createAccountRequest struct {
	Name        string `json:"name"`
	PropFirm    string `json:"prop_firm"`
	BaseCapital string `json:"base_capital"`
}

// @Summary List trading accounts
// @Tags accounts
// @Param is_burned query bool false "filter burned accounts"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts [get]
func (h *AccountsHandler) list(c *gin.Context) {
	if h.Accounts == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	items, err := h.Accounts.List(c.Request.Context(), auth.UserID(c), boolQueryPtr(c, "is_burned"))
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, items, nil)
}

// @Summary Create a trading account
// @Tags accounts
// @Param body body createAccountRequest true "account"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts [post]
func (h *AccountsHandler) create(c *gin.Context) {
	if h.Accounts == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	baseCapital, ok := parseDecimal(req.BaseCapital)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid base_capital", nil)
		return
	}
	item, err := h.Accounts.Create(c.Request.Context(), auth.UserID(c), service.CreateAccountInput{
		Name:        req.Name,
		PropFirm:    req.PropFirm,
		BaseCapital: baseCapital,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Get one trading account
// @Tags accounts
// @Param id path string true "account id"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts/{id} [get]
func (h *AccountsHandler) get(c *gin.Context) {
	if h.Accounts == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	item, err := h.Accounts.Get(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

type updateAccountRequest struct {
	Name     *string `json:"name"`
	PropFirm *string `json:"prop_firm"`
	IsBurned *bool   `json:"is_burned"`
}

// @Summary Update a trading account
// @Tags accounts
// @Param id path string true "account id"
// @Param body body updateAccountRequest true "fields to change"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts/{id} [patch]
func (h *AccountsHandler) update(c *gin.Context) {
	if h.Accounts == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Accounts.Update(c.Request.Context(), auth.UserID(c), c.Param("id"), repository.UpdateAccountFields{
		Name:     req.Name,
		PropFirm: req.PropFirm,
		IsBurned: req.IsBurned,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Delete a trading account and its trades
// @Tags accounts
// @Param id path string true "account id"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts/{id} [delete]
func (h *AccountsHandler) remove(c *gin.Context) {
	if h.Accounts == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	if err := h.Accounts.Delete(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, gin.H{"deleted": true}, nil)
}
