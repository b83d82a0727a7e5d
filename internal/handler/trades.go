package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradescope/internal/auth"
	"tradescope/internal/repository"
	"tradescope/internal/service"
)

type TradesHandler struct {
	Trades *service.TradeService
}

func (h *TradesHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/trades")
	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/payouts", h.createPayout)
	g.DELETE("/:id", h.remove)
}

// @Summary List trades
// @Tags trades
// @Param account_id query string false "account id"
// @Param is_payout query bool false "payout rows only"
// @Param since query string false "inclusive start date (YYYY-MM-DD)"
// @Param until query string false "exclusive end date (YYYY-MM-DD)"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} apiResponse
// @Router /api/v1/trades [get]
func (h *TradesHandler) list(c *gin.Context) {
	if h.Trades == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListTradesParams{
		UserID:    auth.UserID(c),
		AccountID: strQueryPtr(c, "account_id"),
		IsPayout:  boolQueryPtr(c, "is_payout"),
		Since:     dateQueryPtr(c, "since"),
		Until:     dateQueryPtr(c, "until"),
		Limit:     limit,
		Offset:    offset,
		OrderBy:   "date",
		Asc:       boolPtr(false),
	}
	items, total, err := h.Trades.List(c.Request.Context(), params)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

type createTradeRequest struct {
	AccountID        string  `json:"account_id"`
	Date             string  `json:"date"`
	Instrument       string  `json:"instrument"`
	Type             string  `json:"type"`
	PnL              string  `json:"pnl"`
	Risk             *string `json:"risk"`
	PnLPercent       *string `json:"pnl_percent"`
	Size             *string `json:"size"`
	TradingViewLink  string  `json:"tradingview_link"`
	FollowedStrategy bool    `json:"followed_strategy"`
	Notes            string  `json:"notes"`
}

// @Summary Record a trade
// @Tags trades
// @Param body body createTradeRequest true "trade"
// @Success 200 {object} apiResponse
// @Router /api/v1/trades [post]
func (h *TradesHandler) create(c *gin.Context) {
	if h.Trades == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req createTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid date", nil)
		return
	}
	pnl, ok := parseDecimal(req.PnL)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid pnl", nil)
		return
	}
	risk, ok := parseDecimalPtr(req.Risk)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid risk", nil)
		return
	}
	pnlPercent, ok := parseDecimalPtr(req.PnLPercent)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid pnl_percent", nil)
		return
	}
	size, ok := parseDecimalPtr(req.Size)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid size", nil)
		return
	}

	item, err := h.Trades.Create(c.Request.Context(), auth.UserID(c), service.CreateTradeInput{
		AccountID:        req.AccountID,
		Date:             date,
		Instrument:       req.Instrument,
		Type:             req.Type,
		PnL:              pnl,
		Risk:             risk,
		PnLPercent:       pnlPercent,
		Size:             size,
		TradingViewLink:  req.TradingViewLink,
		FollowedStrategy: req.FollowedStrategy,
		Notes:            req.Notes,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

type createPayoutRequest struct {
	AccountID string `json:"account_id"`
	Date      string `json:"date"`
	Amount    string `json:"amount"`
	Notes     string `json:"notes"`
}

// @Summary Record a payout withdrawal
// @Tags trades
// @Param body body createPayoutRequest true "payout"
// @Success 200 {object} apiResponse
// @Router /api/v1/trades/payouts [post]
func (h *TradesHandler) createPayout(c *gin.Context) {
	if h.Trades == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req createPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid date", nil)
		return
	}
	amount, ok := parseDecimal(req.Amount)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid amount", nil)
		return
	}
	item, err := h.Trades.CreatePayout(c.Request.Context(), auth.UserID(c), service.CreatePayoutInput{
		AccountID: req.AccountID,
		Date:      date,
		Amount:    amount,
		Notes:     req.Notes,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Delete a trade
// @Tags trades
// @Param id path string true "trade id"
// @Success 200 {object} apiResponse
// @Router /api/v1/trades/{id} [delete]
func (h *TradesHandler) remove(c *gin.Context) {
	if h.Trades == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	if err := h.Trades.Delete(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, gin.H{"deleted": true}, nil)
}
