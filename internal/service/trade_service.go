package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tradescope/internal/models"
	"tradescope/internal/repository"
	"tradescope/internal/stream"
)

type TradeService struct {
	Repo   repository.Repository
	Events *stream.Hub
}

type CreateTradeInput struct {
	AccountID        string
	Date             time.Time
	Instrument       string
	Type             string
	PnL              decimal.Decimal
	Risk             *decimal.Decimal
	PnLPercent       *decimal.Decimal
	Size             *decimal.Decimal
	TradingViewLink  string
	FollowedStrategy bool
	Notes            string
}

type CreatePayoutInput struct {
	AccountID string
	Date      time.Time
	Amount    decimal.Decimal
	Notes     string
}

// Create records a trade. Reward-to-risk is derived once at write time
// from pnl over risk; it is never recomputed afterwards.
func (s *TradeService) Create(ctx context.Context, userID string, input CreateTradeInput) (*models.Trade, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	account, err := s.requireAccount(ctx, userID, input.AccountID)
	if err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, invalid("trade date is required")
	}

	tradeType := strings.ToUpper(strings.TrimSpace(input.Type))
	if tradeType != "" && tradeType != models.TradeTypeLong && tradeType != models.TradeTypeShort {
		return nil, invalid("trade type must be LONG or SHORT")
	}
	if input.Risk != nil && input.Risk.Sign() < 0 {
		return nil, invalid("risk cannot be negative")
	}

	var rr *decimal.Decimal
	if input.Risk != nil && input.Risk.Sign() > 0 {
		v := input.PnL.Div(*input.Risk).Round(4)
		rr = &v
	}

	item := &models.Trade{
		ID:               uuid.NewString(),
		UserID:           userID,
		AccountID:        account.ID,
		Date:             dateOnly(input.Date),
		Instrument:       optional(input.Instrument),
		Type:             optional(tradeType),
		PnL:              input.PnL,
		Risk:             input.Risk,
		RR:               rr,
		PnLPercent:       input.PnLPercent,
		Size:             input.Size,
		TradingViewLink:  optional(input.TradingViewLink),
		FollowedStrategy: input.FollowedStrategy,
		Notes:            optional(input.Notes),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Repo.InsertTrade(ctx, item); err != nil {
		return nil, err
	}
	s.Events.Publish(stream.Event{Type: stream.EventTradeCreated, UserID: userID, AccountID: account.ID})
	return item, nil
}

// CreatePayout records a capital withdrawal as a payout row. The row's pnl
// is always the negative magnitude of the amount so capital sums stay a
// single addition over all rows.
func (s *TradeService) CreatePayout(ctx context.Context, userID string, input CreatePayoutInput) (*models.Trade, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	account, err := s.requireAccount(ctx, userID, input.AccountID)
	if err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, invalid("payout date is required")
	}
	if input.Amount.Sign() == 0 {
		return nil, invalid("payout amount is required")
	}

	item := &models.Trade{
		ID:        uuid.NewString(),
		UserID:    userID,
		AccountID: account.ID,
		Date:      dateOnly(input.Date),
		PnL:       input.Amount.Abs().Neg(),
		Notes:     optional(input.Notes),
		IsPayout:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.InsertTrade(ctx, item); err != nil {
		return nil, err
	}
	s.Events.Publish(stream.Event{Type: stream.EventTradeCreated, UserID: userID, AccountID: account.ID})
	return item, nil
}

func (s *TradeService) List(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, int64, error) {
	if s == nil || s.Repo == nil {
		return nil, 0, nil
	}
	items, err := s.Repo.ListTrades(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Repo.CountTrades(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *TradeService) Delete(ctx context.Context, userID, id string) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	if err := s.Repo.DeleteTrade(ctx, userID, id); err != nil {
		return err
	}
	s.Events.Publish(stream.Event{Type: stream.EventTradeDeleted, UserID: userID})
	return nil
}

func (s *TradeService) requireAccount(ctx context.Context, userID, accountID string) (*models.Account, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, invalid("account id is required")
	}
	account, err := s.Repo.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}
	return account, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
