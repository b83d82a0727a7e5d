package service

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"tradescope/internal/config"
	"tradescope/internal/export"
	"tradescope/internal/journal"
	"tradescope/internal/models"
	"tradescope/internal/plan"
	"tradescope/internal/repository"
)

type StatementService struct {
	Repo     repository.Repository
	Profiles *ProfileService
	Defaults config.StatementConfig
}

// StatementOverrides are per-request replacements for the configured
// statement targets. Nil fields keep the default.
type StatementOverrides struct {
	MaxLossPct *float64
	ObjWeekPct *float64
	ObjDayPct  *float64
}

func (s *StatementService) params(overrides StatementOverrides) journal.Params {
	pick := func(override *float64, fallback float64) decimal.Decimal {
		if override != nil {
			return decimal.NewFromFloat(*override)
		}
		return decimal.NewFromFloat(fallback)
	}
	return journal.Params{
		MaxLossPct: pick(overrides.MaxLossPct, s.Defaults.MaxLossPct),
		ObjWeekPct: pick(overrides.ObjWeekPct, s.Defaults.ObjWeekPct),
		ObjDayPct:  pick(overrides.ObjDayPct, s.Defaults.ObjDayPct),
	}
}

// Sheets computes the account's monthly statements over its non-payout
// trade history.
func (s *StatementService) Sheets(ctx context.Context, userID, accountID string, overrides StatementOverrides, now time.Time) (*models.Account, []journal.Sheet, error) {
	if s == nil || s.Repo == nil {
		return nil, nil, nil
	}
	account, err := s.Repo.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, ErrNotFound
	}

	payout := false
	trades, err := s.Repo.ListTrades(ctx, repository.ListTradesParams{
		UserID:    userID,
		AccountID: &accountID,
		IsPayout:  &payout,
	})
	if err != nil {
		return nil, nil, err
	}

	sheets := journal.BuildSheets(*account, trades, s.params(overrides), now)
	return account, sheets, nil
}

// Export renders the statements as an xlsx workbook. Plan gated behind
// the export feature. The returned name is the suggested download name.
func (s *StatementService) Export(ctx context.Context, w io.Writer, userID, accountID string, overrides StatementOverrides, now time.Time) (string, error) {
	if err := s.Profiles.RequireFeature(ctx, userID, plan.FeatureExport); err != nil {
		return "", err
	}
	account, sheets, err := s.Sheets(ctx, userID, accountID, overrides, now)
	if err != nil {
		return "", err
	}
	if err := export.WriteWorkbook(w, sheets); err != nil {
		return "", err
	}
	return export.Filename(account.Name), nil
}
