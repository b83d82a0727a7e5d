package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tradescope/internal/journal"
	"tradescope/internal/models"
	"tradescope/internal/repository"
)

// SnapshotService records one equity point per active account per day so
// long-range equity charts survive trade deletions.
type SnapshotService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

// RunOnce captures today's snapshot for every active account. Re-runs on
// the same day overwrite, so the cron schedule needs no exactly-once
// guarantee.
func (s *SnapshotService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	accounts, err := s.Repo.ListAllActiveAccounts(ctx)
	if err != nil {
		return err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	var firstErr error
	for _, account := range accounts {
		if err := s.snapshotAccount(ctx, account, today); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if s.Logger != nil {
				s.Logger.Warn("equity snapshot failed",
					zap.String("account_id", account.ID),
					zap.Error(err),
				)
			}
		}
	}
	return firstErr
}

func (s *SnapshotService) snapshotAccount(ctx context.Context, account models.Account, day time.Time) error {
	trades, err := s.Repo.ListTrades(ctx, repository.ListTradesParams{
		UserID:    account.UserID,
		AccountID: &account.ID,
	})
	if err != nil {
		return err
	}

	netPnL := journal.SumPnL(trades)
	return s.Repo.UpsertEquitySnapshot(ctx, &models.EquitySnapshot{
		UserID:    account.UserID,
		AccountID: account.ID,
		Date:      day,
		Capital:   account.BaseCapital.Add(netPnL),
		NetPnL:    netPnL,
		CreatedAt: time.Now().UTC(),
	})
}
