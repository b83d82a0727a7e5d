package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradescope/internal/models"
)

func TestRunOnceSnapshotsActiveAccounts(t *testing.T) {
	repo := newFakeRepo()
	seedAccount(repo, "u1", "a1", "Main")
	repo.accounts["a2"] = models.Account{ID: "a2", UserID: "u1", Name: "Burned", IsBurned: true}
	repo.trades["t1"] = models.Trade{
		ID: "t1", UserID: "u1", AccountID: "a1",
		Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		PnL:  decimal.NewFromInt(300),
	}
	repo.trades["t2"] = models.Trade{
		ID: "t2", UserID: "u1", AccountID: "a1",
		Date: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
		PnL:  decimal.NewFromInt(-500), IsPayout: true,
	}
	svc := &SnapshotService{Repo: repo}

	require.NoError(t, svc.RunOnce(context.Background()))

	// Burned accounts are skipped; capital includes the payout.
	require.Len(t, repo.snapshots, 1)
	snap := repo.snapshots[0]
	assert.Equal(t, "a1", snap.AccountID)
	assert.Equal(t, "49800", snap.Capital.String())
	assert.Equal(t, "-200", snap.NetPnL.String())
}

func TestRunOnceOverwritesSameDay(t *testing.T) {
	repo := newFakeRepo()
	seedAccount(repo, "u1", "a1", "Main")
	svc := &SnapshotService{Repo: repo}
	ctx := context.Background()

	require.NoError(t, svc.RunOnce(ctx))
	require.NoError(t, svc.RunOnce(ctx))
	assert.Len(t, repo.snapshots, 1)
}
