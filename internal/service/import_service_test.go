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

func TestImportRemapsAccountIDs(t *testing.T) {
	repo := newFakeRepo()
	svc := &ImportService{Repo: repo}

	result, err := svc.Import(context.Background(), "u1", Backup{
		Accounts: []BackupAccount{
			{ID: "src-1", Name: "Apex 50k", BaseCapital: decimal.NewFromInt(50000)},
		},
		Trades: []BackupTrade{
			{AccountID: "src-1", Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), PnL: decimal.NewFromInt(120)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AccountsCreated)
	assert.Equal(t, 1, result.TradesImported)

	require.Len(t, repo.accounts, 1)
	require.Len(t, repo.trades, 1)
	for _, trade := range repo.trades {
		// The source deployment's id never survives the import.
		assert.NotEqual(t, "src-1", trade.AccountID)
		_, ok := repo.accounts[trade.AccountID]
		assert.True(t, ok, "trade must point at the newly created account")
		assert.Equal(t, "u1", trade.UserID)
	}
}

func TestImportMergesAccountsByName(t *testing.T) {
	repo := newFakeRepo()
	repo.accounts["existing"] = models.Account{ID: "existing", UserID: "u1", Name: "Apex 50k"}
	svc := &ImportService{Repo: repo}

	result, err := svc.Import(context.Background(), "u1", Backup{
		Accounts: []BackupAccount{
			{ID: "src-1", Name: "Apex 50k", BaseCapital: decimal.NewFromInt(50000)},
		},
		Trades: []BackupTrade{
			{AccountID: "src-1", Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), PnL: decimal.NewFromInt(75)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.AccountsCreated)
	assert.Equal(t, 1, result.AccountsMerged)
	assert.Len(t, repo.accounts, 1)
	for _, trade := range repo.trades {
		assert.Equal(t, "existing", trade.AccountID)
	}
}

func TestImportSkipsOrphanAndUndatedTrades(t *testing.T) {
	repo := newFakeRepo()
	svc := &ImportService{Repo: repo}

	result, err := svc.Import(context.Background(), "u1", Backup{
		Accounts: []BackupAccount{
			{ID: "src-1", Name: "Main"},
		},
		Trades: []BackupTrade{
			{AccountID: "src-1", Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), PnL: decimal.NewFromInt(10)},
			{AccountID: "unknown", Date: time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), PnL: decimal.NewFromInt(20)},
			{AccountID: "src-1", PnL: decimal.NewFromInt(30)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TradesImported)
	assert.Equal(t, 2, result.TradesSkipped)
}

func TestImportNormalizesPayoutSign(t *testing.T) {
	repo := newFakeRepo()
	svc := &ImportService{Repo: repo}

	_, err := svc.Import(context.Background(), "u1", Backup{
		Accounts: []BackupAccount{{ID: "src-1", Name: "Main"}},
		Trades: []BackupTrade{
			{AccountID: "src-1", Date: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), PnL: decimal.NewFromInt(400), IsPayout: true},
		},
	})
	require.NoError(t, err)
	for _, trade := range repo.trades {
		assert.True(t, trade.IsPayout)
		assert.Equal(t, "-400", trade.PnL.String())
	}
}

func TestImportRejectsEmptyBackup(t *testing.T) {
	svc := &ImportService{Repo: newFakeRepo()}
	_, err := svc.Import(context.Background(), "u1", Backup{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestExportRoundTripsThroughImport(t *testing.T) {
	source := newFakeRepo()
	source.accounts["a1"] = models.Account{ID: "a1", UserID: "u1", Name: "Main", BaseCapital: decimal.NewFromInt(25000)}
	source.trades["t1"] = models.Trade{
		ID: "t1", UserID: "u1", AccountID: "a1",
		Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		PnL:  decimal.NewFromInt(150),
	}
	backup, err := (&ImportService{Repo: source}).Export(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, backup.Accounts, 1)
	require.Len(t, backup.Trades, 1)

	target := newFakeRepo()
	result, err := (&ImportService{Repo: target}).Import(context.Background(), "u2", *backup)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AccountsCreated)
	assert.Equal(t, 1, result.TradesImported)
	for _, a := range target.accounts {
		assert.Equal(t, "u2", a.UserID)
		assert.Equal(t, "25000", a.BaseCapital.String())
	}
}
