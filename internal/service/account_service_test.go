package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradescope/internal/models"
	"tradescope/internal/repository"
)

func newAccountService(repo *fakeRepo) *AccountService {
	return &AccountService{Repo: repo, Profiles: &ProfileService{Repo: repo}}
}

func TestCreateAccountEnforcesPlanCap(t *testing.T) {
	repo := newFakeRepo()
	repo.seedProfile("u1", "starter", "active")
	svc := newAccountService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, "u1", CreateAccountInput{Name: "Apex 50k", BaseCapital: decimal.NewFromInt(50000)})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotEmpty(t, first.ID)

	_, err = svc.Create(ctx, "u1", CreateAccountInput{Name: "Second", BaseCapital: decimal.NewFromInt(10000)})
	require.ErrorIs(t, err, ErrAccountLimit)

	// Burned accounts free up a slot.
	burned := true
	_, err = svc.Update(ctx, "u1", first.ID, repository.UpdateAccountFields{IsBurned: &burned})
	require.NoError(t, err)

	second, err := svc.Create(ctx, "u1", CreateAccountInput{Name: "Second", BaseCapital: decimal.NewFromInt(10000)})
	require.NoError(t, err)
	assert.Equal(t, "Second", second.Name)
}

func TestCreateAccountRejectsDuplicateName(t *testing.T) {
	repo := newFakeRepo()
	repo.seedProfile("u1", "pro", "active")
	svc := newAccountService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", CreateAccountInput{Name: "Main", BaseCapital: decimal.NewFromInt(1000)})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "u1", CreateAccountInput{Name: "  Main  ", BaseCapital: decimal.NewFromInt(2000)})
	require.ErrorIs(t, err, ErrNameTaken)
}

func TestCreateAccountValidation(t *testing.T) {
	repo := newFakeRepo()
	repo.seedProfile("u1", "pro", "active")
	svc := newAccountService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", CreateAccountInput{Name: "  "})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, "u1", CreateAccountInput{Name: "Neg", BaseCapital: decimal.NewFromInt(-5)})
	require.ErrorIs(t, err, ErrValidation)
}

func TestLapsedSubscriptionFallsBackToStarterCap(t *testing.T) {
	repo := newFakeRepo()
	repo.seedProfile("u1", "unlimited", "canceled")
	svc := newAccountService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", CreateAccountInput{Name: "One", BaseCapital: decimal.NewFromInt(1000)})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "u1", CreateAccountInput{Name: "Two", BaseCapital: decimal.NewFromInt(1000)})
	require.ErrorIs(t, err, ErrAccountLimit)
}

func TestUnburnRechecksPlanCap(t *testing.T) {
	repo := newFakeRepo()
	repo.seedProfile("u1", "starter", "active")
	repo.accounts["a1"] = models.Account{ID: "a1", UserID: "u1", Name: "Live", CreatedAt: time.Now()}
	repo.accounts["a2"] = models.Account{ID: "a2", UserID: "u1", Name: "Burned", IsBurned: true, CreatedAt: time.Now()}
	svc := newAccountService(repo)

	unburn := false
	_, err := svc.Update(context.Background(), "u1", "a2", repository.UpdateAccountFields{IsBurned: &unburn})
	require.ErrorIs(t, err, ErrAccountLimit)
}

func TestDeleteAccountCascades(t *testing.T) {
	repo := newFakeRepo()
	repo.seedProfile("u1", "pro", "active")
	repo.accounts["a1"] = models.Account{ID: "a1", UserID: "u1", Name: "Main"}
	repo.trades["t1"] = models.Trade{ID: "t1", UserID: "u1", AccountID: "a1", Date: time.Now()}
	svc := newAccountService(repo)

	require.NoError(t, svc.Delete(context.Background(), "u1", "a1"))
	assert.Empty(t, repo.accounts)
	assert.Empty(t, repo.trades)

	err := svc.Delete(context.Background(), "u1", "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
