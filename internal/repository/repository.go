package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tradescope/internal/models"
)

// Repository is the persistence surface the handlers and services depend
// on. Every read is scoped by user id; the store trusts the caller to pass
// the authenticated user.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Profiles
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, item *models.Profile) error

	// Accounts
	InsertAccount(ctx context.Context, item *models.Account) error
	GetAccount(ctx context.Context, userID, id string) (*models.Account, error)
	GetAccountByName(ctx context.Context, userID, name string) (*models.Account, error)
	ListAccounts(ctx context.Context, params ListAccountsParams) ([]models.Account, error)
	CountActiveAccounts(ctx context.Context, userID string) (int64, error)
	UpdateAccount(ctx context.Context, userID, id string, fields UpdateAccountFields) error
	DeleteAccountCascade(ctx context.Context, userID, id string) error
	ListAllActiveAccounts(ctx context.Context) ([]models.Account, error)

	// Trades
	InsertTrade(ctx context.Context, item *models.Trade) error
	InsertTrades(ctx context.Context, items []models.Trade) error
	ListTrades(ctx context.Context, params ListTradesParams) ([]models.Trade, error)
	CountTrades(ctx context.Context, params ListTradesParams) (int64, error)
	DeleteTrade(ctx context.Context, userID, id string) error

	// Playbook
	ListPlaybookRules(ctx context.Context, userID string) ([]models.PlaybookRule, error)
	InsertPlaybookRule(ctx context.Context, item *models.PlaybookRule) error
	DeletePlaybookRule(ctx context.Context, userID string, id uint64) error

	// Equity snapshots
	UpsertEquitySnapshot(ctx context.Context, item *models.EquitySnapshot) error
	ListEquitySnapshots(ctx context.Context, params ListEquitySnapshotsParams) ([]models.EquitySnapshot, error)
}

type ListAccountsParams struct {
	UserID   string
	IsBurned *bool
	OrderBy  string
	Asc      *bool
}

type UpdateAccountFields struct {
	Name     *string
	PropFirm *string
	IsBurned *bool
}

// ListTradesParams filters the trades table. Limit <= 0 means no limit:
// the aggregation core operates over an account's full history fetched
// wholesale, so unbounded listing is the common path here.
type ListTradesParams struct {
	UserID    string
	AccountID *string
	IsPayout  *bool
	Since     *time.Time
	Until     *time.Time
	Limit     int
	Offset    int
	OrderBy   string
	Asc       *bool
}

type ListEquitySnapshotsParams struct {
	UserID    string
	AccountID *string
	Since     *time.Time
	Limit     int
}
