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

type ImportService struct {
	Repo   repository.Repository
	Events *stream.Hub
}

// Backup is the portable journal dump a user downloads from one
// deployment and uploads to another. Ids inside it belong to the source
// deployment and are remapped on import.
type Backup struct {
	Accounts []BackupAccount `json:"accounts"`
	Trades   []BackupTrade   `json:"trades"`
}

type BackupAccount struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	PropFirm    string          `json:"prop_firm"`
	BaseCapital decimal.Decimal `json:"base_capital"`
	IsBurned    bool            `json:"is_burned"`
}

type BackupTrade struct {
	AccountID        string           `json:"account_id"`
	Date             time.Time        `json:"date"`
	Instrument       *string          `json:"instrument"`
	Type             *string          `json:"type"`
	PnL              decimal.Decimal  `json:"pnl"`
	Risk             *decimal.Decimal `json:"risk"`
	RR               *decimal.Decimal `json:"rr"`
	PnLPercent       *decimal.Decimal `json:"pnl_percent"`
	Size             *decimal.Decimal `json:"size"`
	TradingViewLink  *string          `json:"tradingview_link"`
	FollowedStrategy bool             `json:"followed_strategy"`
	Notes            *string          `json:"notes"`
	IsPayout         bool             `json:"is_payout"`
}

type ImportResult struct {
	AccountsCreated int `json:"accounts_created"`
	AccountsMerged  int `json:"accounts_merged"`
	TradesImported  int `json:"trades_imported"`
	TradesSkipped   int `json:"trades_skipped"`
}

// Import restores a backup into the user's journal. Accounts whose name
// already exists are merged: their trades land in the existing account.
// Trades referencing an account id absent from the backup are skipped.
func (s *ImportService) Import(ctx context.Context, userID string, backup Backup) (*ImportResult, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	if len(backup.Accounts) == 0 && len(backup.Trades) == 0 {
		return nil, invalid("backup is empty")
	}

	result := &ImportResult{}
	idMap := make(map[string]string, len(backup.Accounts))
	now := time.Now().UTC()

	for _, src := range backup.Accounts {
		name := strings.TrimSpace(src.Name)
		if name == "" || src.ID == "" {
			continue
		}
		existing, err := s.Repo.GetAccountByName(ctx, userID, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			idMap[src.ID] = existing.ID
			result.AccountsMerged++
			continue
		}
		account := &models.Account{
			ID:          uuid.NewString(),
			UserID:      userID,
			Name:        name,
			PropFirm:    strings.TrimSpace(src.PropFirm),
			BaseCapital: src.BaseCapital,
			IsBurned:    src.IsBurned,
			CreatedAt:   now,
		}
		if err := s.Repo.InsertAccount(ctx, account); err != nil {
			return nil, err
		}
		idMap[src.ID] = account.ID
		result.AccountsCreated++
	}

	trades := make([]models.Trade, 0, len(backup.Trades))
	for _, src := range backup.Trades {
		accountID, ok := idMap[src.AccountID]
		if !ok || src.Date.IsZero() {
			result.TradesSkipped++
			continue
		}
		pnl := src.PnL
		if src.IsPayout {
			pnl = pnl.Abs().Neg()
		}
		trades = append(trades, models.Trade{
			ID:               uuid.NewString(),
			UserID:           userID,
			AccountID:        accountID,
			Date:             dateOnly(src.Date),
			Instrument:       src.Instrument,
			Type:             src.Type,
			PnL:              pnl,
			Risk:             src.Risk,
			RR:               src.RR,
			PnLPercent:       src.PnLPercent,
			Size:             src.Size,
			TradingViewLink:  src.TradingViewLink,
			FollowedStrategy: src.FollowedStrategy,
			Notes:            src.Notes,
			IsPayout:         src.IsPayout,
			CreatedAt:        now,
		})
	}
	if err := s.Repo.InsertTrades(ctx, trades); err != nil {
		return nil, err
	}
	result.TradesImported = len(trades)

	s.Events.Publish(stream.Event{Type: stream.EventImportDone, UserID: userID, Payload: result})
	return result, nil
}

// Export dumps the user's journal as a Backup for download.
func (s *ImportService) Export(ctx context.Context, userID string) (*Backup, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	accounts, err := s.Repo.ListAccounts(ctx, repository.ListAccountsParams{UserID: userID})
	if err != nil {
		return nil, err
	}
	trades, err := s.Repo.ListTrades(ctx, repository.ListTradesParams{UserID: userID})
	if err != nil {
		return nil, err
	}

	backup := &Backup{
		Accounts: make([]BackupAccount, 0, len(accounts)),
		Trades:   make([]BackupTrade, 0, len(trades)),
	}
	for _, a := range accounts {
		backup.Accounts = append(backup.Accounts, BackupAccount{
			ID:          a.ID,
			Name:        a.Name,
			PropFirm:    a.PropFirm,
			BaseCapital: a.BaseCapital,
			IsBurned:    a.IsBurned,
		})
	}
	for _, t := range trades {
		backup.Trades = append(backup.Trades, BackupTrade{
			AccountID:        t.AccountID,
			Date:             t.Date,
			Instrument:       t.Instrument,
			Type:             t.Type,
			PnL:              t.PnL,
			Risk:             t.Risk,
			RR:               t.RR,
			PnLPercent:       t.PnLPercent,
			Size:             t.Size,
			TradingViewLink:  t.TradingViewLink,
			FollowedStrategy: t.FollowedStrategy,
			Notes:            t.Notes,
			IsPayout:         t.IsPayout,
		})
	}
	return backup, nil
}
