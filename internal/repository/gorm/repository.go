package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tradescope/internal/models"
	"tradescope/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- Profiles ---------------------------------------------------------------

func (s *Store) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	if s == nil || s.db == nil || id == "" {
		return nil, nil
	}
	var item models.Profile
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertProfile(ctx context.Context, item *models.Profile) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "plan", "subscription_status", "features", "updated_at",
		}),
	}).Create(item).Error
}

// --- Accounts ---------------------------------------------------------------

func (s *Store) InsertAccount(ctx context.Context, item *models.Account) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetAccount(ctx context.Context, userID, id string) (*models.Account, error) {
	if s == nil || s.db == nil || userID == "" || id == "" {
		return nil, nil
	}
	var item models.Account
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("id = ?", id).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetAccountByName(ctx context.Context, userID, name string) (*models.Account, error) {
	if s == nil || s.db == nil || userID == "" {
		return nil, nil
	}
	var item models.Account
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("name = ?", strings.TrimSpace(name)).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListAccounts(ctx context.Context, params repository.ListAccountsParams) ([]models.Account, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.Account{}).
		Where("user_id = ?", params.UserID)
	if params.IsBurned != nil {
		query = query.Where("is_burned = ?", *params.IsBurned)
	}
	query = applyOrder(query, params.OrderBy, params.Asc, "created_at")
	var items []models.Account
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountActiveAccounts(ctx context.Context, userID string) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Account{}).
		Where("user_id = ?", userID).
		Where("is_burned = ?", false).
		Count(&total).Error
	return total, err
}

func (s *Store) UpdateAccount(ctx context.Context, userID, id string, fields repository.UpdateAccountFields) error {
	if s == nil || s.db == nil || userID == "" || id == "" {
		return nil
	}
	updates := map[string]any{}
	if fields.Name != nil {
		updates["name"] = strings.TrimSpace(*fields.Name)
	}
	if fields.PropFirm != nil {
		updates["prop_firm"] = strings.TrimSpace(*fields.PropFirm)
	}
	if fields.IsBurned != nil {
		updates["is_burned"] = *fields.IsBurned
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&models.Account{}).
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *Store) DeleteAccountCascade(ctx context.Context, userID, id string) error {
	if s == nil || s.db == nil || userID == "" || id == "" {
		return nil
	}
	return s.InTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Where("account_id = ?", id).
			Delete(&models.Trade{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).
			Where("account_id = ?", id).
			Delete(&models.EquitySnapshot{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).
			Where("id = ?", id).
			Delete(&models.Account{}).Error
	})
}

func (s *Store) ListAllActiveAccounts(ctx context.Context) ([]models.Account, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Account
	err := s.db.WithContext(ctx).
		Where("is_burned = ?", false).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// --- Trades -----------------------------------------------------------------

func (s *Store) InsertTrade(ctx context.Context, item *models.Trade) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) InsertTrades(ctx context.Context, items []models.Trade) error {
	if s == nil || s.db == nil || len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(items, 200).Error
}

func tradeQuery(db *gorm.DB, params repository.ListTradesParams) *gorm.DB {
	query := db.Model(&models.Trade{}).Where("user_id = ?", params.UserID)
	if params.AccountID != nil && *params.AccountID != "" {
		query = query.Where("account_id = ?", *params.AccountID)
	}
	if params.IsPayout != nil {
		query = query.Where("is_payout = ?", *params.IsPayout)
	}
	if params.Since != nil && !params.Since.IsZero() {
		query = query.Where("date >= ?", *params.Since)
	}
	if params.Until != nil && !params.Until.IsZero() {
		query = query.Where("date < ?", *params.Until)
	}
	return query
}

func (s *Store) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := tradeQuery(s.db.WithContext(ctx), params)
	query = applyOrder(query, params.OrderBy, params.Asc, "date")
	if params.Limit > 0 {
		query = query.Limit(params.Limit).Offset(normalizeOffset(params.Offset))
	}
	var items []models.Trade
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := tradeQuery(s.db.WithContext(ctx), params).Count(&total).Error
	return total, err
}

func (s *Store) DeleteTrade(ctx context.Context, userID, id string) error {
	if s == nil || s.db == nil || userID == "" || id == "" {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Delete(&models.Trade{}).Error
}

// --- Playbook ---------------------------------------------------------------

func (s *Store) ListPlaybookRules(ctx context.Context, userID string) ([]models.PlaybookRule, error) {
	if s == nil || s.db == nil || userID == "" {
		return nil, nil
	}
	var items []models.PlaybookRule
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order asc, id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertPlaybookRule(ctx context.Context, item *models.PlaybookRule) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) DeletePlaybookRule(ctx context.Context, userID string, id uint64) error {
	if s == nil || s.db == nil || userID == "" || id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Delete(&models.PlaybookRule{}).Error
}

// --- Equity snapshots -------------------------------------------------------

func (s *Store) UpsertEquitySnapshot(ctx context.Context, item *models.EquitySnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"capital", "net_pnl",
		}),
	}).Create(item).Error
}

func (s *Store) ListEquitySnapshots(ctx context.Context, params repository.ListEquitySnapshotsParams) ([]models.EquitySnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.EquitySnapshot{}).
		Where("user_id = ?", params.UserID)
	if params.AccountID != nil && *params.AccountID != "" {
		query = query.Where("account_id = ?", *params.AccountID)
	}
	if params.Since != nil && !params.Since.IsZero() {
		query = query.Where("date >= ?", *params.Since)
	}
	query = query.Order("date asc")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	var items []models.EquitySnapshot
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- helpers ----------------------------------------------------------------

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	col := strings.TrimSpace(orderBy)
	if col == "" {
		col = fallback
	}
	dir := "desc"
	if asc != nil && *asc {
		dir = "asc"
	}
	return query.Order(col + " " + dir)
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
