package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"tradescope/internal/models"
	"tradescope/internal/repository"
)

// fakeRepo is the in-memory Repository used across the service tests.
type fakeRepo struct {
	profiles  map[string]models.Profile
	accounts  map[string]models.Account
	trades    map[string]models.Trade
	rules     []models.PlaybookRule
	snapshots []models.EquitySnapshot
	nextRule  uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles: map[string]models.Profile{},
		accounts: map[string]models.Account{},
		trades:   map[string]models.Trade{},
	}
}

func (f *fakeRepo) InTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (f *fakeRepo) GetProfile(_ context.Context, id string) (*models.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		item := p
		return &item, nil
	}
	return nil, nil
}

func (f *fakeRepo) UpsertProfile(_ context.Context, item *models.Profile) error {
	f.profiles[item.ID] = *item
	return nil
}

func (f *fakeRepo) InsertAccount(_ context.Context, item *models.Account) error {
	f.accounts[item.ID] = *item
	return nil
}

func (f *fakeRepo) GetAccount(_ context.Context, userID, id string) (*models.Account, error) {
	if a, ok := f.accounts[id]; ok && a.UserID == userID {
		item := a
		return &item, nil
	}
	return nil, nil
}

func (f *fakeRepo) GetAccountByName(_ context.Context, userID, name string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.UserID == userID && a.Name == strings.TrimSpace(name) {
			item := a
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListAccounts(_ context.Context, params repository.ListAccountsParams) ([]models.Account, error) {
	var out []models.Account
	for _, a := range f.accounts {
		if a.UserID != params.UserID {
			continue
		}
		if params.IsBurned != nil && a.IsBurned != *params.IsBurned {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) CountActiveAccounts(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, a := range f.accounts {
		if a.UserID == userID && !a.IsBurned {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) UpdateAccount(_ context.Context, userID, id string, fields repository.UpdateAccountFields) error {
	a, ok := f.accounts[id]
	if !ok || a.UserID != userID {
		return nil
	}
	if fields.Name != nil {
		a.Name = strings.TrimSpace(*fields.Name)
	}
	if fields.PropFirm != nil {
		a.PropFirm = strings.TrimSpace(*fields.PropFirm)
	}
	if fields.IsBurned != nil {
		a.IsBurned = *fields.IsBurned
	}
	f.accounts[id] = a
	return nil
}

func (f *fakeRepo) DeleteAccountCascade(_ context.Context, userID, id string) error {
	a, ok := f.accounts[id]
	if !ok || a.UserID != userID {
		return nil
	}
	delete(f.accounts, id)
	for tid, t := range f.trades {
		if t.AccountID == id {
			delete(f.trades, tid)
		}
	}
	kept := f.snapshots[:0]
	for _, s := range f.snapshots {
		if s.AccountID != id {
			kept = append(kept, s)
		}
	}
	f.snapshots = kept
	return nil
}

func (f *fakeRepo) ListAllActiveAccounts(_ context.Context) ([]models.Account, error) {
	var out []models.Account
	for _, a := range f.accounts {
		if !a.IsBurned {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) InsertTrade(_ context.Context, item *models.Trade) error {
	f.trades[item.ID] = *item
	return nil
}

func (f *fakeRepo) InsertTrades(_ context.Context, items []models.Trade) error {
	for _, item := range items {
		f.trades[item.ID] = item
	}
	return nil
}

func (f *fakeRepo) ListTrades(_ context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	var out []models.Trade
	for _, t := range f.trades {
		if !f.tradeMatches(t, params) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (f *fakeRepo) CountTrades(_ context.Context, params repository.ListTradesParams) (int64, error) {
	var n int64
	for _, t := range f.trades {
		if f.tradeMatches(t, params) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) tradeMatches(t models.Trade, params repository.ListTradesParams) bool {
	if t.UserID != params.UserID {
		return false
	}
	if params.AccountID != nil && t.AccountID != *params.AccountID {
		return false
	}
	if params.IsPayout != nil && t.IsPayout != *params.IsPayout {
		return false
	}
	if params.Since != nil && t.Date.Before(*params.Since) {
		return false
	}
	if params.Until != nil && !t.Date.Before(*params.Until) {
		return false
	}
	return true
}

func (f *fakeRepo) DeleteTrade(_ context.Context, userID, id string) error {
	if t, ok := f.trades[id]; ok && t.UserID == userID {
		delete(f.trades, id)
	}
	return nil
}

func (f *fakeRepo) ListPlaybookRules(_ context.Context, userID string) ([]models.PlaybookRule, error) {
	var out []models.PlaybookRule
	for _, r := range f.rules {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) InsertPlaybookRule(_ context.Context, item *models.PlaybookRule) error {
	f.nextRule++
	item.ID = f.nextRule
	f.rules = append(f.rules, *item)
	return nil
}

func (f *fakeRepo) DeletePlaybookRule(_ context.Context, userID string, id uint64) error {
	kept := f.rules[:0]
	for _, r := range f.rules {
		if r.UserID == userID && r.ID == id {
			continue
		}
		kept = append(kept, r)
	}
	f.rules = kept
	return nil
}

func (f *fakeRepo) UpsertEquitySnapshot(_ context.Context, item *models.EquitySnapshot) error {
	for i, s := range f.snapshots {
		if s.AccountID == item.AccountID && s.Date.Equal(item.Date) {
			f.snapshots[i] = *item
			return nil
		}
	}
	f.snapshots = append(f.snapshots, *item)
	return nil
}

func (f *fakeRepo) ListEquitySnapshots(_ context.Context, params repository.ListEquitySnapshotsParams) ([]models.EquitySnapshot, error) {
	var out []models.EquitySnapshot
	for _, s := range f.snapshots {
		if s.UserID != params.UserID {
			continue
		}
		if params.AccountID != nil && s.AccountID != *params.AccountID {
			continue
		}
		if params.Since != nil && s.Date.Before(*params.Since) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (f *fakeRepo) seedProfile(userID, planName, status string) {
	f.profiles[userID] = models.Profile{
		ID:                 userID,
		Plan:               planName,
		SubscriptionStatus: status,
		CreatedAt:          time.Now().UTC(),
	}
}

var _ repository.Repository = (*fakeRepo)(nil)
