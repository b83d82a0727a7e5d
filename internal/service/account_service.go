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

type AccountService struct {
	Repo     repository.Repository
	Profiles *ProfileService
	Events   *stream.Hub
}

type CreateAccountInput struct {
	Name        string
	PropFirm    string
	BaseCapital decimal.Decimal
}

// Create adds a trading account after checking the plan's account cap.
// Burned accounts do not count against the cap.
func (s *AccountService) Create(ctx context.Context, userID string, input CreateAccountInput) (*models.Account, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid("account name is required")
	}
	if input.BaseCapital.Sign() < 0 {
		return nil, invalid("base capital cannot be negative")
	}

	userPlan, err := s.Profiles.Plan(ctx, userID)
	if err != nil {
		return nil, err
	}
	active, err := s.Repo.CountActiveAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !userPlan.AllowsAccounts(active) {
		return nil, ErrAccountLimit
	}

	existing, err := s.Repo.GetAccountByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	item := &models.Account{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		PropFirm:    strings.TrimSpace(input.PropFirm),
		BaseCapital: input.BaseCapital,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.InsertAccount(ctx, item); err != nil {
		return nil, err
	}
	s.Events.Publish(stream.Event{Type: stream.EventAccountChanged, UserID: userID, AccountID: item.ID})
	return item, nil
}

func (s *AccountService) Get(ctx context.Context, userID, id string) (*models.Account, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	item, err := s.Repo.GetAccount(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *AccountService) List(ctx context.Context, userID string, isBurned *bool) ([]models.Account, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	asc := true
	return s.Repo.ListAccounts(ctx, repository.ListAccountsParams{
		UserID:   userID,
		IsBurned: isBurned,
		OrderBy:  "created_at",
		Asc:      &asc,
	})
}

// Update changes an account's mutable fields. Marking an account burned
// frees a plan slot; unburning re-checks the cap.
func (s *AccountService) Update(ctx context.Context, userID, id string, fields repository.UpdateAccountFields) (*models.Account, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	current, err := s.Repo.GetAccount(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	if fields.Name != nil {
		name := strings.TrimSpace(*fields.Name)
		if name == "" {
			return nil, invalid("account name is required")
		}
		if name != current.Name {
			existing, err := s.Repo.GetAccountByName(ctx, userID, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, ErrNameTaken
			}
		}
	}

	if fields.IsBurned != nil && current.IsBurned && !*fields.IsBurned {
		userPlan, err := s.Profiles.Plan(ctx, userID)
		if err != nil {
			return nil, err
		}
		active, err := s.Repo.CountActiveAccounts(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !userPlan.AllowsAccounts(active) {
			return nil, ErrAccountLimit
		}
	}

	if err := s.Repo.UpdateAccount(ctx, userID, id, fields); err != nil {
		return nil, err
	}
	s.Events.Publish(stream.Event{Type: stream.EventAccountChanged, UserID: userID, AccountID: id})
	return s.Repo.GetAccount(ctx, userID, id)
}

// Delete removes the account together with its trades and snapshots.
func (s *AccountService) Delete(ctx context.Context, userID, id string) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	current, err := s.Repo.GetAccount(ctx, userID, id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotFound
	}
	if err := s.Repo.DeleteAccountCascade(ctx, userID, id); err != nil {
		return err
	}
	s.Events.Publish(stream.Event{Type: stream.EventAccountChanged, UserID: userID, AccountID: id})
	return nil
}
