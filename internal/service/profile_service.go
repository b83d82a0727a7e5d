package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"

	"tradescope/internal/models"
	"tradescope/internal/plan"
	"tradescope/internal/repository"
)

type ProfileService struct {
	Repo repository.Repository
}

// Plan resolves the user's plan, defaulting to starter when no profile row
// exists yet or the subscription has lapsed.
func (s *ProfileService) Plan(ctx context.Context, userID string) (plan.Plan, error) {
	if s == nil || s.Repo == nil || userID == "" {
		return plan.Get(plan.Starter), nil
	}
	profile, err := s.Repo.GetProfile(ctx, userID)
	if err != nil {
		return plan.Get(plan.Starter), err
	}
	if !plan.HasActiveSubscription(profile) {
		return plan.Get(plan.Starter), nil
	}
	return plan.ForProfile(profile), nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	return s.Repo.GetProfile(ctx, userID)
}

// SetPlan records a plan change and snapshots its feature switches into
// the profile row.
func (s *ProfileService) SetPlan(ctx context.Context, userID, email, planName, subscriptionStatus string) (*models.Profile, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	if userID == "" {
		return nil, invalid("user id is required")
	}
	p := plan.Get(strings.TrimSpace(planName))

	featureRaw, err := json.Marshal(p.Features)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	item := &models.Profile{
		ID:                 userID,
		Email:              strings.TrimSpace(email),
		Plan:               p.Name,
		SubscriptionStatus: strings.TrimSpace(subscriptionStatus),
		Features:           datatypes.JSON(featureRaw),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.UpsertProfile(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RequireFeature returns ErrFeatureLocked when the user's plan does not
// include the named feature.
func (s *ProfileService) RequireFeature(ctx context.Context, userID, feature string) error {
	p, err := s.Plan(ctx, userID)
	if err != nil {
		return err
	}
	if !p.HasFeature(feature) {
		return ErrFeatureLocked
	}
	return nil
}
