// Package plan maps subscription plans to the limits and features
// they unlock.
package plan

import "tradescope/internal/models"

const (
	Starter   = "starter"
	Pro       = "pro"
	Unlimited = "unlimited"
)

const (
	FeatureGlobalStats = "globalStats"
	FeaturePlaybook    = "playbook"
	FeatureExport      = "export"
)

// UnlimitedAccounts marks a plan with no account cap.
const UnlimitedAccounts = -1

type Plan struct {
	Name        string
	MaxAccounts int
	Features    []string
}

var plans = map[string]Plan{
	Starter: {
		Name:        Starter,
		MaxAccounts: 1,
		Features:    nil,
	},
	Pro: {
		Name:        Pro,
		MaxAccounts: 3,
		Features:    []string{FeatureGlobalStats, FeaturePlaybook},
	},
	Unlimited: {
		Name:        Unlimited,
		MaxAccounts: UnlimitedAccounts,
		Features:    []string{FeatureGlobalStats, FeaturePlaybook, FeatureExport},
	},
}

// Get returns the plan for name, falling back to starter for unknown
// or empty names.
func Get(name string) Plan {
	if p, ok := plans[name]; ok {
		return p
	}
	return plans[Starter]
}

func ForProfile(profile *models.Profile) Plan {
	if profile == nil {
		return plans[Starter]
	}
	return Get(profile.Plan)
}

func (p Plan) HasFeature(feature string) bool {
	for _, f := range p.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// AllowsAccounts reports whether a plan permits creating one more
// account given the current active count.
func (p Plan) AllowsAccounts(active int64) bool {
	if p.MaxAccounts == UnlimitedAccounts {
		return true
	}
	return active < int64(p.MaxAccounts)
}

// HasActiveSubscription reports whether the profile's subscription
// entitles it to paid features. An empty status is treated as active
// so self-hosted deployments work without a billing backend.
func HasActiveSubscription(profile *models.Profile) bool {
	if profile == nil {
		return false
	}
	switch profile.SubscriptionStatus {
	case "", "active", "trialing":
		return true
	}
	return false
}
