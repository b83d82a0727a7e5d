package plan

import (
	"testing"

	"tradescope/internal/models"
)

func TestGetFallsBackToStarter(t *testing.T) {
	if got := Get("enterprise"); got.Name != Starter {
		t.Fatalf("unknown plan resolved to %q", got.Name)
	}
	if got := Get(""); got.Name != Starter {
		t.Fatalf("empty plan resolved to %q", got.Name)
	}
	if got := Get(Pro); got.Name != Pro {
		t.Fatalf("pro resolved to %q", got.Name)
	}
}

func TestAccountCaps(t *testing.T) {
	starter := Get(Starter)
	if !starter.AllowsAccounts(0) {
		t.Fatalf("starter should allow the first account")
	}
	if starter.AllowsAccounts(1) {
		t.Fatalf("starter should cap at one account")
	}

	pro := Get(Pro)
	if !pro.AllowsAccounts(2) || pro.AllowsAccounts(3) {
		t.Fatalf("pro cap wrong")
	}

	unlimited := Get(Unlimited)
	if !unlimited.AllowsAccounts(1000) {
		t.Fatalf("unlimited should never cap")
	}
}

func TestFeatureMatrix(t *testing.T) {
	if Get(Starter).HasFeature(FeatureGlobalStats) {
		t.Fatalf("starter should not have global stats")
	}
	if !Get(Pro).HasFeature(FeaturePlaybook) {
		t.Fatalf("pro should have playbook")
	}
	if Get(Pro).HasFeature(FeatureExport) {
		t.Fatalf("pro should not have export")
	}
	if !Get(Unlimited).HasFeature(FeatureExport) {
		t.Fatalf("unlimited should have export")
	}
}

func TestHasActiveSubscription(t *testing.T) {
	if HasActiveSubscription(nil) {
		t.Fatalf("nil profile should not be active")
	}
	for _, status := range []string{"", "active", "trialing"} {
		if !HasActiveSubscription(&models.Profile{SubscriptionStatus: status}) {
			t.Fatalf("status %q should be active", status)
		}
	}
	for _, status := range []string{"canceled", "past_due", "unpaid"} {
		if HasActiveSubscription(&models.Profile{SubscriptionStatus: status}) {
			t.Fatalf("status %q should not be active", status)
		}
	}
}

func TestForProfile(t *testing.T) {
	if got := ForProfile(nil); got.Name != Starter {
		t.Fatalf("nil profile plan=%q", got.Name)
	}
	if got := ForProfile(&models.Profile{Plan: Unlimited}); got.Name != Unlimited {
		t.Fatalf("plan=%q", got.Name)
	}
}
