package constants

import "testing"

func TestMonthlyLimit(t *testing.T) {
	if limit, ok := MonthlyLimit(PlanFree); !ok || limit != 10 {
		t.Fatalf("free = %d/%v, want 10/true", limit, ok)
	}
	if limit, ok := MonthlyLimit(PlanPro); !ok || limit != 100 {
		t.Fatalf("pro = %d/%v, want 100/true", limit, ok)
	}
	if _, ok := MonthlyLimit(PlanUnlimited); ok {
		t.Fatal("unlimited plan reported a ceiling")
	}
	// unknown tiers fall back to the free ceiling
	if limit, ok := MonthlyLimit(PlanTier("trial")); !ok || limit != 10 {
		t.Fatalf("unknown = %d/%v, want 10/true", limit, ok)
	}
}
