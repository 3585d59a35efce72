package constants

// PlanTier is a user's subscription plan.
type PlanTier string

const (
	PlanFree      PlanTier = "free"
	PlanPro       PlanTier = "pro"
	PlanUnlimited PlanTier = "unlimited"
)

// PlanTiers lists the valid plan values for schema validation.
var PlanTiers = []string{string(PlanFree), string(PlanPro), string(PlanUnlimited)}

// planLimits maps plan -> max successful extractions per calendar month.
// A missing entry means no ceiling.
var planLimits = map[PlanTier]int{
	PlanFree: 10,
	PlanPro:  100,
}

// SetFreeTierLimit overrides the free-plan ceiling. Called once at startup
// when FREE_TIER_MONTHLY_LIMIT is set; not safe for concurrent use.
func SetFreeTierLimit(n int) {
	if n > 0 {
		planLimits[PlanFree] = n
	}
}

// MonthlyLimit returns the extraction ceiling for a plan. ok is false for
// unlimited plans (and unknown tiers are treated as free).
func MonthlyLimit(plan PlanTier) (limit int, ok bool) {
	if plan == PlanUnlimited {
		return 0, false
	}
	if n, found := planLimits[plan]; found {
		return n, true
	}
	return planLimits[PlanFree], true
}
