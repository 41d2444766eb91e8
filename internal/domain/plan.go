package domain

// PlanDefinition is static configuration describing what a subscription tier
// may download. It is not user data.
type PlanDefinition struct {
	Plan                Plan
	MonthlyPremiumQuota int  // ignored when UnlimitedPremium is set
	UnlimitedPremium    bool
	FreeTemplateAccess  bool
	DailyDownloadCap    int // 0 = no cap; only the free plan carries one
}

// planTable maps tiers to their quota limits. The free tier has strict
// limits; upper tiers are unlimited.
var planTable = map[Plan]PlanDefinition{
	PlanFree: {
		Plan:               PlanFree,
		FreeTemplateAccess: true,
		DailyDownloadCap:   5,
	},
	PlanStarter: {
		Plan:                PlanStarter,
		MonthlyPremiumQuota: 4,
		FreeTemplateAccess:  true,
	},
	PlanPro: {
		Plan:               PlanPro,
		UnlimitedPremium:   true,
		FreeTemplateAccess: true,
	},
	PlanEnterprise: {
		Plan:               PlanEnterprise,
		UnlimitedPremium:   true,
		FreeTemplateAccess: true,
	},
	PlanTeam: {
		Plan:               PlanTeam,
		UnlimitedPremium:   true,
		FreeTemplateAccess: true,
	},
}

// LookupPlan returns the definition for a tier.
func LookupPlan(p Plan) (PlanDefinition, bool) {
	def, ok := planTable[p]
	return def, ok
}
