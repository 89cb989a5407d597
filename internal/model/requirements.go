package model

// HousingRequirements is the record the requirement-extraction step
// produces from a user conversation. Unset categorical fields fall back
// to the evaluation defaults when mapped to a UserContext.
type HousingRequirements struct {
	HasAllDetails     bool              `json:"has_all_details"`
	CurrentLocation   string            `json:"current_location,omitempty"`
	TargetLocation    string            `json:"target_location,omitempty"`
	WorkplaceLocation string            `json:"workplace_location,omitempty"`
	MonthlyBudget     float64           `json:"monthly_budget,omitempty"`
	Preferences       string            `json:"preferences,omitempty"`
	RiskTolerance     RiskTolerance     `json:"risk_tolerance,omitempty"`
	TypicalReturnTime ReturnTime        `json:"typical_return_time,omitempty"`
	LivingArrangement LivingArrangement `json:"living_arrangement,omitempty"`
	TransportMode     TransportMode     `json:"transport_mode,omitempty"`
	CommuteMinutes    int               `json:"commute_minutes,omitempty"`
	FamiliarWithArea  bool              `json:"familiar_with_area,omitempty"`
	HasNightActivity  bool              `json:"has_night_activities,omitempty"`
}

// UserContext maps the requirements 1:1 onto an evaluation context.
// budgetBaseline is the reference monthly cost used to derive budget
// comfort; pass 0 to keep the default comfort.
func (r HousingRequirements) UserContext(budgetBaseline float64) UserContext {
	ctx := DefaultUserContext()

	if r.CommuteMinutes > 0 {
		ctx.CommuteMinutes = r.CommuteMinutes
	}
	if r.TypicalReturnTime != "" {
		ctx.ReturnTime = r.TypicalReturnTime
	}
	if r.TransportMode != "" {
		ctx.TransportMode = r.TransportMode
	}
	if r.LivingArrangement != "" {
		ctx.LivingArrangement = r.LivingArrangement
	}
	if r.RiskTolerance != "" {
		ctx.RiskTolerance = r.RiskTolerance
	}
	ctx.FamiliarWithArea = r.FamiliarWithArea
	ctx.HasNightActivity = r.HasNightActivity
	ctx.BudgetComfort = BudgetComfort(r.MonthlyBudget, budgetBaseline)

	return ctx
}

// BudgetComfort derives a 0-1 comfort score from a monthly budget against
// a cost baseline. At or above twice the baseline the budget is fully
// comfortable; at or below half the baseline it is fully constrained.
func BudgetComfort(budget, baseline float64) float64 {
	if budget <= 0 || baseline <= 0 {
		return 0.5
	}
	ratio := budget / baseline
	switch {
	case ratio >= 2.0:
		return 1.0
	case ratio <= 0.5:
		return 0.0
	default:
		// Linear between 0.5x and 2x baseline.
		return (ratio - 0.5) / 1.5
	}
}
