package model

// UserContext holds the situational facts one risk evaluation runs against.
// It is created per evaluation and never mutated afterwards.
type UserContext struct {
	CommuteMinutes    int               `json:"commute_minutes"`
	ReturnTime        ReturnTime        `json:"return_time"`
	TransportMode     TransportMode     `json:"transport_mode"`
	LivingArrangement LivingArrangement `json:"living_arrangement"`
	FamiliarWithArea  bool              `json:"familiar_with_area"`
	BudgetComfort     float64           `json:"budget_comfort"`
	HasNightActivity  bool              `json:"has_night_activities"`
	RiskTolerance     RiskTolerance     `json:"risk_tolerance"`
}

// DefaultUserContext returns the context used when the caller supplies
// nothing: half-hour matatu commute, evening return, living alone,
// unfamiliar with the area.
func DefaultUserContext() UserContext {
	return UserContext{
		CommuteMinutes:    30,
		ReturnTime:        ReturnEvening,
		TransportMode:     TransportMatatu,
		LivingArrangement: LivingAlone,
		FamiliarWithArea:  false,
		BudgetComfort:     0.5,
		RiskTolerance:     ToleranceMedium,
	}
}
