package model

// RiskFactor is a single triggered situational rule with its evaluation.
type RiskFactor struct {
	FactorName           string    `json:"factor"`
	Description          string    `json:"description"`
	RiskLevel            RiskLevel `json:"level"`
	MitigationSuggestion string    `json:"mitigation"`
}

// RiskProfile is the complete result of one risk evaluation. Factor order
// follows rule-table order and is stable across runs.
type RiskProfile struct {
	OverallRiskLevel  RiskLevel    `json:"overall_risk_level"`
	RiskFactors       []RiskFactor `json:"risk_factors"`
	KeyConsiderations []string     `json:"key_considerations"`
	Recommendations   []string     `json:"recommendations"`
}

// OptionRisk is one housing option evaluated under the engine's default
// comparison context, with a one-line trade-off note.
type OptionRisk struct {
	Name            string        `json:"name"`
	CommuteMinutes  int           `json:"commute_minutes"`
	TransportMode   TransportMode `json:"transport_mode"`
	RiskProfile     RiskProfile   `json:"risk_evaluation"`
	TradeOffSummary string        `json:"trade_offs"`
}
