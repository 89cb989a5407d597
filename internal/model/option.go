package model

// HousingOption is a candidate housing option supplied by the caller.
// Rent is in KES per month.
type HousingOption struct {
	Name             string   `json:"name"`
	RentAmount       float64  `json:"rent_kes"`
	CommuteMinutes   int      `json:"commute_minutes"`
	TransportOptions []string `json:"transport_options"`
	Amenities        []string `json:"amenities"`
}

// TradeOffScore is the scored breakdown for a single option. All scores
// are bounded to [0,100]; TotalScore is the weighted sum of the priority
// scores under the analyzer's configured weights.
type TradeOffScore struct {
	OptionName       string               `json:"option_name"`
	TotalScore       float64              `json:"total_score"`
	CostScore        float64              `json:"cost_score"`
	CommuteScore     float64              `json:"commute_score"`
	ConvenienceScore float64              `json:"convenience_score"`
	PriorityScores   map[Priority]float64 `json:"priority_scores"`
	Strengths        []string             `json:"strengths"`
	TradeOffs        []string             `json:"trade_offs"`
	Warnings         []string             `json:"warnings"`
}

// TradeOffComparison ranks a set of scored options. RankedOrder is the
// option names sorted descending by total score, stable on ties.
type TradeOffComparison struct {
	Options        []TradeOffScore `json:"options"`
	RankedOrder    []string        `json:"ranked_order"`
	KeyDifferences []string        `json:"key_differences"`
	Summary        string          `json:"recommendation_summary"`
}
