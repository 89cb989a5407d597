// Package model defines the shared value types for the advisor core.
//
// Categorical fields are closed string types so the boundary layer can
// serialize them verbatim. Each category is defined exactly once here;
// every other package consumes these definitions.
package model

// RiskLevel classifies situational risk. It describes a user's situation,
// never an area.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskElevated RiskLevel = "elevated"
)

// Description returns a short human-readable gloss for the level.
func (r RiskLevel) Description() string {
	switch r {
	case RiskLow:
		return "Standard precautions apply"
	case RiskModerate:
		return "Additional awareness recommended"
	case RiskElevated:
		return "Consider adjusting commute or timing"
	}
	return ""
}

// ReturnTime is the typical time a user returns home.
type ReturnTime string

const (
	ReturnDaytime ReturnTime = "daytime" // before 6 PM
	ReturnEvening ReturnTime = "evening" // 6 PM - 9 PM
	ReturnNight   ReturnTime = "night"   // after 9 PM
)

// TransportMode is a mode of transportation.
type TransportMode string

const (
	TransportWalking  TransportMode = "walking"
	TransportBodaboda TransportMode = "bodaboda"
	TransportMatatu   TransportMode = "matatu"
	TransportPrivate  TransportMode = "private"
	TransportBus      TransportMode = "bus"
)

// LivingArrangement is the user's household arrangement.
type LivingArrangement string

const (
	LivingAlone  LivingArrangement = "alone"
	LivingShared LivingArrangement = "shared"
	LivingFamily LivingArrangement = "family"
)

// RiskTolerance is the user's declared tolerance for commute and timing
// trade-offs. It is a preference, not an area property.
type RiskTolerance string

const (
	ToleranceLow    RiskTolerance = "low"
	ToleranceMedium RiskTolerance = "medium"
	ToleranceHigh   RiskTolerance = "high"
)

// QueryType classifies a free-text user query.
type QueryType string

const (
	QueryStandard      QueryType = "standard"
	QueryBiased        QueryType = "biased"
	QueryStereotypical QueryType = "stereotypical"
	QueryDangerousArea QueryType = "dangerous_area_query"
	QuerySafetyRanking QueryType = "safety_ranking"
	QueryCrimePredict  QueryType = "crime_prediction"
)

// Priority names a trade-off scoring category.
type Priority string

const (
	PrioritySafetyConcerns Priority = "safety_concerns"
	PriorityCost           Priority = "cost"
	PriorityCommute        Priority = "commute"
	PriorityAmenities      Priority = "amenities"
	PriorityTransport      Priority = "transport"
)

// AllTransportModes returns all defined transport modes.
func AllTransportModes() []TransportMode {
	return []TransportMode{
		TransportWalking,
		TransportBodaboda,
		TransportMatatu,
		TransportPrivate,
		TransportBus,
	}
}
