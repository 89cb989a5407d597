// Package risk implements deterministic rule-based evaluation of
// situational risk factors. Rules are driven by the user's own context
// (commute, timing, transport, arrangement); the engine never labels
// areas and never consumes crime or geospatial data.
package risk

import (
	"github.com/makao-group/advisor-cli/internal/model"
)

// Rule is one entry in the engine's rule table. Check is a pure predicate
// over the user context; a rule with a nil Check is skipped during
// evaluation rather than treated as an error.
type Rule struct {
	ID          string
	Name        string
	Check       func(model.UserContext) bool
	Description string
	Mitigation  string
}

// ruleCommuteDuration is the only rule whose triggered level depends on
// thresholds rather than defaulting to moderate.
const ruleCommuteDuration = "commute_duration"

// DefaultRules returns the engine's built-in rule table, in evaluation
// order.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:   ruleCommuteDuration,
			Name: "Long Commute Duration",
			Check: func(ctx model.UserContext) bool {
				return ctx.CommuteMinutes > 60
			},
			Description: "Long commute times increase exposure to various situations",
			Mitigation:  "Consider options closer to workplace or adjust timing",
		},
		{
			ID:   "night_return",
			Name: "Night Return Time",
			Check: func(ctx model.UserContext) bool {
				return ctx.ReturnTime == model.ReturnNight
			},
			Description: "Returning late at night may have different considerations",
			Mitigation:  "Plan reliable transport options in advance",
		},
		{
			ID:   "evening_return",
			Name: "Evening Return Time",
			Check: func(ctx model.UserContext) bool {
				return ctx.ReturnTime == model.ReturnEvening
			},
			Description: "Evening returns may have different transport availability",
			Mitigation:  "Check matatu/bus schedules for evening availability",
		},
		{
			ID:   "walking_commute",
			Name: "Walking as Primary Transport",
			Check: func(ctx model.UserContext) bool {
				return ctx.TransportMode == model.TransportWalking
			},
			Description: "Walking entire commute depends on distance and route",
			Mitigation:  "Ensure route is well-lit and populated during your travel times",
		},
		{
			ID:   "bodaboda_commute",
			Name: "Bodaboda Transport",
			Check: func(ctx model.UserContext) bool {
				return ctx.TransportMode == model.TransportBodaboda
			},
			Description: "Bodaboda transport is common but safety depends on helmet use and rider behavior",
			Mitigation:  "Always wear helmet, agree on fare before riding",
		},
		{
			ID:   "alone_living",
			Name: "Living Alone",
			Check: func(ctx model.UserContext) bool {
				return ctx.LivingArrangement == model.LivingAlone
			},
			Description: "Living alone means no immediate household support",
			Mitigation:  "Establish local contacts and emergency contacts",
		},
		{
			ID:   "new_area",
			Name: "New to Area",
			Check: func(ctx model.UserContext) bool {
				return !ctx.FamiliarWithArea
			},
			Description: "Unfamiliarity with an area means learning local norms and routes",
			Mitigation:  "Spend time exploring the area during daytime first",
		},
		{
			ID:   "budget_tight",
			Name: "Tight Budget Constraints",
			Check: func(ctx model.UserContext) bool {
				return ctx.BudgetComfort < 0.7
			},
			Description: "Very tight budgets may limit housing options to less central areas",
			Mitigation:  "Consider commute trade-offs vs housing quality",
		},
	}
}

// generalRecommendations are appended to every profile after the
// per-factor mitigations, in fixed order, regardless of which rules fired.
var generalRecommendations = []string{
	// Transport safety
	"• Consider verified ride-hailing services for late-night travel",
	"• Research women-only matatu options if applicable",
	"• Always agree on fares before using bodaboda",
	// Digital safety
	"• Use mobile payment apps to minimize cash handling",
	"• Share your travel itinerary with a trusted contact",
	"• Keep phone charged and emergency numbers saved",
	// Community resources
	"• Join local neighborhood WhatsApp groups for real-time info",
	"• Connect with residents' association for community updates",
	"• Explore the area during daytime to build familiarity",
}
