package risk

import (
	"strings"

	"github.com/makao-group/advisor-cli/internal/model"
)

// Option is the commute-level view of a housing option the engine
// compares. Rent is in KES per month.
type Option struct {
	Name           string              `json:"name"`
	CommuteMinutes int                 `json:"commute_minutes"`
	TransportMode  model.TransportMode `json:"transport_mode"`
	Rent           float64             `json:"rent_kes"`
}

// CompareOptions evaluates each option under a fixed comparison context
// (evening return, living alone, unfamiliar with the area), varying only
// commute and transport, and attaches a one-line trade-off note.
func (e *Engine) CompareOptions(options []Option) []model.OptionRisk {
	results := make([]model.OptionRisk, 0, len(options))
	for _, opt := range options {
		commute := opt.CommuteMinutes
		if commute == 0 {
			commute = 30
		}
		transport := opt.TransportMode
		if transport == "" {
			transport = model.TransportMatatu
		}

		ctx := model.UserContext{
			CommuteMinutes:    commute,
			ReturnTime:        model.ReturnEvening,
			TransportMode:     transport,
			LivingArrangement: model.LivingAlone,
			FamiliarWithArea:  false,
			BudgetComfort:     0.5,
			RiskTolerance:     model.ToleranceMedium,
		}

		name := opt.Name
		if name == "" {
			name = "Unknown"
		}

		results = append(results, model.OptionRisk{
			Name:            name,
			CommuteMinutes:  commute,
			TransportMode:   transport,
			RiskProfile:     e.Evaluate(ctx),
			TradeOffSummary: optionTradeOffs(commute, opt.Rent, transport),
		})
	}
	return results
}

// optionTradeOffs renders the cost-vs-commute note and a transport-mode
// clause for a single option.
func optionTradeOffs(commute int, rent float64, transport model.TransportMode) string {
	var notes []string

	switch {
	case commute > 45 && rent < 50000:
		notes = append(notes, "Lower rent but longer commute")
	case commute < 30 && rent > 80000:
		notes = append(notes, "Shorter commute but higher rent")
	default:
		notes = append(notes, "Balanced cost and commute")
	}

	switch transport {
	case model.TransportWalking:
		notes = append(notes, "Walking access - good for health, depends on distance")
	case model.TransportMatatu:
		notes = append(notes, "Matatu access - affordable, schedule-dependent")
	case model.TransportPrivate:
		notes = append(notes, "Private transport - flexible but higher cost")
	}

	return strings.Join(notes, "; ")
}
