package tradeoff

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/makao-group/advisor-cli/internal/model"
)

// kes formats KES amounts with grouping separators.
var kes = message.NewPrinter(language.English)

// summaryFooter closes every comparison summary.
const summaryFooter = "\n*This is advisory information. Visit areas personally and verify current rents.*"

// strengths emits threshold-gated sentences; a generic sentence when
// nothing triggers.
func strengths(name string, costScore, commuteScore, transportScore float64, amenityCount int) []string {
	var out []string

	if costScore >= 90 {
		out = append(out, fmt.Sprintf("%s offers excellent value within your budget", name))
	} else if costScore >= 75 {
		out = append(out, fmt.Sprintf("%s is reasonably priced", name))
	}

	if commuteScore >= 90 {
		out = append(out, fmt.Sprintf("Very short commute from %s", name))
	} else if commuteScore >= 75 {
		out = append(out, fmt.Sprintf("%s has a manageable commute", name))
	}

	if transportScore >= 80 {
		out = append(out, fmt.Sprintf("Multiple transport options available near %s", name))
	}

	if amenityCount >= 4 {
		out = append(out, "Good local amenities (market, shops, services)")
	}

	if len(out) == 0 {
		out = append(out, fmt.Sprintf("%s may suit your specific priorities", name))
	}

	return out
}

// tradeOffs emits cost-vs-commute crossover sentences and caveats; a
// generic balanced sentence when nothing triggers.
func tradeOffs(name string, rent float64, commute int, transportScore float64) []string {
	var out []string

	if rent < 40000 && commute > 45 {
		out = append(out, fmt.Sprintf("Lower rent in %s but longer commute", name))
	} else if rent > 70000 && commute < 30 {
		out = append(out, fmt.Sprintf("Shorter commute in %s comes with higher rent", name))
	}

	if transportScore < 60 {
		out = append(out, fmt.Sprintf("Limited transport options in %s - consider availability", name))
	}

	if rent > 60000 {
		out = append(out, "Higher rent means less flexibility for other expenses")
	}
	if commute > 60 {
		out = append(out, "Long commute reduces time for other activities")
	}

	if len(out) == 0 {
		out = append(out, fmt.Sprintf("%s offers balanced trade-offs for your criteria", name))
	}

	return out
}

// warnings flags over-budget rent, very long commutes, and absent or
// walking-only transport.
func warnings(rent, budgetMax float64, commute int, transport []string) []string {
	var out []string

	if budgetMax > 0 && rent > budgetMax {
		out = append(out, "Rent exceeds your stated budget")
	}

	if commute > 90 {
		out = append(out, "Very long commute - consider time and transport costs")
	}

	walkingOnly := len(transport) == 1 && strings.EqualFold(transport[0], string(model.TransportWalking))
	if len(transport) == 0 || walkingOnly {
		out = append(out, "Limited transport options - verify reliability")
	}

	return out
}

// keyDifferences compares only the two top-ranked options on the cost,
// commute, and transport sub-scores. A line is emitted only when the gap
// exceeds 10 points (15 for transport).
func keyDifferences(ranked []model.TradeOffScore) []string {
	if len(ranked) < 2 {
		return []string{"Only one option to compare"}
	}

	best, second := ranked[0], ranked[1]
	var out []string

	if diff := best.CostScore - second.CostScore; math.Abs(diff) > 10 {
		winner := "Lower rent option"
		if diff < 0 {
			winner = "Higher rent option"
		}
		out = append(out, fmt.Sprintf("Cost: %s scores %.0f%% better", winner, math.Abs(diff)))
	}

	if diff := best.CommuteScore - second.CommuteScore; math.Abs(diff) > 10 {
		winner := "Shorter commute"
		if diff < 0 {
			winner = "Longer commute"
		}
		out = append(out, fmt.Sprintf("Commute: %s option scores %.0f%% better", winner, math.Abs(diff)))
	}

	diff := best.PriorityScores[model.PriorityTransport] - second.PriorityScores[model.PriorityTransport]
	if math.Abs(diff) > 15 {
		winner := "Better transport"
		if diff < 0 {
			winner = "Limited transport"
		}
		out = append(out, fmt.Sprintf("Transport: %s option is %.0f%% better", winner, math.Abs(diff)))
	}

	return out
}

// summary names the top option, its top two strengths, its first
// trade-off and warning, and closes with the advisory footer.
func (a *Analyzer) summary(ranked []model.TradeOffScore, budgetMax float64) string {
	if len(ranked) == 0 {
		return "No options to compare."
	}

	best := ranked[0]

	var b strings.Builder
	b.WriteString(kes.Sprintf("Based on your criteria and budget of KES %d:\n\n", int64(budgetMax)))
	fmt.Fprintf(&b, "**%s** appears to offer the best balance with:\n", best.OptionName)

	for i, s := range best.Strengths {
		if i >= 2 {
			break
		}
		fmt.Fprintf(&b, "• %s\n", s)
	}

	keyTradeOff := "Balanced across criteria"
	if len(best.TradeOffs) > 0 {
		keyTradeOff = best.TradeOffs[0]
	}
	fmt.Fprintf(&b, "\nKey trade-off: %s\n", keyTradeOff)

	if len(best.Warnings) > 0 {
		fmt.Fprintf(&b, "\n⚠️  Note: %s\n", best.Warnings[0])
	}

	b.WriteString(summaryFooter)
	return b.String()
}
