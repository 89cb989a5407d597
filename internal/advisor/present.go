package advisor

import (
	"fmt"
	"strings"

	"github.com/makao-group/advisor-cli/internal/model"
)

// buildPresentationPrompt renders the structured evaluation results into
// the prompt the narrative generator consumes. The guardrail safety
// block is prepended by the caller via InjectContext.
func buildPresentationPrompt(query string, profile *model.RiskProfile, comparison *model.TradeOffComparison) string {
	var b strings.Builder

	b.WriteString("Present the following housing-decision analysis to the user in clear, ")
	b.WriteString("advisory prose. Discuss trade-offs and factors to consider; do not label ")
	b.WriteString("any area as safe or dangerous.\n\n")
	fmt.Fprintf(&b, "User query: %s\n", query)

	if profile != nil {
		fmt.Fprintf(&b, "\nSituational risk profile (overall: %s - %s):\n",
			profile.OverallRiskLevel, profile.OverallRiskLevel.Description())
		for _, f := range profile.RiskFactors {
			fmt.Fprintf(&b, "- %s (%s): %s. Mitigation: %s\n",
				f.FactorName, f.RiskLevel, f.Description, f.MitigationSuggestion)
		}
		for _, c := range profile.KeyConsiderations {
			fmt.Fprintf(&b, "%s\n", c)
		}
	}

	if comparison != nil {
		b.WriteString("\nOption comparison (ranked):\n")
		for _, name := range comparison.RankedOrder {
			for _, opt := range comparison.Options {
				if opt.OptionName != name {
					continue
				}
				fmt.Fprintf(&b, "- %s: total %.1f (cost %.0f, commute %.0f, convenience %.0f)\n",
					opt.OptionName, opt.TotalScore, opt.CostScore, opt.CommuteScore, opt.ConvenienceScore)
			}
		}
		for _, d := range comparison.KeyDifferences {
			fmt.Fprintf(&b, "- %s\n", d)
		}
		fmt.Fprintf(&b, "\n%s\n", comparison.Summary)
	}

	return b.String()
}
