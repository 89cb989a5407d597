package guardrail

import (
	"regexp"
	"strings"

	"github.com/makao-group/advisor-cli/internal/model"
)

// Reframe substitution tables, compiled once. All substitutions are
// case-insensitive and replace judgemental or predictive phrasing with
// neutral trade-off phrasing.
var (
	reframeDangerousArea = regexp.MustCompile(`(?i)(which.*dangerous|which.*unsafe|areas.*dangerous|areas.*unsafe)`)

	reframeRankingLabels = regexp.MustCompile(`(?i)(most safe|most dangerous|safest|best.*safety|worst.*safety)`)
	reframeRankingWhich  = regexp.MustCompile(`(?i)(which.*area|which.*neighborhood)`)

	reframePrediction = regexp.MustCompile(`(?i)(will.*happen|likely|crime probability|predict)`)
)

// Clarifying sentences appended per query type. Appending is guarded so
// reframing already-reframed text never doubles them up.
var clarifiers = map[model.QueryType]string{
	model.QueryDangerousArea: ". I'm interested in understanding trade-offs between safety, budget, and commute.",
	model.QuerySafetyRanking: ". I'd like to weigh objective factors for myself rather than rely on labels.",
	model.QueryCrimePredict:  ". I'm interested in the situational factors I can influence.",
	model.QueryStereotypical: ". I'd like to understand the trade-offs between different housing options.",
	model.QueryBiased:        ". I'd like to understand the trade-offs between different housing options.",
}

// Reframe rewrites a flagged query into neutral, advisory phrasing and
// appends the clarifying sentence for the query type. Standard queries
// pass through unchanged. Already-neutral phrasing is left alone, so
// re-running Reframe on its own output does not re-trigger replacement
// or re-append the clarifier.
func (g *Guardrail) Reframe(text string, queryType model.QueryType) string {
	reframed := text

	switch queryType {
	case model.QueryDangerousArea:
		reframed = reframeDangerousArea.ReplaceAllString(reframed, "what factors should I consider for")

	case model.QuerySafetyRanking:
		reframed = reframeRankingLabels.ReplaceAllString(reframed, "with various safety considerations")
		reframed = reframeRankingWhich.ReplaceAllString(reframed, "what should I consider when choosing")

	case model.QueryCrimePredict:
		reframed = reframePrediction.ReplaceAllString(reframed, "what situational factors affect")

	case model.QueryStereotypical, model.QueryBiased:
		if place := g.ExtractFlaggedPlace(reframed); place != "" {
			sub := regexp.MustCompile(`(?i)\b(` + place + `.*dangerous|` + place + `.*unsafe|` + place + `.*bad|avoid ` + place + `|never ` + place + `)\b`)
			replacement := "I have some concerns about " + titleCase(place) + ". What are the key factors I should consider?"
			reframed = sub.ReplaceAllString(reframed, replacement)
		}

	default:
		return text
	}

	if clarifier, ok := clarifiers[queryType]; ok && !strings.Contains(reframed, clarifier) {
		reframed += clarifier
	}

	return reframed
}
