// Package guardrail classifies free-text housing queries and screens out
// area-stereotyping and authoritative-safety-claim language before any
// downstream reasoning sees the text. All matching is regular-expression
// based and deterministic; tables are compiled once at construction and
// are read-only afterwards.
package guardrail

import (
	"regexp"

	"github.com/makao-group/advisor-cli/internal/model"
)

// stereotypePatternSrcs match area-based stereotypes, safety rankings,
// authority claims, and outcome predictions. Applied to lowercased input.
var stereotypePatternSrcs = []string{
	// Area-based stereotypes
	`\b(dangerous|unsafe|risk[ey]|crime-ridden|ghetto|slum)\b`,
	`\b(avoid|stay away from|never go to)\b.*\b(area|neighborhood|place)\b`,
	`\b(people from|residents of)\b.*\b(are|is|can be)\b.*\b(dangerous|poor|criminal)\b`,
	`\b(avoid|don't live in|never move to)\s+(kibera|mathare|kiambiu|dandora|estcourt|lavington)\b`,

	// Safety ranking queries
	`\b(which|safe|dangerous|unsafe|risky)\b.*\b(area|neighborhood|place)\b`,
	`\b(best|worst|most safe|most dangerous|top)\b.*\b(area|neighborhood)\b`,
	`\b(crime rate|most dangerous|safest)\b`,

	// Authority claims
	`\b(is safe|is dangerous|will be|guarantee|certain)\b`,

	// Predictions
	`\b(will (happen|be|get)|going to|likely to)\b.*\b(robbed|attacked|harmed|crime)\b`,
}

// queryTypeGroup binds one query type to its detection patterns.
type queryTypeGroup struct {
	queryType model.QueryType
	patterns  []*regexp.Regexp
}

// queryTypeGroupSrcs are tried in order; the first group with a matching
// pattern wins. The order is a fixed priority, not a preference.
var queryTypeGroupSrcs = []struct {
	queryType model.QueryType
	srcs      []string
}{
	{model.QueryDangerousArea, []string{
		`\b(which.*dangerous|which.*unsafe|areas.*dangerous|areas.*unsafe|dangerous areas|unsafe areas)\b`,
		`\b(most dangerous|safest|highest crime)\b`,
	}},
	{model.QuerySafetyRanking, []string{
		`\b(rank|rating|score)\b.*\b(area|neighborhood|safety|security)\b`,
		`\b(safe.*rating|security.*rating|compare.*safety)\b`,
	}},
	{model.QueryCrimePredict, []string{
		`\b(will.*happen|likely.*crime|probability.*robbed|future.*crime)\b`,
		`\b(predict|forecast)\b.*\b(crime|robbery|attack)\b`,
	}},
	{model.QueryStereotypical, []string{
		`\b(kibera|mathare|kiambiu|dandora)\b.*\b(safe|dangerous|unsafe|bad)\b`,
		`\b(poor.*area|rich.*area|rich.*neighborhood)\b.*\b(safe|dangerous)\b`,
	}},
}

// stereotypedPlaces are place names that commonly attract stereotyping.
// A place co-occurring with a negative-framing word anywhere in the text
// counts as a stereotype.
var stereotypedPlaces = []string{
	"kibera", "mathare", "kiambiu", "dandora", "kangundo",
	"huruma", "bondeni", "laini saba", "githurai", "muguru",
}

// negativeFramings are the words that turn a place mention into a
// stereotype when they co-occur with it.
var negativeFramings = []string{"dangerous", "unsafe", "bad", "avoid", "never"}
