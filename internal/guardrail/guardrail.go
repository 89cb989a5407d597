package guardrail

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/makao-group/advisor-cli/internal/model"
)

// Guardrail holds the compiled pattern tables. It is safe for concurrent
// use; nothing is mutated after New returns.
type Guardrail struct {
	stereotypes []*regexp.Regexp
	typeGroups  []queryTypeGroup
	places      []string
	negatives   []string
}

// New compiles the default pattern tables into a Guardrail.
func New() *Guardrail {
	g := &Guardrail{
		places:    stereotypedPlaces,
		negatives: negativeFramings,
	}
	for _, src := range stereotypePatternSrcs {
		g.stereotypes = append(g.stereotypes, regexp.MustCompile(src))
	}
	for _, grp := range queryTypeGroupSrcs {
		compiled := queryTypeGroup{queryType: grp.queryType}
		for _, src := range grp.srcs {
			compiled.patterns = append(compiled.patterns, regexp.MustCompile(src))
		}
		g.typeGroups = append(g.typeGroups, compiled)
	}
	return g
}

// Classify determines the query type. Type-specific groups are tried in
// priority order first; the generic stereotype table is the fallback.
// Empty or unremarkable input is standard.
func (g *Guardrail) Classify(text string) model.QueryType {
	lower := strings.ToLower(text)

	for _, grp := range g.typeGroups {
		for _, p := range grp.patterns {
			if p.MatchString(lower) {
				return grp.queryType
			}
		}
	}

	for _, p := range g.stereotypes {
		if p.MatchString(lower) {
			return model.QueryStereotypical
		}
	}

	return model.QueryStandard
}

// DetectStereotype reports whether the text contains area stereotyping,
// and the matched pattern text when it does. A stereotyped place name
// co-occurring with a negative-framing word also counts, with no
// proximity requirement.
func (g *Guardrail) DetectStereotype(text string) (bool, string) {
	lower := strings.ToLower(text)

	for _, p := range g.stereotypes {
		if m := p.FindString(lower); m != "" {
			return true, m
		}
	}

	for _, place := range g.places {
		if !strings.Contains(lower, place) {
			continue
		}
		for _, word := range g.negatives {
			if strings.Contains(lower, word) {
				return true, place + " + " + word
			}
		}
	}

	return false, ""
}

// ExtractFlaggedPlace returns the first stereotyped place mentioned in
// the text, or "" when none is.
func (g *Guardrail) ExtractFlaggedPlace(text string) string {
	lower := strings.ToLower(text)
	for _, place := range g.places {
		if strings.Contains(lower, place) {
			return place
		}
	}
	return ""
}

// DisclaimerFor returns the fixed advisory disclaimer for a query type,
// or "" for standard queries.
func (g *Guardrail) DisclaimerFor(queryType model.QueryType) string {
	switch queryType {
	case model.QueryDangerousArea:
		return "I can help you evaluate housing options based on your specific needs, " +
			"budget, and commute considerations. Instead of labeling areas, I focus on " +
			"objective factors like lighting, transport availability, and community initiatives. " +
			"What factors matter most to you?"
	case model.QuerySafetyRanking:
		return "I don't rank neighborhoods by safety - these labels can be misleading and " +
			"perpetuate stereotypes. Instead, I can help you understand contextual factors " +
			"like street lighting, transport hours, and strategies that residents use. " +
			"What specific concerns do you have?"
	case model.QueryCrimePredict:
		return "I don't make predictions about safety outcomes. I can help you understand " +
			"situational factors you can influence - like commute timing, transport mode, " +
			"and community resources. Would you like to explore these instead?"
	case model.QueryStereotypical:
		return "I aim to provide balanced, evidence-based information without relying on " +
			"stereotypes. Every area has diverse communities with varying experiences. " +
			"I can help you understand factors to consider and strategies that work for " +
			"residents in different areas."
	case model.QueryBiased:
		return "Let me help you focus on objective factors like budget, commute, and amenities " +
			"rather than generalizations. I can also share strategies that residents in " +
			"various areas use to navigate their environments safely. What criteria matter most?"
	}
	return ""
}

// WarningFor returns the fixed stereotype warning, referencing the place
// when one was flagged.
func (g *Guardrail) WarningFor(matchedPattern, place string) string {
	if matchedPattern == "" {
		return ""
	}
	if place != "" {
		return fmt.Sprintf("I noticed you mentioned concerns about %s. "+
			"Rather than relying on generalizations, I can help you understand "+
			"specific factors like commute, budget, and amenities. "+
			"Would you like to discuss your priorities?", titleCase(place))
	}
	return "I noticed your query includes some assumptions about safety. " +
		"I aim to provide balanced, advisory information rather than perpetuating stereotypes. " +
		"Let me help you focus on specific factors relevant to your situation."
}

// Validate classifies the text, detects stereotyping, and assembles the
// full guardrail result. A query is safe only when it is standard and
// free of stereotypes; a reframed query is produced exactly when it is
// not safe.
func (g *Guardrail) Validate(text string) model.GuardrailResult {
	queryType := g.Classify(text)
	hasStereotype, pattern := g.DetectStereotype(text)

	var place string
	if hasStereotype {
		place = g.ExtractFlaggedPlace(text)
	}

	isSafe := queryType == model.QueryStandard && !hasStereotype

	result := model.GuardrailResult{
		IsSafe:             isSafe,
		QueryType:          queryType,
		AdvisoryDisclaimer: g.DisclaimerFor(queryType),
	}
	if !isSafe {
		result.ReframedQuery = g.Reframe(text, queryType)
	}
	if hasStereotype {
		result.WarningMessage = g.WarningFor(pattern, place)
	}

	if !isSafe {
		zap.L().Debug("guardrail: query flagged",
			zap.String("query_type", string(queryType)),
			zap.Bool("stereotype", hasStereotype),
		)
	}

	return result
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
