package guardrail

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/makao-group/advisor-cli/internal/model"
)

// safetyInstructions is prepended to every prompt sent to the narrative
// generator.
const safetyInstructions = `IMPORTANT SAFETY GUIDELINES:

1. You are an ADVISORY agent, not an authority. Do not make definitive claims about areas being "safe" or "dangerous".

2. Do NOT accept user stereotypes as facts. If a user says "X area is dangerous," do not repeat this as fact. Instead, focus on specific factors.

3. Focus on TRADE-OFFS (cost vs commute vs amenities) rather than predictions or labels.

4. Present BALANCED perspectives - every area has diverse communities and experiences.

5. Use neutral language: "factors to consider" instead of "dangerous areas".

6. Include advisory language: "Based on your criteria..." not "You should...".

7. Acknowledge uncertainty: "Factors to consider include..." not "This area is safe."

Remember: Your role is to help users make informed decisions, not to label neighborhoods.`

// advisoryFooter is appended by Postprocess when the generated text
// carries no disclaimer-like language of its own.
const advisoryFooter = "\n\n*This is advisory information. Always visit areas personally and consult local sources for the most current information.*"

// postprocessRules strip residual authoritative or absolute phrasing
// from generated text.
var postprocessRules = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\b(this area is|these areas are|that area is)\b`), "factors to consider in"},
	{regexp.MustCompile(`(?i)\b(is safe|is dangerous|is risky|is unsafe)\b`), "has various characteristics to consider"},
	{regexp.MustCompile(`(?i)\b(guarantee|certain|definitely|will be)\b`), "may be considered"},
	{regexp.MustCompile(`(?i)\b(never|always)\b`), "often"},
	{regexp.MustCompile(`(?i)\b(most dangerous|safest|highest crime)\b`), "various considerations"},
}

// InjectContext prepends the safety-instruction block, and a short user
// context block when requirements are given, to a prompt. Pure string
// concatenation.
func (g *Guardrail) InjectContext(prompt string, req *model.HousingRequirements) string {
	var b strings.Builder
	b.WriteString(safetyInstructions)

	if req != nil {
		b.WriteString("\n\nUser Context:\n")
		fmt.Fprintf(&b, "- Budget: %s\n", orUnspecified(formatBudget(req.MonthlyBudget)))
		fmt.Fprintf(&b, "- Location: %s\n", orUnspecified(req.TargetLocation))
		fmt.Fprintf(&b, "- Workplace: %s\n", orUnspecified(req.WorkplaceLocation))
	}

	b.WriteString("\n")
	b.WriteString(prompt)
	return b.String()
}

// Postprocess rewrites residual authoritative phrasing in generated text
// and appends the advisory footer when no disclaimer is present.
func (g *Guardrail) Postprocess(response string) string {
	cleaned := response
	for _, rule := range postprocessRules {
		cleaned = rule.pattern.ReplaceAllString(cleaned, rule.replacement)
	}

	if !strings.Contains(strings.ToLower(cleaned), "advisory") {
		cleaned += advisoryFooter
	}

	return cleaned
}

func formatBudget(budget float64) string {
	if budget <= 0 {
		return ""
	}
	return fmt.Sprintf("KES %.0f", budget)
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
