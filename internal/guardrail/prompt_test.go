package guardrail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/makao-group/advisor-cli/internal/model"
)

func TestGuardrail_InjectContext(t *testing.T) {
	g := New()

	out := g.InjectContext("List three factors to weigh.", nil)
	assert.True(t, strings.HasPrefix(out, "IMPORTANT SAFETY GUIDELINES:"))
	assert.True(t, strings.HasSuffix(out, "List three factors to weigh."))
	assert.NotContains(t, out, "User Context:")
}

func TestGuardrail_InjectContextWithRequirements(t *testing.T) {
	g := New()

	req := &model.HousingRequirements{
		MonthlyBudget:     100000,
		TargetLocation:    "Nairobi",
		WorkplaceLocation: "Prestige Plaza",
	}
	out := g.InjectContext("Summarize the analysis.", req)
	assert.Contains(t, out, "User Context:")
	assert.Contains(t, out, "- Budget: KES 100000")
	assert.Contains(t, out, "- Location: Nairobi")
	assert.Contains(t, out, "- Workplace: Prestige Plaza")
}

func TestGuardrail_InjectContextUnspecifiedFields(t *testing.T) {
	g := New()

	out := g.InjectContext("Summarize.", &model.HousingRequirements{})
	assert.Contains(t, out, "- Budget: Not specified")
	assert.Contains(t, out, "- Location: Not specified")
}

func TestGuardrail_PostprocessReplacements(t *testing.T) {
	g := New()

	tests := []struct {
		in      string
		absent  string
		present string
	}{
		{"Kilimani is safe for families.", "is safe", "has various characteristics to consider"},
		{"You should never walk there.", "never", "often"},
		{"This is definitely the best choice.", "definitely", "may be considered"},
		{"It has the highest crime figures.", "highest crime", "various considerations"},
		{"This area is full of options.", "This area is", "factors to consider in"},
	}
	for _, tt := range tests {
		out := g.Postprocess(tt.in)
		assert.NotContains(t, strings.ToLower(out), tt.absent)
		assert.Contains(t, out, tt.present)
	}
}

func TestGuardrail_PostprocessAppendsFooter(t *testing.T) {
	g := New()

	out := g.Postprocess("Some balanced considerations about both options.")
	assert.Contains(t, out, "*This is advisory information.")

	// Already-disclaimed text is left alone.
	again := g.Postprocess(out)
	assert.Equal(t, 1, strings.Count(again, "*This is advisory information."))
}
