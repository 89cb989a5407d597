package advisor

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/makao-group/advisor-cli/internal/model"
	"github.com/makao-group/advisor-cli/pkg/genai"
)

const extractionSystemPrompt = `You extract housing requirements from a user's message. Respond with a single valid JSON object and nothing else, using these keys: has_all_details (bool), current_location, target_location, workplace_location (strings), monthly_budget (number, KES), preferences (string), risk_tolerance (low|medium|high), typical_return_time (daytime|evening|night), living_arrangement (alone|shared|family), transport_mode (walking|bodaboda|matatu|private|bus), commute_minutes (number), familiar_with_area (bool), has_night_activities (bool). Omit keys you cannot determine.`

// extractRequirements asks the generation client for a structured
// requirements record and parses it. The prompt goes through the
// guardrail's safety-context injection first.
func (a *Advisor) extractRequirements(ctx context.Context, query string) (*model.HousingRequirements, error) {
	resp, err := a.gen.Generate(ctx, genai.Request{
		System: extractionSystemPrompt,
		Prompt: a.guard.InjectContext(query, nil),
	})
	if err != nil {
		return nil, eris.Wrap(err, "advisor: extract requirements")
	}

	var req model.HousingRequirements
	if err := json.Unmarshal([]byte(stripFences(resp.Text)), &req); err != nil {
		return nil, eris.Wrap(err, "advisor: parse requirements")
	}

	return &req, nil
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
