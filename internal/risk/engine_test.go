package risk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makao-group/advisor-cli/internal/model"
)

func quietContext() model.UserContext {
	// Triggers no rules: short commute, daytime return, family household,
	// familiar area, comfortable budget.
	return model.UserContext{
		CommuteMinutes:    20,
		ReturnTime:        model.ReturnDaytime,
		TransportMode:     model.TransportBus,
		LivingArrangement: model.LivingFamily,
		FamiliarWithArea:  true,
		BudgetComfort:     0.9,
		RiskTolerance:     model.ToleranceMedium,
	}
}

func TestEngine_EvaluateQuietContext(t *testing.T) {
	engine := NewDefault()

	profile := engine.Evaluate(quietContext())
	assert.Empty(t, profile.RiskFactors)
	assert.Equal(t, model.RiskLow, profile.OverallRiskLevel)
	assert.Empty(t, profile.KeyConsiderations)
	// The general empowerment suggestions are always present.
	assert.Len(t, profile.Recommendations, 9)
}

func TestEngine_CommuteFactorLevels(t *testing.T) {
	engine := NewDefault()

	tests := []struct {
		name      string
		commute   int
		triggered bool
		level     model.RiskLevel
	}{
		{"below trigger", 45, false, ""},
		{"above trigger below moderate band", 61, true, model.RiskModerate},
		{"at elevated threshold", 90, true, model.RiskModerate},
		{"above elevated threshold", 91, true, model.RiskElevated},
		{"far above elevated", 150, true, model.RiskElevated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := quietContext()
			ctx.CommuteMinutes = tt.commute
			profile := engine.Evaluate(ctx)

			var commuteFactor *model.RiskFactor
			for i, f := range profile.RiskFactors {
				if f.FactorName == "Long Commute Duration" {
					commuteFactor = &profile.RiskFactors[i]
				}
			}

			if !tt.triggered {
				assert.Nil(t, commuteFactor)
				return
			}
			require.NotNil(t, commuteFactor)
			assert.Equal(t, tt.level, commuteFactor.RiskLevel)
		})
	}
}

func TestEngine_OverallElevatedNeedsTwoElevatedFactors(t *testing.T) {
	// A custom table makes elevated counts controllable.
	elevatedRule := func(id string) Rule {
		return Rule{
			ID:   ruleCommuteDuration,
			Name: id,
			Check: func(ctx model.UserContext) bool {
				return ctx.CommuteMinutes > 60
			},
			Description: "test",
			Mitigation:  "test",
		}
	}

	one, err := New([]Rule{elevatedRule("a")}, DefaultConfig())
	require.NoError(t, err)
	two, err := New([]Rule{elevatedRule("a"), elevatedRule("b")}, DefaultConfig())
	require.NoError(t, err)

	ctx := quietContext()
	ctx.CommuteMinutes = 120

	assert.Equal(t, model.RiskModerate, one.Evaluate(ctx).OverallRiskLevel,
		"one elevated factor yields a moderate overall level")
	assert.Equal(t, model.RiskElevated, two.Evaluate(ctx).OverallRiskLevel,
		"two elevated factors yield an elevated overall level")
}

func TestEngine_OverallModerateWithAnyModerateFactor(t *testing.T) {
	engine := NewDefault()

	ctx := quietContext()
	ctx.LivingArrangement = model.LivingAlone
	profile := engine.Evaluate(ctx)

	require.Len(t, profile.RiskFactors, 1)
	assert.Equal(t, model.RiskModerate, profile.OverallRiskLevel)
}

func TestEngine_EvaluateFullRiskContext(t *testing.T) {
	engine := NewDefault()

	profile := engine.Evaluate(model.UserContext{
		CommuteMinutes:    75,
		ReturnTime:        model.ReturnNight,
		TransportMode:     model.TransportMatatu,
		LivingArrangement: model.LivingAlone,
		FamiliarWithArea:  false,
		BudgetComfort:     0.4,
	})

	// commute, night return, alone, new area, tight budget.
	require.Len(t, profile.RiskFactors, 5)
	assert.Equal(t, model.RiskModerate, profile.OverallRiskLevel)

	// Factor order follows rule-table order.
	assert.Equal(t, "Long Commute Duration", profile.RiskFactors[0].FactorName)
	assert.Equal(t, "Night Return Time", profile.RiskFactors[1].FactorName)

	// Mitigations lead the recommendations, general suggestions follow.
	assert.Len(t, profile.Recommendations, 14)
	assert.Contains(t, profile.Recommendations[0], "Consider options closer to workplace")
	assert.Contains(t, profile.Recommendations[len(profile.Recommendations)-1], "Explore the area during daytime")
}

func TestEngine_ConsiderationsMarkElevatedFactors(t *testing.T) {
	engine := NewDefault()

	ctx := quietContext()
	ctx.CommuteMinutes = 120
	profile := engine.Evaluate(ctx)

	require.NotEmpty(t, profile.KeyConsiderations)
	assert.True(t, strings.HasPrefix(profile.KeyConsiderations[0], "⚠️"))

	ctx.CommuteMinutes = 70
	profile = engine.Evaluate(ctx)
	assert.True(t, strings.HasPrefix(profile.KeyConsiderations[0], "•"))
}

func TestEngine_SkipsNilPredicates(t *testing.T) {
	rules := []Rule{
		{ID: "broken", Name: "Broken Rule", Description: "d", Mitigation: "m"},
		{
			ID:   "alone",
			Name: "Living Alone",
			Check: func(ctx model.UserContext) bool {
				return ctx.LivingArrangement == model.LivingAlone
			},
			Description: "d",
			Mitigation:  "m",
		},
	}
	engine, err := New(rules, DefaultConfig())
	require.NoError(t, err)

	ctx := quietContext()
	ctx.LivingArrangement = model.LivingAlone
	profile := engine.Evaluate(ctx)

	require.Len(t, profile.RiskFactors, 1)
	assert.Equal(t, "Living Alone", profile.RiskFactors[0].FactorName)
}

func TestEngine_ConstructionValidation(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	assert.Error(t, err, "empty rule table is rejected")

	_, err = New(DefaultRules(), Config{ElevatedMinutes: 30, ModerateMinutes: 45})
	assert.Error(t, err, "inverted thresholds are rejected")

	_, err = New(DefaultRules(), Config{ElevatedMinutes: 90, ModerateMinutes: -1})
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(DefaultConfig()))
	assert.Error(t, ValidateConfig(Config{ElevatedMinutes: 10, ModerateMinutes: 45}))
}
