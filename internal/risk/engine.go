package risk

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/makao-group/advisor-cli/internal/model"
)

// Config holds the commute-duration thresholds. Commutes above
// ElevatedMinutes score elevated, above ModerateMinutes moderate,
// otherwise low.
type Config struct {
	ElevatedMinutes int `yaml:"elevated_minutes" mapstructure:"elevated_minutes"`
	ModerateMinutes int `yaml:"moderate_minutes" mapstructure:"moderate_minutes"`
}

// DefaultConfig returns the default commute thresholds.
func DefaultConfig() Config {
	return Config{
		ElevatedMinutes: 90,
		ModerateMinutes: 45,
	}
}

// ValidateConfig checks that a Config is internally consistent.
func ValidateConfig(c Config) error {
	var errs []string
	if c.ModerateMinutes < 0 {
		errs = append(errs, "moderate_minutes must be >= 0")
	}
	if c.ElevatedMinutes < c.ModerateMinutes {
		errs = append(errs, "elevated_minutes must be >= moderate_minutes")
	}
	if len(errs) > 0 {
		return eris.Errorf("risk: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Engine evaluates an ordered, read-only rule table against user
// contexts. An Engine is safe for concurrent use; it holds no mutable
// state after construction.
type Engine struct {
	rules []Rule
	cfg   Config
}

// New creates an Engine. The rule table must be non-empty and the config
// consistent; both are rejected at construction time.
func New(rules []Rule, cfg Config) (*Engine, error) {
	if len(rules) == 0 {
		return nil, eris.New("risk: rule table must not be empty")
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &Engine{rules: rules, cfg: cfg}, nil
}

// NewDefault creates an Engine with the built-in rule table and default
// thresholds.
func NewDefault() *Engine {
	e, err := New(DefaultRules(), DefaultConfig())
	if err != nil {
		// Defaults are known-valid.
		panic(err)
	}
	return e
}

// Evaluate runs every rule against the context and assembles a profile.
// Rules with a nil predicate are skipped. Evaluation never fails.
func (e *Engine) Evaluate(ctx model.UserContext) model.RiskProfile {
	var factors []model.RiskFactor
	for _, rule := range e.rules {
		if rule.Check == nil {
			continue
		}
		if !rule.Check(ctx) {
			continue
		}
		factors = append(factors, model.RiskFactor{
			FactorName:           rule.Name,
			Description:          rule.Description,
			RiskLevel:            e.factorLevel(rule, ctx),
			MitigationSuggestion: rule.Mitigation,
		})
	}

	profile := model.RiskProfile{
		OverallRiskLevel:  overallLevel(factors),
		RiskFactors:       factors,
		KeyConsiderations: considerations(factors),
		Recommendations:   recommendations(factors),
	}

	zap.L().Debug("risk: evaluation complete",
		zap.Int("commute_minutes", ctx.CommuteMinutes),
		zap.Int("factors", len(factors)),
		zap.String("overall", string(profile.OverallRiskLevel)),
	)

	return profile
}

// factorLevel determines the level for a triggered rule. Only the commute
// duration rule is threshold-graded; every other rule is moderate when
// triggered.
func (e *Engine) factorLevel(rule Rule, ctx model.UserContext) model.RiskLevel {
	if rule.ID != ruleCommuteDuration {
		return model.RiskModerate
	}
	switch {
	case ctx.CommuteMinutes > e.cfg.ElevatedMinutes:
		return model.RiskElevated
	case ctx.CommuteMinutes > e.cfg.ModerateMinutes:
		return model.RiskModerate
	default:
		return model.RiskLow
	}
}

// overallLevel derives the aggregate level from the triggered factors:
// elevated with two or more elevated factors, moderate whenever at
// least one moderate-or-worse factor exists, low otherwise.
func overallLevel(factors []model.RiskFactor) model.RiskLevel {
	var elevated, moderate int
	for _, f := range factors {
		switch f.RiskLevel {
		case model.RiskElevated:
			elevated++
		case model.RiskModerate:
			moderate++
		}
	}
	switch {
	case elevated >= 2:
		return model.RiskElevated
	case elevated >= 1 || moderate >= 1:
		return model.RiskModerate
	default:
		return model.RiskLow
	}
}

// considerations renders one line per factor, marking elevated factors.
func considerations(factors []model.RiskFactor) []string {
	out := make([]string, 0, len(factors))
	for _, f := range factors {
		marker := "•"
		if f.RiskLevel == model.RiskElevated {
			marker = "⚠️ "
		}
		out = append(out, fmt.Sprintf("%s %s: %s", marker, f.FactorName, f.Description))
	}
	return out
}

// recommendations lists the triggered mitigations followed by the fixed
// general suggestions.
func recommendations(factors []model.RiskFactor) []string {
	out := make([]string, 0, len(factors)+len(generalRecommendations))
	for _, f := range factors {
		out = append(out, "• "+f.MitigationSuggestion)
	}
	out = append(out, generalRecommendations...)
	return out
}
