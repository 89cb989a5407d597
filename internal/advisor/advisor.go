// Package advisor composes the guardrail, risk engine, trade-off
// analyzer, and the injected generation client into the request-scoped
// advice pipeline. The core components stay pure; all network work
// happens through the genai.Client this package is handed.
package advisor

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/makao-group/advisor-cli/internal/guardrail"
	"github.com/makao-group/advisor-cli/internal/model"
	"github.com/makao-group/advisor-cli/internal/risk"
	"github.com/makao-group/advisor-cli/internal/tradeoff"
	"github.com/makao-group/advisor-cli/pkg/genai"
)

// Advisor runs the full pipeline: validate the query, extract
// requirements, evaluate risk, compare options, and generate the
// narrative presentation.
type Advisor struct {
	guard    *guardrail.Guardrail
	engine   *risk.Engine
	analyzer *tradeoff.Analyzer
	gen      genai.Client

	budgetBaseline   float64
	workplaceMinutes int
}

// Options configures an Advisor.
type Options struct {
	BudgetBaseline   float64
	WorkplaceMinutes int
}

// New creates an Advisor with all dependencies.
func New(guard *guardrail.Guardrail, engine *risk.Engine, analyzer *tradeoff.Analyzer, gen genai.Client, opts Options) (*Advisor, error) {
	if guard == nil || engine == nil || analyzer == nil {
		return nil, eris.New("advisor: guardrail, engine, and analyzer are required")
	}
	if gen == nil {
		return nil, eris.New("advisor: generation client is required")
	}
	if opts.BudgetBaseline <= 0 {
		opts.BudgetBaseline = 50000
	}
	if opts.WorkplaceMinutes <= 0 {
		opts.WorkplaceMinutes = 30
	}
	return &Advisor{
		guard:            guard,
		engine:           engine,
		analyzer:         analyzer,
		gen:              gen,
		budgetBaseline:   opts.BudgetBaseline,
		workplaceMinutes: opts.WorkplaceMinutes,
	}, nil
}

// Result is the complete outcome of one advice request.
type Result struct {
	Guardrail    model.GuardrailResult     `json:"guardrail"`
	Requirements model.HousingRequirements `json:"requirements"`
	RiskProfile  model.RiskProfile         `json:"risk_profile"`
	Comparison   *model.TradeOffComparison `json:"comparison,omitempty"`
	Narrative    string                    `json:"narrative"`
}

// Run executes the pipeline for one query. Options may be empty, in
// which case the comparison step is skipped.
func (a *Advisor) Run(ctx context.Context, query string, options []model.HousingOption) (*Result, error) {
	log := zap.L().With(zap.Int("options", len(options)))
	log.Info("advisor: starting request")

	result := &Result{
		Guardrail: a.guard.Validate(query),
	}

	// Downstream reasoning only ever sees the reframed query.
	effective := query
	if !result.Guardrail.IsSafe {
		effective = result.Guardrail.ReframedQuery
		log.Info("advisor: query reframed",
			zap.String("query_type", string(result.Guardrail.QueryType)),
		)
	}

	req, err := a.extractRequirements(ctx, effective)
	if err != nil {
		return nil, err
	}
	result.Requirements = *req

	userCtx := req.UserContext(a.budgetBaseline)
	result.RiskProfile = a.engine.Evaluate(userCtx)

	if len(options) > 0 {
		budget := req.MonthlyBudget
		if budget <= 0 {
			budget = a.budgetBaseline
		}
		comparison := a.analyzer.AnalyzeOptions(options, budget, a.workplaceMinutes)
		result.Comparison = &comparison
	}

	prompt := buildPresentationPrompt(effective, &result.RiskProfile, result.Comparison)
	resp, err := a.gen.Generate(ctx, genai.Request{
		Prompt: a.guard.InjectContext(prompt, req),
	})
	if err != nil {
		return nil, eris.Wrap(err, "advisor: generate narrative")
	}
	result.Narrative = a.guard.Postprocess(resp.Text)

	log.Info("advisor: request complete",
		zap.String("overall_risk", string(result.RiskProfile.OverallRiskLevel)),
		zap.Bool("query_safe", result.Guardrail.IsSafe),
	)

	return result, nil
}
