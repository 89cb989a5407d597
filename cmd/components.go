package main

import (
	"github.com/makao-group/advisor-cli/internal/model"
	"github.com/makao-group/advisor-cli/internal/risk"
	"github.com/makao-group/advisor-cli/internal/tradeoff"
)

// newEngine builds the risk engine from the loaded configuration.
func newEngine() (*risk.Engine, error) {
	rc := risk.DefaultConfig()
	if cfg.Risk.ElevatedMinutes > 0 {
		rc.ElevatedMinutes = cfg.Risk.ElevatedMinutes
	}
	if cfg.Risk.ModerateMinutes > 0 {
		rc.ModerateMinutes = cfg.Risk.ModerateMinutes
	}
	return risk.New(risk.DefaultRules(), rc)
}

// newAnalyzer builds the trade-off analyzer from the loaded
// configuration. Missing weights fall back to the defaults.
func newAnalyzer() (*tradeoff.Analyzer, error) {
	var weights tradeoff.Weights
	if len(cfg.TradeOff.Weights) > 0 {
		weights = make(tradeoff.Weights, len(cfg.TradeOff.Weights))
		for category, w := range cfg.TradeOff.Weights {
			weights[model.Priority(category)] = w
		}
	}
	return tradeoff.New(weights, nil)
}
