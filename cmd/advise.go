package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/makao-group/advisor-cli/internal/advisor"
	"github.com/makao-group/advisor-cli/internal/guardrail"
	"github.com/makao-group/advisor-cli/internal/model"
	"github.com/makao-group/advisor-cli/pkg/genai"
)

var adviseScenario string

var adviseCmd = &cobra.Command{
	Use:   "advise [query]",
	Short: "Run the full advice pipeline for a query",
	Long: `Validates the query through the guardrail, extracts requirements via
the configured generation model, evaluates situational risk, optionally
ranks housing options from a scenario file, and prints the result
including the post-processed narrative.

Requires an Anthropic API key (ADVISOR_ANTHROPIC_KEY or config file).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Anthropic.Key == "" {
			return eris.New("anthropic key not configured")
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}
		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}

		gen := genai.NewClient(genai.Config{
			APIKey:         cfg.Anthropic.Key,
			Model:          cfg.Anthropic.Model,
			MaxTokens:      cfg.Anthropic.MaxTokens,
			RequestsPerSec: cfg.Anthropic.RequestsPerSec,
		})

		adv, err := advisor.New(guardrail.New(), engine, analyzer, gen, advisor.Options{
			BudgetBaseline:   cfg.TradeOff.BudgetBaseline,
			WorkplaceMinutes: cfg.TradeOff.WorkplaceMinutes,
		})
		if err != nil {
			return err
		}

		var options []model.HousingOption
		if adviseScenario != "" {
			s, err := loadScenario(adviseScenario)
			if err != nil {
				return err
			}
			options = s.housingOptions()
		}

		result, err := adv.Run(cmd.Context(), strings.Join(args, " "), options)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	adviseCmd.Flags().StringVar(&adviseScenario, "scenario", "", "scenario file with housing options to compare")
	rootCmd.AddCommand(adviseCmd)
}
