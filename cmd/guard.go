package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/makao-group/advisor-cli/internal/guardrail"
)

var guardCmd = &cobra.Command{
	Use:   "guard [query]",
	Short: "Classify a query and screen for stereotyping language",
	Long: `Classifies a free-text query, detects area-stereotyping or
authoritative-safety-claim language, and prints the guardrail result
(classification, reframed query, warning, disclaimer) as JSON.

Examples:
  guard "I want a 2-bedroom near the CBD for 40000 KES"
  guard "Which areas are most dangerous?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := guardrail.New()
		result := g.Validate(strings.Join(args, " "))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(guardCmd)
}
