package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/makao-group/advisor-cli/internal/model"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Evaluate situational risk for a user context",
	Long: `Runs the rule-based risk engine over a user context supplied via
flags and prints the resulting risk profile as JSON. Risk is situational
(commute, timing, transport, arrangement), never area-based.

Examples:
  risk --commute 75 --return-time night --transport matatu
  risk --commute 30 --living shared --familiar`,
	RunE: runRisk,
}

func init() {
	f := riskCmd.Flags()
	f.Int("commute", 30, "daily commute in minutes")
	f.String("return-time", "evening", "typical return time (daytime|evening|night)")
	f.String("transport", "matatu", "primary transport mode (walking|bodaboda|matatu|private|bus)")
	f.String("living", "alone", "living arrangement (alone|shared|family)")
	f.Bool("familiar", false, "familiar with the target area")
	f.Float64("budget-comfort", 0.5, "budget comfort on a 0-1 scale")
	f.Bool("night-activities", false, "regularly out at night")
	f.String("tolerance", "medium", "risk tolerance (low|medium|high)")
	rootCmd.AddCommand(riskCmd)
}

func runRisk(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	commute, _ := f.GetInt("commute")
	returnTime, _ := f.GetString("return-time")
	transport, _ := f.GetString("transport")
	living, _ := f.GetString("living")
	familiar, _ := f.GetBool("familiar")
	budgetComfort, _ := f.GetFloat64("budget-comfort")
	nightActivities, _ := f.GetBool("night-activities")
	tolerance, _ := f.GetString("tolerance")

	engine, err := newEngine()
	if err != nil {
		return err
	}

	profile := engine.Evaluate(model.UserContext{
		CommuteMinutes:    commute,
		ReturnTime:        model.ReturnTime(returnTime),
		TransportMode:     model.TransportMode(transport),
		LivingArrangement: model.LivingArrangement(living),
		FamiliarWithArea:  familiar,
		BudgetComfort:     budgetComfort,
		HasNightActivity:  nightActivities,
		RiskTolerance:     model.RiskTolerance(tolerance),
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}
