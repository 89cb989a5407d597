package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/makao-group/advisor-cli/internal/model"
)

// scenario is the YAML shape of an option-comparison input file.
type scenario struct {
	BudgetMax        float64          `yaml:"budget_max"`
	WorkplaceMinutes int              `yaml:"workplace_minutes"`
	Options          []scenarioOption `yaml:"options"`
}

type scenarioOption struct {
	Name             string   `yaml:"name"`
	RentKES          float64  `yaml:"rent_kes"`
	CommuteMinutes   int      `yaml:"commute_minutes"`
	TransportOptions []string `yaml:"transport_options"`
	Amenities        []string `yaml:"amenities"`
}

func (s scenario) housingOptions() []model.HousingOption {
	out := make([]model.HousingOption, 0, len(s.Options))
	for _, o := range s.Options {
		out = append(out, model.HousingOption{
			Name:             o.Name,
			RentAmount:       o.RentKES,
			CommuteMinutes:   o.CommuteMinutes,
			TransportOptions: o.TransportOptions,
			Amenities:        o.Amenities,
		})
	}
	return out
}

func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read scenario %s", path)
	}
	var s scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, eris.Wrapf(err, "parse scenario %s", path)
	}
	if len(s.Options) == 0 {
		return nil, eris.Errorf("scenario %s has no options", path)
	}
	return &s, nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <scenario.yaml>",
	Short: "Score and rank housing options from a scenario file",
	Long: `Reads a YAML scenario (budget ceiling, target commute, options) and
prints the ranked trade-off comparison as JSON.

Example scenario file:
  budget_max: 70000
  workplace_minutes: 30
  options:
    - name: Kileleshwa
      rent_kes: 65000
      commute_minutes: 25
      transport_options: [matatu, bus, private]
      amenities: [market, hospital, schools, shopping]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScenario(args[0])
		if err != nil {
			return err
		}

		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}

		workplace := s.WorkplaceMinutes
		if workplace == 0 {
			workplace = cfg.TradeOff.WorkplaceMinutes
		}

		comparison := analyzer.AnalyzeOptions(s.housingOptions(), s.BudgetMax, workplace)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(comparison)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
