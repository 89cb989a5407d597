package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/makao-group/advisor-cli/internal/model"
)

var (
	batchConcurrency int
	batchOutput      string
)

// batchResult pairs one scenario file with its comparison.
type batchResult struct {
	File       string                   `json:"file"`
	Comparison model.TradeOffComparison `json:"comparison"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every scenario file in a directory",
	Long: `Runs the trade-off analyzer over every *.yaml scenario in a
directory, concurrently, and prints one JSON document with all results.
Each evaluation is independent; the analyzer's tables are read-only and
shared across workers without locking.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := filepath.Glob(filepath.Join(args[0], "*.yaml"))
		if err != nil {
			return err
		}

		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}

		var (
			mu      sync.Mutex
			results []batchResult
		)

		g := new(errgroup.Group)
		g.SetLimit(batchConcurrency)
		for _, path := range paths {
			g.Go(func() error {
				s, err := loadScenario(path)
				if err != nil {
					return err
				}

				workplace := s.WorkplaceMinutes
				if workplace == 0 {
					workplace = cfg.TradeOff.WorkplaceMinutes
				}
				comparison := analyzer.AnalyzeOptions(s.housingOptions(), s.BudgetMax, workplace)

				mu.Lock()
				results = append(results, batchResult{File: filepath.Base(path), Comparison: comparison})
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })

		zap.L().Info("batch: analysis complete", zap.Int("scenarios", len(results)))

		out := os.Stdout
		if batchOutput != "" {
			f, err := os.Create(batchOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of scenarios analyzed in parallel")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "write results to a file instead of stdout")
	rootCmd.AddCommand(batchCmd)
}
