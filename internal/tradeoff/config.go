// Package tradeoff implements weighted multi-criteria scoring and ranking
// of housing options against budget and commute targets.
package tradeoff

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/makao-group/advisor-cli/internal/model"
)

// Weights maps scoring categories to their share of the total score.
// The weights must sum to 1.0.
type Weights map[model.Priority]float64

// DefaultWeights returns the default category weights.
func DefaultWeights() Weights {
	return Weights{
		model.PriorityCost:      0.30,
		model.PriorityCommute:   0.25,
		priorityConvenience:     0.20,
		model.PriorityTransport: 0.15,
		model.PriorityAmenities: 0.10,
	}
}

// priorityConvenience is a weighting category only; it is not part of
// the reported priority-score mapping's advisory categories.
const priorityConvenience = model.Priority("convenience")

// DefaultPriorities is the default narrative-emphasis order. It never
// affects the scoring math.
func DefaultPriorities() []model.Priority {
	return []model.Priority{
		model.PriorityCost,
		model.PriorityCommute,
		model.PriorityTransport,
		model.PriorityAmenities,
	}
}

// ValidateWeights checks that weights are non-negative and sum to 1.0
// within floating tolerance. Invalid weights are a construction-time
// error, never tolerated at evaluation time.
func ValidateWeights(w Weights) error {
	var errs []string

	if len(w) == 0 {
		errs = append(errs, "weights must not be empty")
	}

	sum := 0.0
	for category, weight := range w {
		if weight < 0 {
			errs = append(errs, fmt.Sprintf("%s weight must be >= 0", category))
		}
		sum += weight
	}

	if len(w) > 0 && math.Abs(sum-1.0) > 0.001 {
		errs = append(errs, fmt.Sprintf("weights should sum to 1.0, got %.3f", sum))
	}

	if len(errs) > 0 {
		return eris.Errorf("tradeoff: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
