package tradeoff

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/makao-group/advisor-cli/internal/model"
)

// Defaults substituted for missing option fields.
const (
	defaultRent    = 50000.0
	defaultCommute = 30
)

// Analyzer scores and ranks housing options. It holds only the read-only
// weight and priority tables and is safe for concurrent use.
type Analyzer struct {
	weights    Weights
	priorities []model.Priority
}

// New creates an Analyzer, rejecting invalid weights eagerly. Nil weights
// or priorities fall back to the defaults.
func New(weights Weights, priorities []model.Priority) (*Analyzer, error) {
	if weights == nil {
		weights = DefaultWeights()
	}
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}
	if len(priorities) == 0 {
		priorities = DefaultPriorities()
	}
	return &Analyzer{weights: weights, priorities: priorities}, nil
}

// NewDefault creates an Analyzer with the default weights and priorities.
func NewDefault() *Analyzer {
	a, err := New(nil, nil)
	if err != nil {
		// Defaults are known-valid.
		panic(err)
	}
	return a
}

// AnalyzeOptions scores every option against the budget ceiling and
// target commute, ranks them descending by total score (stable on ties),
// and produces the comparison narrative.
func (a *Analyzer) AnalyzeOptions(options []model.HousingOption, budgetMax float64, workplaceMinutes int) model.TradeOffComparison {
	if workplaceMinutes <= 0 {
		workplaceMinutes = defaultCommute
	}

	scored := make([]model.TradeOffScore, 0, len(options))
	for _, opt := range options {
		scored = append(scored, a.scoreOption(opt, budgetMax, workplaceMinutes))
	}

	ranked := make([]model.TradeOffScore, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	rankedNames := make([]string, len(ranked))
	for i, s := range ranked {
		rankedNames[i] = s.OptionName
	}

	comparison := model.TradeOffComparison{
		Options:        scored,
		RankedOrder:    rankedNames,
		KeyDifferences: keyDifferences(ranked),
		Summary:        a.summary(ranked, budgetMax),
	}

	zap.L().Debug("tradeoff: analysis complete",
		zap.Int("options", len(options)),
		zap.Strings("ranked", rankedNames),
	)

	return comparison
}

// scoreOption computes all sub-scores and the narrative for one option.
func (a *Analyzer) scoreOption(opt model.HousingOption, budgetMax float64, targetCommute int) model.TradeOffScore {
	rent := opt.RentAmount
	if rent == 0 {
		rent = defaultRent
	}
	commute := opt.CommuteMinutes
	if commute == 0 {
		commute = defaultCommute
	}

	costScore := scoreCost(rent, budgetMax)
	commuteScore := scoreCommute(commute, targetCommute)
	transportScore := scoreTransport(opt.TransportOptions)
	amenityCount := len(opt.Amenities)
	convenienceScore := scoreConvenience(transportScore, amenityCount)

	priorityScores := map[model.Priority]float64{
		model.PrioritySafetyConcerns: situationalScore(opt, commute),
		model.PriorityCost:           costScore,
		model.PriorityCommute:        commuteScore,
		model.PriorityTransport:      transportScore,
		model.PriorityAmenities:      scoreAmenities(amenityCount),
		priorityConvenience:          convenienceScore,
	}

	name := opt.Name
	if name == "" {
		name = "Unknown"
	}

	return model.TradeOffScore{
		OptionName:       name,
		TotalScore:       a.weightedTotal(priorityScores),
		CostScore:        costScore,
		CommuteScore:     commuteScore,
		ConvenienceScore: convenienceScore,
		PriorityScores:   priorityScores,
		Strengths:        strengths(name, costScore, commuteScore, transportScore, amenityCount),
		TradeOffs:        tradeOffs(name, rent, commute, transportScore),
		Warnings:         warnings(rent, budgetMax, commute, opt.TransportOptions),
	}
}

// scoreCost grades rent against the budget ceiling. A non-positive budget
// is treated as ratio 1.0, never divided by.
func scoreCost(rent, budgetMax float64) float64 {
	if rent <= 0 {
		return 50
	}
	ratio := 1.0
	if budgetMax > 0 {
		ratio = rent / budgetMax
	}
	switch {
	case ratio <= 0.5:
		return 100
	case ratio <= 0.7:
		return 90
	case ratio <= 0.85:
		return 75
	case ratio <= 1.0:
		return 60
	default:
		return math.Max(0, 60-(ratio-1.0)*50)
	}
}

// scoreCommute grades commute time against the target.
func scoreCommute(commute, target int) float64 {
	c, t := float64(commute), float64(target)
	switch {
	case c <= t:
		return 100
	case c <= t*1.25:
		return 85
	case c <= t*1.5:
		return 70
	case c <= t*2:
		return 50
	default:
		return math.Max(0, 30-(c-t*2)*0.5)
	}
}

// Bonuses per transport category on top of the base score. Categories
// are independent; every applicable bonus applies.
var transportBonuses = map[model.TransportMode]float64{
	model.TransportMatatu:   20,
	model.TransportBodaboda: 15,
	model.TransportBus:      15,
	model.TransportWalking:  10,
	model.TransportPrivate:  5,
}

// scoreTransport grades transport availability, capped at 100. Matching
// is case-insensitive against the option's transport set.
func scoreTransport(transport []string) float64 {
	available := make(map[model.TransportMode]bool, len(transport))
	for _, t := range transport {
		available[model.TransportMode(strings.ToLower(t))] = true
	}

	score := 50.0
	for _, mode := range model.AllTransportModes() {
		if available[mode] {
			score += transportBonuses[mode]
		}
	}
	return math.Min(100, score)
}

// scoreConvenience blends transport and amenity coverage.
func scoreConvenience(transportScore float64, amenityCount int) float64 {
	amenityScore := math.Min(50, float64(amenityCount)*10)
	return transportScore*0.6 + amenityScore*0.4
}

// scoreAmenities grades the amenity count alone.
func scoreAmenities(count int) float64 {
	return math.Min(100, float64(count)*15)
}

// situationalScore is an advisory signal derived from objective option
// facts, never from area labels. It is reported under the
// safety_concerns category but excluded from the weighted total.
func situationalScore(opt model.HousingOption, commute int) float64 {
	score := 70.0

	for _, t := range opt.TransportOptions {
		if strings.EqualFold(t, string(model.TransportMatatu)) {
			score += 5
			break
		}
	}

	if commute > 60 {
		score -= 5
	}

	var hasMarket, hasHealth bool
	for _, a := range opt.Amenities {
		lower := strings.ToLower(a)
		if strings.Contains(lower, "market") {
			hasMarket = true
		}
		if strings.Contains(lower, "hospital") || strings.Contains(lower, "clinic") {
			hasHealth = true
		}
	}
	if hasMarket {
		score += 5
	}
	if hasHealth {
		score += 5
	}

	return math.Max(0, math.Min(100, score))
}

// weightedTotal sums the weighted categories. Only weighted categories
// contribute; a category missing a score counts as the neutral 50.
func (a *Analyzer) weightedTotal(scores map[model.Priority]float64) float64 {
	total := 0.0
	for category, weight := range a.weights {
		score, ok := scores[category]
		if !ok {
			score = 50
		}
		total += score * weight
	}
	return total
}
