package tradeoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makao-group/advisor-cli/internal/model"
)

func TestAnalyzer_AnalyzeOptionsRanking(t *testing.T) {
	analyzer := NewDefault()

	comparison := analyzer.AnalyzeOptions([]model.HousingOption{
		{
			Name:             "A",
			RentAmount:       65000,
			CommuteMinutes:   25,
			TransportOptions: []string{"matatu", "bus", "private"},
			Amenities:        []string{"market", "gym", "mall", "pharmacy"},
		},
		{
			Name:             "B",
			RentAmount:       35000,
			CommuteMinutes:   45,
			TransportOptions: []string{"matatu", "bodaboda"},
			Amenities:        []string{"market", "shops"},
		},
	}, 70000, 30)

	assert.Equal(t, []string{"A", "B"}, comparison.RankedOrder)
	require.Len(t, comparison.Options, 2)

	a := comparison.Options[0]
	assert.Equal(t, 60.0, a.CostScore)
	assert.Equal(t, 100.0, a.CommuteScore)
	assert.Equal(t, 90.0, a.PriorityScores[model.PriorityTransport])
	assert.Equal(t, 60.0, a.PriorityScores[model.PriorityAmenities])
	assert.InDelta(t, 70.0, a.ConvenienceScore, 1e-9)
	assert.InDelta(t, 76.5, a.TotalScore, 1e-9)

	b := comparison.Options[1]
	assert.Equal(t, 100.0, b.CostScore)
	assert.Equal(t, 70.0, b.CommuteScore)
	assert.Equal(t, 85.0, b.PriorityScores[model.PriorityTransport])
	assert.InDelta(t, 59.0, b.ConvenienceScore, 1e-9)
	assert.InDelta(t, 75.05, b.TotalScore, 1e-9)
}

func TestAnalyzer_WeightedTotalMatchesSubScores(t *testing.T) {
	analyzer := NewDefault()
	weights := DefaultWeights()

	opt := model.HousingOption{
		Name:             "Check",
		RentAmount:       48000,
		CommuteMinutes:   55,
		TransportOptions: []string{"bus", "walking"},
		Amenities:        []string{"clinic"},
	}
	score := analyzer.scoreOption(opt, 60000, 30)

	expected := 0.0
	for category, weight := range weights {
		expected += score.PriorityScores[category] * weight
	}
	assert.InDelta(t, expected, score.TotalScore, 1e-9)
}

func TestAnalyzer_StableTieOrdering(t *testing.T) {
	analyzer := NewDefault()

	same := model.HousingOption{
		RentAmount:       40000,
		CommuteMinutes:   30,
		TransportOptions: []string{"matatu"},
		Amenities:        []string{"market"},
	}
	first, second := same, same
	first.Name = "First"
	second.Name = "Second"

	comparison := analyzer.AnalyzeOptions([]model.HousingOption{first, second}, 70000, 30)
	assert.Equal(t, []string{"First", "Second"}, comparison.RankedOrder,
		"equal totals keep input order")
}

func TestAnalyzer_MissingFieldDefaults(t *testing.T) {
	analyzer := NewDefault()

	comparison := analyzer.AnalyzeOptions([]model.HousingOption{{}}, 70000, 30)
	require.Len(t, comparison.Options, 1)

	score := comparison.Options[0]
	assert.Equal(t, "Unknown", score.OptionName)
	// Defaults: rent 50000 against 70000 is ratio ~0.71, commute 30 of 30.
	assert.Equal(t, 75.0, score.CostScore)
	assert.Equal(t, 100.0, score.CommuteScore)
	assert.Equal(t, 50.0, score.PriorityScores[model.PriorityTransport])
}

func TestAnalyzer_NonPositiveInputs(t *testing.T) {
	analyzer := NewDefault()

	// budget 0 means the cost ratio is neutral, never a division.
	comparison := analyzer.AnalyzeOptions([]model.HousingOption{
		{Name: "X", RentAmount: 55000, CommuteMinutes: 20},
	}, 0, 0)

	require.Len(t, comparison.Options, 1)
	assert.Equal(t, 60.0, comparison.Options[0].CostScore)
	// workplaceMinutes 0 falls back to the 30-minute target.
	assert.Equal(t, 100.0, comparison.Options[0].CommuteScore)
}

func TestAnalyzer_AnalyzeOptionsEmpty(t *testing.T) {
	analyzer := NewDefault()

	comparison := analyzer.AnalyzeOptions(nil, 70000, 30)
	assert.Empty(t, comparison.Options)
	assert.Empty(t, comparison.RankedOrder)
	assert.Equal(t, "No options to compare.", comparison.Summary)
}

func TestScoreCost(t *testing.T) {
	tests := []struct {
		name   string
		rent   float64
		budget float64
		want   float64
	}{
		{"half of budget", 35000, 70000, 100},
		{"seventy percent", 49000, 70000, 90},
		{"eighty-five percent", 59500, 70000, 75},
		{"at ceiling", 70000, 70000, 60},
		{"ten percent over", 77000, 70000, 55},
		{"far over", 700000, 70000, 0},
		{"zero rent", 0, 70000, 50},
		{"negative rent", -100, 70000, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scoreCost(tt.rent, tt.budget), 1e-9)
		})
	}
}

func TestScoreCommute(t *testing.T) {
	tests := []struct {
		name    string
		commute int
		target  int
		want    float64
	}{
		{"at target", 30, 30, 100},
		{"within 125 percent", 37, 30, 85},
		{"within 150 percent", 45, 30, 70},
		{"within double", 60, 30, 50},
		{"beyond double", 80, 30, 20},
		{"extreme", 300, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scoreCommute(tt.commute, tt.target), 1e-9)
		})
	}
}

func TestScoreTransport(t *testing.T) {
	assert.Equal(t, 50.0, scoreTransport(nil))
	assert.Equal(t, 70.0, scoreTransport([]string{"matatu"}))
	assert.Equal(t, 70.0, scoreTransport([]string{"MATATU"}), "matching ignores case")
	assert.Equal(t, 70.0, scoreTransport([]string{"matatu", "matatu"}), "duplicates count once")
	assert.Equal(t, 50.0, scoreTransport([]string{"ferry"}), "unknown modes score nothing")
	assert.Equal(t, 100.0,
		scoreTransport([]string{"matatu", "bodaboda", "bus", "walking", "private"}),
		"bonuses cap at 100")
}

func TestScoreAmenities(t *testing.T) {
	assert.Equal(t, 0.0, scoreAmenities(0))
	assert.Equal(t, 45.0, scoreAmenities(3))
	assert.Equal(t, 100.0, scoreAmenities(7), "caps at 100")
}

func TestSituationalScore(t *testing.T) {
	base := model.HousingOption{}
	assert.Equal(t, 70.0, situationalScore(base, 30))

	full := model.HousingOption{
		TransportOptions: []string{"Matatu"},
		Amenities:        []string{"City Market", "Aga Khan Hospital"},
	}
	assert.Equal(t, 85.0, situationalScore(full, 30))
	assert.Equal(t, 80.0, situationalScore(full, 90), "long commute deducts")
}

func TestAnalyzer_ScoresStayInBounds(t *testing.T) {
	analyzer := NewDefault()

	extremes := []model.HousingOption{
		{Name: "Free", RentAmount: 1, CommuteMinutes: 1},
		{Name: "Impossible", RentAmount: 900000, CommuteMinutes: 400},
		{
			Name:             "Everything",
			RentAmount:       30000,
			CommuteMinutes:   10,
			TransportOptions: []string{"matatu", "bodaboda", "bus", "walking", "private"},
			Amenities:        []string{"market", "hospital", "school", "mall", "gym", "bank", "pharmacy", "church"},
		},
	}
	comparison := analyzer.AnalyzeOptions(extremes, 70000, 30)

	for _, score := range comparison.Options {
		assert.GreaterOrEqual(t, score.TotalScore, 0.0, score.OptionName)
		assert.LessOrEqual(t, score.TotalScore, 100.0, score.OptionName)
		for category, sub := range score.PriorityScores {
			assert.GreaterOrEqual(t, sub, 0.0, "%s/%s", score.OptionName, category)
			assert.LessOrEqual(t, sub, 100.0, "%s/%s", score.OptionName, category)
		}
	}
}
