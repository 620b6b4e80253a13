// Package scoring derives summary values from evaluation scores: averages,
// severity bands, weighted totals and letter grades.
package scoring

import (
	"math"

	"github.com/okian/judgeboard/internal/domain/model"
)

// Band is the severity used to colour a score.
type Band string

// Severity bands.
const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// Band thresholds on the 0-10 scale.
const (
	highThreshold   = 8.0
	mediumThreshold = 6.0

	// normalizedScale maps a 0-10 score to the 0-100 scale used by grades and bars.
	normalizedScale = 10.0
)

// Classify maps a score to its band: high >= 8, medium >= 6, low otherwise.
func Classify(score float64) Band {
	switch {
	case score >= highThreshold:
		return BandHigh
	case score >= mediumThreshold:
		return BandMedium
	default:
		return BandLow
	}
}

// Average is the arithmetic mean of the criteria values. Empty input yields 0.
func Average(scores model.Scores) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, sc := range scores {
		sum += sc.Value
	}
	return sum / float64(len(scores))
}

// Weighted sums score*weight over the criteria. When the applied weights do
// not add up to 1 the sum is divided by their total. Without weights the
// result equals Average.
func Weighted(scores model.Scores, weights map[string]float64) float64 {
	if len(weights) == 0 {
		return Average(scores)
	}
	var total, weightSum float64
	for _, sc := range scores {
		w := weights[sc.Key]
		total += sc.Value * w
		weightSum += w
	}
	if weightSum > 0 && weightSum != 1 {
		total /= weightSum
	}
	return total
}

// Normalize maps a 0-10 score to 0-100.
func Normalize(score float64) float64 {
	return score * normalizedScale
}

// Percent is the bar fill for a score: Normalize clamped to [0, 100].
func Percent(score float64) float64 {
	return math.Max(0, math.Min(100, Normalize(score)))
}

// Grade converts a 0-100 normalized score to a letter grade.
func Grade(normalized float64) string {
	switch {
	case normalized >= 90:
		return "A+"
	case normalized >= 85:
		return "A"
	case normalized >= 80:
		return "A-"
	case normalized >= 75:
		return "B+"
	case normalized >= 70:
		return "B"
	case normalized >= 65:
		return "B-"
	case normalized >= 60:
		return "C+"
	case normalized >= 55:
		return "C"
	case normalized >= 50:
		return "C-"
	default:
		return "F"
	}
}

// Round1 rounds to one decimal place, the precision shown for averages.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
