package price

import (
	"fmt"
	"math"

	"pantry/entities"
)

// Absolute sanity bounds for a collected price (per package, before
// normalization issues show up as nonsense values).
const (
	PriceMin = 0.0001
	PriceMax = 1000.0
)

// Variation thresholds against the recent weighted mean.
const (
	riseMax = 2.0 // more than doubling is suspicious
	dropMax = 0.5 // dropping below half is suspicious
)

// WeightedMean averages prices weighted by their confidence. Returns
// ok=false when there is nothing to average.
func WeightedMean(records []entities.PriceRecord) (float64, bool) {
	var sum, weight float64
	for _, r := range records {
		sum += r.Price * r.Confidence
		weight += r.Confidence
	}
	if weight <= 0 {
		return 0, false
	}
	return round4(sum / weight), true
}

// DetectAnomaly flags a price that deviates too far from the recent
// history, or falls outside absolute bounds when no history exists.
// The returned reason is empty for normal prices.
func DetectAnomaly(newPrice float64, recent []entities.PriceRecord) (bool, string) {
	mean, ok := WeightedMean(recent)
	if !ok {
		if newPrice < PriceMin {
			return true, fmt.Sprintf("price too low: %g", newPrice)
		}
		if newPrice > PriceMax {
			return true, fmt.Sprintf("price too high: %g", newPrice)
		}
		return false, ""
	}
	variation := newPrice / mean
	if variation > riseMax {
		return true, fmt.Sprintf("excessive rise: %.0f%% of recent mean %g", variation*100, mean)
	}
	if variation < dropMax {
		return true, fmt.Sprintf("excessive drop: %.0f%% of recent mean %g", variation*100, mean)
	}
	return false, ""
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
