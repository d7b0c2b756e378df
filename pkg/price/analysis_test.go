package price

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pantry/entities"
)

func rec(price, confidence float64) entities.PriceRecord {
	return entities.PriceRecord{Price: price, Confidence: confidence}
}

func TestWeightedMean(t *testing.T) {
	t.Parallel()

	mean, ok := WeightedMean([]entities.PriceRecord{rec(2, 1), rec(4, 1)})
	assert.True(t, ok)
	assert.Equal(t, 3.0, mean)

	// High-confidence records pull the mean toward themselves.
	mean, ok = WeightedMean([]entities.PriceRecord{rec(2, 0.9), rec(10, 0.1)})
	assert.True(t, ok)
	assert.Equal(t, 2.8, mean)

	_, ok = WeightedMean(nil)
	assert.False(t, ok)
	_, ok = WeightedMean([]entities.PriceRecord{rec(5, 0)})
	assert.False(t, ok)
}

func TestDetectAnomalyAgainstHistory(t *testing.T) {
	t.Parallel()

	history := []entities.PriceRecord{rec(2, 1), rec(2, 1)}

	anomalous, reason := DetectAnomaly(2.5, history)
	assert.False(t, anomalous)
	assert.Empty(t, reason)

	anomalous, reason = DetectAnomaly(5, history) // 250% of mean
	assert.True(t, anomalous)
	assert.NotEmpty(t, reason)

	anomalous, _ = DetectAnomaly(0.5, history) // 25% of mean
	assert.True(t, anomalous)
}

func TestDetectAnomalyAbsoluteBounds(t *testing.T) {
	t.Parallel()

	anomalous, _ := DetectAnomaly(0.00001, nil)
	assert.True(t, anomalous)

	anomalous, _ = DetectAnomaly(5000, nil)
	assert.True(t, anomalous)

	anomalous, _ = DetectAnomaly(3.5, nil)
	assert.False(t, anomalous)
}
