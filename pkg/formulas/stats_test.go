package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 5.0, Mean([]float64{10, -5, 0, 15}), 1e-9)
	assert.Equal(t, 0.0, Mean(nil))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{"odd count", []float64{3, 1, 2}, 2},
		{"even count", []float64{4, 1, 3, 2}, 2.5},
		{"single value", []float64{7}, 7},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Median(tt.data), 1e-9)
		})
	}
}

func TestPopStdDev(t *testing.T) {
	// Population std dev divides by N: for {10, -5, 0, 15} the squared
	// deviations from the mean of 5 sum to 250, so sqrt(250/4) ~= 7.906.
	assert.InDelta(t, 7.9057, PopStdDev([]float64{10, -5, 0, 15}), 1e-3)
	assert.Equal(t, 0.0, PopStdDev(nil))
	assert.Equal(t, 0.0, PopStdDev([]float64{3, 3, 3}))
}

func TestCorrelation(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"perfect negative", []float64{1, 2, 3}, []float64{6, 4, 2}, -1},
		{"empty series", []float64{}, []float64{1, 2}, 0},
		{"unequal length truncates", []float64{1, 2, 3, 9}, []float64{2, 4, 6}, 1},
		{"constant series degenerates to zero", []float64{1, 1, 1}, []float64{2, 4, 6}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Correlation(tt.x, tt.y), 1e-9)
		})
	}
}

func TestSkewness(t *testing.T) {
	// Symmetric data has zero skew.
	assert.InDelta(t, 0.0, Skewness([]float64{1, 2, 3, 4}), 1e-9)

	// Right-skewed data has positive skew.
	assert.Greater(t, Skewness([]float64{1, 1, 1, 10}), 0.0)

	// Guards: too few observations, zero standard deviation.
	assert.Equal(t, 0.0, Skewness([]float64{1, 2}))
	assert.Equal(t, 0.0, Skewness([]float64{5, 5, 5, 5}))
}

func TestExcessKurtosis(t *testing.T) {
	// Evenly spread values are platykurtic: m4 = 2.5625, sd^4 = 1.5625,
	// so kurtosis is 1.64 and excess kurtosis -1.36.
	assert.InDelta(t, -1.36, ExcessKurtosis([]float64{1, 2, 3, 4}), 1e-9)

	assert.Equal(t, 0.0, ExcessKurtosis([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, ExcessKurtosis([]float64{2, 2, 2, 2}))
}
