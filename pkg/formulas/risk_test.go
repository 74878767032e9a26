package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateVaR(t *testing.T) {
	tests := []struct {
		name       string
		returns    []float64
		confidence float64
		want       float64
	}{
		{
			name:       "five percent of four observations is the worst return",
			returns:    []float64{10, -5, 0, 15},
			confidence: 0.05,
			want:       -5, // floor(4*0.05) = index 0 of [-5, 0, 10, 15]
		},
		{
			name:       "index clamped to last element",
			returns:    []float64{-5, 0},
			confidence: 0.99,
			want:       -5, // floor(2*0.99) = 1, in range
		},
		{
			name:       "empty returns",
			returns:    nil,
			confidence: 0.05,
			want:       0,
		},
		{
			name:       "single observation",
			returns:    []float64{-3},
			confidence: 0.95,
			want:       -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateVaR(tt.returns, tt.confidence), 1e-9)
		})
	}
}

func TestCalculateCVaR(t *testing.T) {
	// CVaR is the mean of all returns at or below the VaR threshold.
	assert.InDelta(t, -5, CalculateCVaR([]float64{10, -5, 0, 15}, 0.05), 1e-9)

	// With a deeper tail the average over the tail is reported.
	// VaR(0.25) of [-10, -5, 0, 15] is index 1 = -5; tail mean = -7.5.
	assert.InDelta(t, -7.5, CalculateCVaR([]float64{15, -10, 0, -5}, 0.25), 1e-9)

	assert.Equal(t, 0.0, CalculateCVaR(nil, 0.05))
}

func TestCalculateSharpeRatio(t *testing.T) {
	// mean = 5, population std dev ~= 7.906, risk-free 2 => ~0.379
	assert.InDelta(t, 0.3795, CalculateSharpeRatio([]float64{10, -5, 0, 15}, 2.0), 1e-3)

	// Zero volatility resolves to 0, never a division error.
	assert.Equal(t, 0.0, CalculateSharpeRatio([]float64{4, 4, 4}, 2.0))
	assert.Equal(t, 0.0, CalculateSharpeRatio(nil, 2.0))
}

func TestCalculateSortinoRatio(t *testing.T) {
	t.Run("no downside observations", func(t *testing.T) {
		_, ok := CalculateSortinoRatio([]float64{1, 2, 3}, 2.0)
		assert.False(t, ok, "all-positive returns have no downside risk")
	})

	t.Run("downside deviation over negative subset", func(t *testing.T) {
		// negatives: {-4, -8}, mean -6, pop std dev 2; overall mean = 0
		got, ok := CalculateSortinoRatio([]float64{-4, -8, 4, 8}, 2.0)
		assert.True(t, ok)
		assert.InDelta(t, -1.0, got, 1e-9)
	})

	t.Run("single negative return degenerates to zero", func(t *testing.T) {
		got, ok := CalculateSortinoRatio([]float64{10, -5, 0, 15}, 2.0)
		assert.True(t, ok)
		assert.Equal(t, 0.0, got)
	})
}

func TestCalculateCalmarRatio(t *testing.T) {
	assert.InDelta(t, 0.5, CalculateCalmarRatio(5, 10), 1e-9)
	assert.InDelta(t, 0.5, CalculateCalmarRatio(5, -10), 1e-9)
	assert.Equal(t, 0.0, CalculateCalmarRatio(5, 0))
}

func TestCalculateMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{
			name:   "drawdown from later peak dominates",
			series: []float64{100, 80, 120, 90},
			want:   25, // (120-90)/120
		},
		{
			name:   "monotone series has no drawdown",
			series: []float64{10, 20, 30},
			want:   0,
		},
		{
			name:   "too few points",
			series: []float64{100},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateMaxDrawdown(tt.series), 1e-9)
		})
	}
}

func TestHHI(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single holder", []float64{100}, 10000},
		{"two equal holders", []float64{50, 50}, 5000},
		{"four equal holders", []float64{1, 1, 1, 1}, 2500},
		{"zero total", []float64{0, 0}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HHI(tt.values)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 10000.0)
		})
	}
}
