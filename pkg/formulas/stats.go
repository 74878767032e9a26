// Package formulas provides the statistical primitives used by the analytics
// engine. All functions guard against empty input and degenerate denominators
// and return 0 instead of NaN/Inf: reported totals must never propagate
// floating-point garbage to the dashboard.
package formulas

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// Median calculates the median of a slice of float64 values
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// PopStdDev calculates the population standard deviation (divisor N, not N-1)
func PopStdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.PopStdDev(data, nil)
}

// PopVariance calculates the population variance of a slice of float64 values
func PopVariance(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.PopVariance(data, nil)
}

// Correlation calculates the Pearson correlation coefficient between two datasets.
// Series of unequal length are truncated to the shorter one; empty input yields 0.
func Correlation(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n == 0 {
		return 0
	}
	r := stat.Correlation(x[:n], y[:n], nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// Skewness calculates the third standardized moment of the population.
//
// Returns 0 for fewer than 3 observations or zero standard deviation,
// so a degenerate distribution never reports as skewed.
func Skewness(data []float64) float64 {
	if len(data) < 3 {
		return 0
	}

	mean := Mean(data)
	sd := PopStdDev(data)
	if sd == 0 {
		return 0
	}

	var m3 float64
	for _, v := range data {
		d := v - mean
		m3 += d * d * d
	}
	m3 /= float64(len(data))

	return m3 / (sd * sd * sd)
}

// ExcessKurtosis calculates the fourth standardized moment of the population
// minus 3, so a normal distribution scores 0.
//
// Returns 0 for fewer than 4 observations or zero standard deviation.
func ExcessKurtosis(data []float64) float64 {
	if len(data) < 4 {
		return 0
	}

	mean := Mean(data)
	sd := PopStdDev(data)
	if sd == 0 {
		return 0
	}

	var m4 float64
	for _, v := range data {
		d := v - mean
		m4 += d * d * d * d
	}
	m4 /= float64(len(data))

	return m4/(sd*sd*sd*sd) - 3
}
