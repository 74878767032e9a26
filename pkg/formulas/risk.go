package formulas

import (
	"math"
	"sort"
)

// CalculateVaR calculates historical Value at Risk at the given confidence level.
//
// The returns are sorted ascending (worst first) and VaR is the value at index
// floor(n * confidence), clamped to the last index. With confidence 0.05 and
// four observations this is index 0, i.e. the worst return.
//
// Args:
//   - returns: Periodic returns in percent units (negative for losses)
//   - confidence: Confidence level in (0, 1), e.g. 0.05
//
// Returns:
//   - VaR value, or 0 when there are no observations
func CalculateVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	idx := int(math.Floor(float64(len(sorted)) * confidence))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}

	return sorted[idx]
}

// CalculateCVaR calculates Conditional Value at Risk: the mean of all returns
// at or below the VaR threshold at the same confidence level.
func CalculateCVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	threshold := CalculateVaR(returns, confidence)

	var sum float64
	var count int
	for _, r := range returns {
		if r <= threshold {
			sum += r
			count++
		}
	}
	if count == 0 {
		return threshold
	}

	return sum / float64(count)
}

// CalculateSharpeRatio calculates the Sharpe ratio over percent-unit returns.
//
// Sharpe = (mean(returns) - riskFreeRate) / population std dev of returns.
// Returns 0 when volatility is 0.
func CalculateSharpeRatio(returns []float64, riskFreeRate float64) float64 {
	vol := PopStdDev(returns)
	if vol == 0 {
		return 0
	}
	return (Mean(returns) - riskFreeRate) / vol
}

// CalculateSortinoRatio calculates the Sortino ratio over percent-unit returns.
//
// The denominator is the population standard deviation of the strictly
// negative return subset. When no returns are negative there is no downside
// risk and the ratio is undefined: the second result is false and callers
// must report the "no downside risk" sentinel instead of a number.
func CalculateSortinoRatio(returns []float64, riskFreeRate float64) (float64, bool) {
	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) == 0 {
		return 0, false
	}

	dd := PopStdDev(downside)
	if dd == 0 {
		return 0, true
	}

	return (Mean(returns) - riskFreeRate) / dd, true
}

// CalculateCalmarRatio calculates mean return over the absolute max drawdown.
// Returns 0 when the drawdown is 0.
func CalculateCalmarRatio(meanReturn, maxDrawdown float64) float64 {
	if maxDrawdown == 0 {
		return 0
	}
	return meanReturn / math.Abs(maxDrawdown)
}

// CalculateMaxDrawdown calculates the maximum drawdown of a value series, in
// percent. At each step the drawdown is (peak - value) / peak * 100 while the
// running peak is positive; the largest drawdown observed is returned.
func CalculateMaxDrawdown(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}

	maxDrawdown := 0.0
	peak := series[0]

	for _, v := range series {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			drawdown := (peak - v) / peak * 100
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	return maxDrawdown
}

// HHI calculates the Herfindahl-Hirschman concentration index over a set of
// group values: the sum of squared shares of the total, scaled to [0, 10000].
// A single group holding everything scores 10000; a zero or negative total
// scores 0.
func HHI(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	if total <= 0 {
		return 0
	}

	var hhi float64
	for _, v := range values {
		share := v / total
		hhi += share * share
	}

	return hhi * 10000
}
