package analytics

import (
	"sort"

	"github.com/jswiatek/kapital/internal/modules/investments"
	"github.com/jswiatek/kapital/pkg/formulas"
)

// ComputeRisk derives the distribution metrics from per-investment returns.
// confidence is the VaR tail probability, e.g. 0.05 for the 5% tail.
func ComputeRisk(invs []investments.CanonicalInvestment, riskFreeRate, confidence float64) RiskMetrics {
	metrics := RiskMetrics{
		Confidence: confidence,
		SampleSize: len(invs),
	}
	if len(invs) == 0 {
		return metrics
	}

	returns := make([]float64, 0, len(invs))
	for i := range invs {
		returns = append(returns, invs[i].ReturnPercent())
	}

	metrics.MeanReturn = formulas.Mean(returns)
	metrics.Volatility = formulas.PopStdDev(returns)
	metrics.SharpeRatio = formulas.CalculateSharpeRatio(returns, riskFreeRate)

	sortino, ok := formulas.CalculateSortinoRatio(returns, riskFreeRate)
	metrics.SortinoRatio = sortino
	metrics.NoDownsideRisk = !ok

	metrics.MaxDrawdown = formulas.CalculateMaxDrawdown(cumulativeValues(invs))
	metrics.CalmarRatio = formulas.CalculateCalmarRatio(metrics.MeanReturn, metrics.MaxDrawdown)

	metrics.ValueAtRisk = formulas.CalculateVaR(returns, confidence)
	metrics.ConditionalValueAtRisk = formulas.CalculateCVaR(returns, confidence)

	metrics.Skewness = formulas.Skewness(returns)
	metrics.ExcessKurtosis = formulas.ExcessKurtosis(returns)

	return metrics
}

// cumulativeValues builds the running portfolio value in signing-date order,
// the series the drawdown walks. Undated investments sort before dated ones
// in their input order.
func cumulativeValues(invs []investments.CanonicalInvestment) []float64 {
	ordered := make([]investments.CanonicalInvestment, len(invs))
	copy(ordered, invs)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := ordered[i].SigningDate, ordered[j].SigningDate
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return true
		case dj == nil:
			return false
		default:
			return di.Before(*dj)
		}
	})

	series := make([]float64, len(ordered))
	var running float64
	for i := range ordered {
		running += ordered[i].TotalValue
		series[i] = running
	}
	return series
}
