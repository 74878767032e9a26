package analytics

import (
	"github.com/jswiatek/kapital/internal/modules/investments"
	"github.com/jswiatek/kapital/pkg/formulas"
)

// ComputeStatistics folds a canonical batch into the global portfolio totals.
func ComputeStatistics(invs []investments.CanonicalInvestment, investorCount int) PortfolioStatistics {
	stats := PortfolioStatistics{
		InvestmentCount: len(invs),
		InvestorCount:   investorCount,
	}
	if len(invs) == 0 {
		return stats
	}

	amounts := make([]float64, 0, len(invs))
	for _, inv := range invs {
		stats.TotalValue += inv.TotalValue
		stats.TotalInvested += inv.InvestmentAmount
		stats.TotalRealized += inv.RealizedCapital + inv.RealizedInterest
		stats.TotalRemainingCapital += inv.RemainingCapital
		stats.TotalRemainingInterest += inv.RemainingInterest
		amounts = append(amounts, inv.InvestmentAmount)
	}

	stats.TotalProfit = stats.TotalRealized + stats.TotalRemainingInterest - stats.TotalInvested
	if stats.TotalInvested > 0 {
		stats.ROIPercent = stats.TotalProfit / stats.TotalInvested * 100
	}

	stats.MeanInvestment = formulas.Mean(amounts)
	stats.MedianInvestment = formulas.Median(amounts)
	stats.GrowthRatePercent = growthRate(invs)

	return stats
}

// growthRate compares the earliest-signed investment's value with the
// latest-signed one. Undated investments cannot anchor the comparison and
// are skipped.
func growthRate(invs []investments.CanonicalInvestment) float64 {
	var earliest, latest *investments.CanonicalInvestment
	for i := range invs {
		inv := &invs[i]
		if inv.SigningDate == nil {
			continue
		}
		if earliest == nil || inv.SigningDate.Before(*earliest.SigningDate) {
			earliest = inv
		}
		if latest == nil || inv.SigningDate.After(*latest.SigningDate) {
			latest = inv
		}
	}
	if earliest == nil || latest == nil || earliest == latest {
		return 0
	}
	if earliest.TotalValue <= 0 {
		return 0
	}
	return (latest.TotalValue/earliest.TotalValue - 1) * 100
}
