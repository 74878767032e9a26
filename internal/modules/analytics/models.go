// Package analytics is the single statistics engine behind every dashboard
// entry point: portfolio totals, risk metrics, concentration measures and the
// orchestration that turns freshly fetched raw records into them.
package analytics

import (
	"time"

	"github.com/jswiatek/kapital/internal/modules/insights"
	"github.com/jswiatek/kapital/internal/modules/investors"
	"github.com/jswiatek/kapital/internal/modules/voting"
)

// Cache keys for the TTL result cache. The warm-refresh job primes these and
// the HTTP handlers read them; parameterized lookups append their parameter.
const (
	CacheKeyInvestors     = "investors"
	CacheKeyStatistics    = "statistics"
	CacheKeyRisk          = "risk" // + ":<confidence>"
	CacheKeyConcentration = "concentration"
	CacheKeyVoting        = "voting"
	CacheKeyCoalition     = "coalition" // + ":<threshold>"
	CacheKeyInsights      = "insights"
)

// PortfolioStatistics are the global portfolio totals.
type PortfolioStatistics struct {
	// Sums over the canonical batch.
	TotalValue             float64 `json:"total_value"`
	TotalInvested          float64 `json:"total_invested"`
	TotalRealized          float64 `json:"total_realized"` // realized capital + realized interest
	TotalRemainingCapital  float64 `json:"total_remaining_capital"`
	TotalRemainingInterest float64 `json:"total_remaining_interest"`

	// TotalProfit = realized + remaining interest - invested.
	TotalProfit float64 `json:"total_profit"`
	// ROIPercent = totalProfit / invested * 100, 0 when nothing was invested.
	ROIPercent float64 `json:"roi_percent"`

	MeanInvestment   float64 `json:"mean_investment"`
	MedianInvestment float64 `json:"median_investment"`

	// GrowthRatePercent is the value ratio between the earliest- and
	// latest-signed investment, as a percent change. 0 without two dated
	// investments or with a zero-valued earliest one.
	GrowthRatePercent float64 `json:"growth_rate_percent"`

	InvestmentCount int `json:"investment_count"`
	InvestorCount   int `json:"investor_count"`
}

// RiskMetrics are the distribution metrics over per-investment returns, all
// in percent units.
type RiskMetrics struct {
	MeanReturn float64 `json:"mean_return"`
	Volatility float64 `json:"volatility"` // population standard deviation

	SharpeRatio  float64 `json:"sharpe_ratio"`
	SortinoRatio float64 `json:"sortino_ratio"`
	// NoDownsideRisk reports the Sortino sentinel: no negative returns were
	// observed, so downside deviation is undefined rather than zero.
	NoDownsideRisk bool `json:"no_downside_risk"`

	MaxDrawdown float64 `json:"max_drawdown"`
	CalmarRatio float64 `json:"calmar_ratio"`

	Confidence             float64 `json:"confidence"`
	ValueAtRisk            float64 `json:"value_at_risk"`
	ConditionalValueAtRisk float64 `json:"conditional_value_at_risk"`

	Skewness       float64 `json:"skewness"`
	ExcessKurtosis float64 `json:"excess_kurtosis"`

	SampleSize int `json:"sample_size"`
}

// CorrelationMatrix is the pairwise Pearson correlation of per-category
// return series. Matrix[i][j] corresponds to Categories[i] x Categories[j].
type CorrelationMatrix struct {
	Categories []string    `json:"categories"`
	Matrix     [][]float64 `json:"matrix"`
}

// ConcentrationMetrics are the portfolio concentration measures.
type ConcentrationMetrics struct {
	HHIByProductType float64 `json:"hhi_by_product_type"`
	HHIByClient      float64 `json:"hhi_by_client"`
	HHIByIssuer      float64 `json:"hhi_by_issuer"`

	// DiversificationRatio = distinct product types / investment count * 100.
	DiversificationRatio float64 `json:"diversification_ratio"`

	Correlation CorrelationMatrix `json:"correlation"`
}

// Overview bundles every analytics product computed from one snapshot. This
// is what the warm-refresh job produces and what the dashboard landing page
// consumes.
type Overview struct {
	BatchID     string    `json:"batch_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Investors     []investors.InvestorSummary `json:"investors"`
	Statistics    PortfolioStatistics         `json:"statistics"`
	Risk          RiskMetrics                 `json:"risk"`
	Concentration ConcentrationMetrics        `json:"concentration"`
	Voting        *voting.Analysis            `json:"voting"`
	Coalition     *voting.Coalition           `json:"coalition"`
	Insights      []insights.Insight          `json:"insights"`
}
