package analytics

import (
	"sort"

	"github.com/jswiatek/kapital/internal/modules/investments"
	"github.com/jswiatek/kapital/pkg/formulas"
)

// ComputeConcentration derives the HHI measures, the diversification ratio
// and the cross-product-type correlation matrix.
func ComputeConcentration(invs []investments.CanonicalInvestment) ConcentrationMetrics {
	metrics := ConcentrationMetrics{
		Correlation: CorrelationMatrix{
			Categories: []string{},
			Matrix:     [][]float64{},
		},
	}
	if len(invs) == 0 {
		return metrics
	}

	byType := map[string]float64{}
	byClient := map[string]float64{}
	byIssuer := map[string]float64{}
	typesSeen := map[investments.ProductType]bool{}

	for i := range invs {
		inv := &invs[i]
		byType[string(inv.ProductType)] += inv.TotalValue
		byClient[clientKey(inv)] += inv.TotalValue
		byIssuer[issuerKey(inv)] += inv.TotalValue
		typesSeen[inv.ProductType] = true
	}

	metrics.HHIByProductType = formulas.HHI(mapValues(byType))
	metrics.HHIByClient = formulas.HHI(mapValues(byClient))
	metrics.HHIByIssuer = formulas.HHI(mapValues(byIssuer))
	metrics.DiversificationRatio = float64(len(typesSeen)) / float64(len(invs)) * 100
	metrics.Correlation = correlationByType(invs)

	return metrics
}

func clientKey(inv *investments.CanonicalInvestment) string {
	if inv.ClientID != "" {
		return inv.ClientID
	}
	return inv.ClientName
}

func issuerKey(inv *investments.CanonicalInvestment) string {
	if inv.ProductID != "" {
		return inv.ProductID
	}
	return inv.ProductName
}

func mapValues(m map[string]float64) []float64 {
	out := make([]float64, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// correlationByType correlates per-product-type return series. Categories
// are sorted for a deterministic matrix; the diagonal is 1 by construction.
func correlationByType(invs []investments.CanonicalInvestment) CorrelationMatrix {
	series := map[string][]float64{}
	for i := range invs {
		key := string(invs[i].ProductType)
		series[key] = append(series[key], invs[i].ReturnPercent())
	}

	categories := make([]string, 0, len(series))
	for key := range series {
		categories = append(categories, key)
	}
	sort.Strings(categories)

	matrix := make([][]float64, len(categories))
	for i, a := range categories {
		matrix[i] = make([]float64, len(categories))
		for j, b := range categories {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			matrix[i][j] = formulas.Correlation(series[a], series[b])
		}
	}

	return CorrelationMatrix{Categories: categories, Matrix: matrix}
}
