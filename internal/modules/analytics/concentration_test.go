package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jswiatek/kapital/internal/modules/investments"
)

func typedInv(pt investments.ProductType, clientID string, value float64) investments.CanonicalInvestment {
	return investments.CanonicalInvestment{
		ProductType:      pt,
		ClientID:         clientID,
		ProductID:        "prod-" + string(pt),
		InvestmentAmount: value,
		RemainingCapital: value,
		TotalValue:       value,
	}
}

func TestComputeConcentrationSingleType(t *testing.T) {
	invs := []investments.CanonicalInvestment{
		typedInv(investments.ProductBond, "c1", 1000),
		typedInv(investments.ProductBond, "c2", 1000),
	}

	metrics := ComputeConcentration(invs)

	// All value in one product type.
	assert.InDelta(t, 10000, metrics.HHIByProductType, 1e-9)
	// Two equal clients: 0.5^2 * 2 * 10000.
	assert.InDelta(t, 5000, metrics.HHIByClient, 1e-9)
	// 1 distinct type / 2 investments.
	assert.InDelta(t, 50.0, metrics.DiversificationRatio, 1e-9)
}

func TestComputeConcentrationCorrelationMatrixShape(t *testing.T) {
	invs := []investments.CanonicalInvestment{
		typedInv(investments.ProductBond, "c1", 1000),
		typedInv(investments.ProductBond, "c1", 500),
		typedInv(investments.ProductShare, "c2", 800),
		typedInv(investments.ProductShare, "c2", 200),
	}

	metrics := ComputeConcentration(invs)
	corr := metrics.Correlation

	require.Equal(t, []string{"bond", "share"}, corr.Categories)
	require.Len(t, corr.Matrix, 2)
	require.Len(t, corr.Matrix[0], 2)

	assert.InDelta(t, 1.0, corr.Matrix[0][0], 1e-9)
	assert.InDelta(t, 1.0, corr.Matrix[1][1], 1e-9)
	// Symmetric off-diagonal.
	assert.InDelta(t, corr.Matrix[0][1], corr.Matrix[1][0], 1e-9)
}

func TestComputeConcentrationIssuerFallsBackToProductName(t *testing.T) {
	named := investments.CanonicalInvestment{
		ProductType: investments.ProductBond,
		ProductName: "Seria A",
		TotalValue:  1000,
	}
	metrics := ComputeConcentration([]investments.CanonicalInvestment{named})
	assert.InDelta(t, 10000, metrics.HHIByIssuer, 1e-9)
}

func TestComputeConcentrationEmpty(t *testing.T) {
	metrics := ComputeConcentration(nil)

	assert.Zero(t, metrics.HHIByProductType)
	assert.Zero(t, metrics.DiversificationRatio)
	assert.Empty(t, metrics.Correlation.Categories)
	assert.Empty(t, metrics.Correlation.Matrix)
}
