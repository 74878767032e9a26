// Package investments builds canonical investment entities from raw records.
package investments

import (
	"time"

	"github.com/jswiatek/kapital/internal/modules/records"
)

// ProductType is the closed classification of an investment product.
type ProductType string

const (
	ProductBond      ProductType = "bond"
	ProductShare     ProductType = "share"
	ProductLoan      ProductType = "loan"
	ProductApartment ProductType = "apartment"
	ProductOther     ProductType = "other"
)

// ProductTypes returns every product type, used to build complete subtotal maps.
func ProductTypes() []ProductType {
	return []ProductType{ProductBond, ProductShare, ProductLoan, ProductApartment, ProductOther}
}

// ProductStatus is the closed activity classification of a product.
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
)

// CanonicalInvestment is the normalized, alias-resolved investment entity all
// downstream computation operates on. It is created per request from a fresh
// raw record and never persisted.
//
// The three derived fields are pure functions of the monetary fields and are
// recomputed by computeDerived; nothing may assign them independently.
type CanonicalInvestment struct {
	ID        string `json:"id"`
	ClientID  string `json:"client_id"`
	ProductID string `json:"product_id"`

	ClientName    string                   `json:"client_name"`
	ProductName   string                   `json:"product_name"`
	ProductType   ProductType              `json:"product_type"`
	ProductStatus ProductStatus            `json:"product_status"`
	SigningDate   *time.Time               `json:"signing_date,omitempty"`
	Source        records.SourceCollection `json:"source_collection"`

	InvestmentAmount        float64 `json:"investment_amount"`
	RemainingCapital        float64 `json:"remaining_capital"`
	RemainingInterest       float64 `json:"remaining_interest"`
	RealizedCapital         float64 `json:"realized_capital"`
	RealizedInterest        float64 `json:"realized_interest"`
	CapitalForRestructuring float64 `json:"capital_for_restructuring"`

	// Derived fields, see computeDerived.
	TotalValue                 float64 `json:"total_value"`
	ViableCapital              float64 `json:"viable_capital"`
	CapitalSecuredByRealEstate float64 `json:"capital_secured_by_real_estate"`
}

// computeDerived recomputes the derived fields:
//
//	totalValue    = remainingCapital + remainingInterest
//	viableCapital = remainingCapital for active products, 0 otherwise
//	capitalSecuredByRealEstate = max(remainingCapital - capitalForRestructuring, 0)
//
// The secured-capital formula is the computed variant; the historical
// zeroed-out variant was dropped when the duplicated implementations were
// collapsed into this engine.
func (inv *CanonicalInvestment) computeDerived() {
	inv.TotalValue = inv.RemainingCapital + inv.RemainingInterest

	if inv.ProductStatus == StatusActive {
		inv.ViableCapital = inv.RemainingCapital
	} else {
		inv.ViableCapital = 0
	}

	secured := inv.RemainingCapital - inv.CapitalForRestructuring
	if secured < 0 {
		secured = 0
	}
	inv.CapitalSecuredByRealEstate = secured
}

// ReturnPercent is the per-investment return used by the risk metrics:
// (totalValue - investmentAmount) / investmentAmount * 100, 0 for a zero
// investment amount.
func (inv *CanonicalInvestment) ReturnPercent() float64 {
	if inv.InvestmentAmount == 0 {
		return 0
	}
	return (inv.TotalValue - inv.InvestmentAmount) / inv.InvestmentAmount * 100
}
