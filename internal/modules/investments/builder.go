package investments

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/jswiatek/kapital/internal/modules/records"
)

// ErrUnidentifiableRecord marks a raw record that resolves to no identity at
// all: no investment id, no client id, no client name. Such a record cannot
// be attributed to anyone and is skipped by the caller; everything else
// degrades to zero values per the coercion policy.
var ErrUnidentifiableRecord = errors.New("investments: record has no resolvable identity")

// Builder turns raw records into canonical investments. Side-effect-free and
// deterministic: the same raw record always builds the same entity.
type Builder struct {
	resolver *records.Resolver
	log      zerolog.Logger
}

// NewBuilder creates a new canonical investment builder
func NewBuilder(resolver *records.Resolver, log zerolog.Logger) *Builder {
	return &Builder{
		resolver: resolver,
		log:      log.With().Str("component", "investment_builder").Logger(),
	}
}

// Build resolves every semantic field of the record, classifies the product,
// and computes the derived monetary fields.
func (b *Builder) Build(rec records.RawRecord, collection records.SourceCollection) (CanonicalInvestment, error) {
	r := b.resolver

	inv := CanonicalInvestment{
		ID:          r.String(rec, collection, records.FieldID),
		ClientID:    r.String(rec, collection, records.FieldClientID),
		ProductID:   r.String(rec, collection, records.FieldProductID),
		ClientName:  r.String(rec, collection, records.FieldClientName),
		ProductName: r.String(rec, collection, records.FieldProductName),
		SigningDate: r.Date(rec, collection, records.FieldSigningDate),
		Source:      collection,

		InvestmentAmount:        r.Number(rec, collection, records.FieldInvestmentAmount),
		RemainingCapital:        r.Number(rec, collection, records.FieldRemainingCapital),
		RemainingInterest:       r.Number(rec, collection, records.FieldRemainingInterest),
		RealizedCapital:         r.Number(rec, collection, records.FieldRealizedCapital),
		RealizedInterest:        r.Number(rec, collection, records.FieldRealizedInterest),
		CapitalForRestructuring: r.Number(rec, collection, records.FieldCapitalForRestructuring),
	}

	if inv.ID == "" && inv.ClientID == "" && inv.ClientName == "" {
		return CanonicalInvestment{}, ErrUnidentifiableRecord
	}

	inv.ProductType = b.classifyType(rec, collection, inv.ProductName)
	inv.ProductStatus = ClassifyProductStatus(r.String(rec, collection, records.FieldProductStatus))

	inv.computeDerived()
	return inv, nil
}

// classifyType prefers the explicit product-type field, falls back to the
// product name, and finally to the source collection itself.
func (b *Builder) classifyType(rec records.RawRecord, collection records.SourceCollection, productName string) ProductType {
	rawType := b.resolver.String(rec, collection, records.FieldProductType)
	if t := ClassifyProductType(rawType); t != ProductOther {
		return t
	}
	if t := ClassifyProductType(productName); t != ProductOther {
		return t
	}
	if t, ok := collectionFallbackType[collection]; ok {
		return t
	}
	return ProductOther
}
