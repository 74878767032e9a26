package investments

import (
	"strings"

	"github.com/jswiatek/kapital/internal/modules/records"
)

// The classification vocabularies are data, not code: a new product name
// variant is a table entry, never a new branch. Matching is case-insensitive
// substring containment, which covers the Polish inflected forms
// ("obligacje", "obligacji", "obligacja") with one stem per family.

type vocabularyEntry struct {
	stem string
	t    ProductType
}

var productTypeVocabulary = []vocabularyEntry{
	{"obligacj", ProductBond},
	{"bond", ProductBond},
	{"udzia", ProductShare},
	{"akcj", ProductShare},
	{"share", ProductShare},
	{"pożyczk", ProductLoan},
	{"pozyczk", ProductLoan},
	{"loan", ProductLoan},
	{"apartament", ProductApartment},
	{"mieszkani", ProductApartment},
	{"apartment", ProductApartment},
}

// activeStatusVocabulary marks a product as active; anything else is inactive.
var activeStatusVocabulary = []string{
	"aktywn", // aktywny, aktywna, aktywne
	"active",
	"czynn", // czynny, czynna
}

// collectionFallbackType classifies records whose product-type field is
// absent by the collection they were imported into.
var collectionFallbackType = map[records.SourceCollection]ProductType{
	records.CollectionBonds:      ProductBond,
	records.CollectionShares:     ProductShare,
	records.CollectionLoans:      ProductLoan,
	records.CollectionApartments: ProductApartment,
}

// ClassifyProductType maps a raw product type or product name to the closed
// ProductType enum. Unmatched input classifies as Other.
func ClassifyProductType(raw string) ProductType {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return ProductOther
	}

	for _, entry := range productTypeVocabulary {
		if strings.Contains(lowered, entry.stem) {
			return entry.t
		}
	}
	return ProductOther
}

// ClassifyProductStatus maps a raw status to Active or Inactive.
func ClassifyProductStatus(raw string) ProductStatus {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	for _, stem := range activeStatusVocabulary {
		if strings.Contains(lowered, stem) {
			return StatusActive
		}
	}
	return StatusInactive
}
