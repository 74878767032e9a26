// Package records implements the normalization boundary of the engine: raw,
// loosely-typed documents from the record store are resolved into typed
// values through priority-ordered field alias tables.
//
// The raw collections were accumulated over several data-import generations
// and mix canonical English field names, legacy Polish snake_case names and
// capitalized names from old Excel exports. The alias tables make every
// fallback order an explicit, testable data structure instead of lookup
// chains scattered across call sites.
package records

// SourceCollection identifies the raw collection a record was fetched from.
// The collection decides which legacy aliases apply on top of the base table.
type SourceCollection string

const (
	CollectionBonds      SourceCollection = "bonds"
	CollectionShares     SourceCollection = "shares"
	CollectionLoans      SourceCollection = "loans"
	CollectionApartments SourceCollection = "apartments"
	CollectionGeneric    SourceCollection = "investments"
)

// Collections returns every known source collection in fetch order.
func Collections() []SourceCollection {
	return []SourceCollection{
		CollectionBonds,
		CollectionShares,
		CollectionLoans,
		CollectionApartments,
		CollectionGeneric,
	}
}

// RawRecord is an open key/value document as delivered by the record store.
// Values are scalars: numbers, strings, nil, date-like values. Records are
// immutable inputs and are never mutated by the engine.
type RawRecord map[string]interface{}
