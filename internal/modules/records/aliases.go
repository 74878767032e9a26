package records

// Field is a semantic field name known to the resolver. Every canonical
// investment attribute resolves through exactly one Field.
type Field string

const (
	FieldID                      Field = "id"
	FieldClientID                Field = "clientId"
	FieldClientName              Field = "clientName"
	FieldProductID               Field = "productId"
	FieldProductName             Field = "productName"
	FieldProductType             Field = "productType"
	FieldProductStatus           Field = "productStatus"
	FieldSigningDate             Field = "signingDate"
	FieldInvestmentAmount        Field = "investmentAmount"
	FieldRemainingCapital        Field = "remainingCapital"
	FieldRemainingInterest       Field = "remainingInterest"
	FieldRealizedCapital         Field = "realizedCapital"
	FieldRealizedInterest        Field = "realizedInterest"
	FieldCapitalForRestructuring Field = "capitalForRestructuring"
)

// baseAliases maps each semantic field to its lookup order: the canonical
// name first, then the legacy Polish snake_case names, then the capitalized
// and spaced names produced by old Excel exports. The first alias present
// with a non-null, non-empty value wins.
var baseAliases = map[Field][]string{
	FieldID:       {"id", "_id", "ID"},
	FieldClientID: {"clientId", "klient_id", "id_klienta"},
	FieldClientName: {
		"clientName", "klient", "nazwa_klienta",
		"Klient", "Nazwa klienta",
	},
	FieldProductID: {"productId", "produkt_id", "id_produktu"},
	FieldProductName: {
		"productName", "produkt", "nazwa_produktu",
		"Produkt", "Nazwa produktu",
	},
	FieldProductType: {
		"productType", "typ_produktu",
		"Typ produktu", "Typ",
	},
	FieldProductStatus: {
		"productStatus", "status_produktu", "status",
		"Status produktu", "Status",
	},
	FieldSigningDate: {
		"signingDate", "data_podpisania", "data_umowy",
		"Data podpisania", "Data umowy",
	},
	FieldInvestmentAmount: {
		"investmentAmount", "kwota_inwestycji", "wartosc_inwestycji",
		"Kwota inwestycji", "Wartość inwestycji",
	},
	FieldRemainingCapital: {
		"remainingCapital", "kapital_pozostaly", "kapital_do_zwrotu",
		"Kapitał pozostały", "Kapitał do zwrotu",
	},
	FieldRemainingInterest: {
		"remainingInterest", "odsetki_pozostale",
		"Odsetki pozostałe", "Odsetki",
	},
	FieldRealizedCapital: {
		"realizedCapital", "kapital_zrealizowany", "kapital_wyplacony",
		"Kapitał zrealizowany",
	},
	FieldRealizedInterest: {
		"realizedInterest", "odsetki_zrealizowane", "odsetki_wyplacone",
		"Odsetki zrealizowane",
	},
	FieldCapitalForRestructuring: {
		"capitalForRestructuring", "kapital_do_restrukturyzacji",
		"Kapitał do restrukturyzacji",
	},
}

// collectionAliases extends the base table per source collection. Older
// imports named amount and capital fields after the product itself, so the
// applicable aliases depend on where the record came from. Collection
// aliases are consulted after the base list.
var collectionAliases = map[SourceCollection]map[Field][]string{
	CollectionBonds: {
		FieldInvestmentAmount: {"wartosc_obligacji", "Wartość obligacji"},
		FieldProductName:      {"seria_obligacji", "Seria obligacji"},
	},
	CollectionShares: {
		FieldInvestmentAmount: {"wartosc_udzialow", "Wartość udziałów"},
	},
	CollectionLoans: {
		FieldInvestmentAmount: {"kwota_pozyczki", "Kwota pożyczki"},
		FieldRemainingCapital: {"kapital_pozyczki", "Kapitał pożyczki"},
	},
	CollectionApartments: {
		FieldInvestmentAmount: {"wartosc_mieszkania", "Wartość mieszkania"},
	},
}

// aliasesFor returns the full lookup order for a field within a collection.
// Returns nil for an unknown semantic field.
func aliasesFor(collection SourceCollection, field Field) []string {
	base, ok := baseAliases[field]
	if !ok {
		return nil
	}

	extra := collectionAliases[collection][field]
	if len(extra) == 0 {
		return base
	}

	combined := make([]string, 0, len(base)+len(extra))
	combined = append(combined, base...)
	combined = append(combined, extra...)
	return combined
}
