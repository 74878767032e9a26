package records

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Resolver resolves semantic fields against raw records through the alias
// tables. A resolver is stateless and safe for concurrent use.
//
// In strict mode an unknown semantic field panics: it can only be a typo in
// calling code, and dev builds should fail loudly. In production the resolver
// logs and returns the field's zero value instead.
type Resolver struct {
	strict bool
	log    zerolog.Logger
}

// NewResolver creates a field resolver. strict should follow the dev-mode flag.
func NewResolver(strict bool, log zerolog.Logger) *Resolver {
	return &Resolver{
		strict: strict,
		log:    log.With().Str("component", "field_resolver").Logger(),
	}
}

// String resolves a semantic field to its string value, "" when absent.
func (r *Resolver) String(rec RawRecord, collection SourceCollection, field Field) string {
	value, ok := r.resolve(rec, collection, field)
	if !ok {
		return ""
	}
	return stringify(value)
}

// Number resolves a semantic field to a numeric value using SafeNumber
// coercion, 0 when absent or unparsable.
func (r *Resolver) Number(rec RawRecord, collection SourceCollection, field Field) float64 {
	value, ok := r.resolve(rec, collection, field)
	if !ok {
		return 0
	}
	return SafeNumber(value)
}

// Date resolves a semantic field to a timestamp, nil when absent or
// unparsable. Date-quality problems follow the same silent-degradation
// policy as numbers.
func (r *Resolver) Date(rec RawRecord, collection SourceCollection, field Field) *time.Time {
	value, ok := r.resolve(rec, collection, field)
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		return parseDate(v)
	default:
		return nil
	}
}

// resolve walks the alias list for the field and returns the first present,
// non-null, non-empty value.
func (r *Resolver) resolve(rec RawRecord, collection SourceCollection, field Field) (interface{}, bool) {
	aliases := aliasesFor(collection, field)
	if aliases == nil {
		if r.strict {
			panic(fmt.Sprintf("records: unknown semantic field %q", field))
		}
		r.log.Error().Str("field", string(field)).Msg("Unknown semantic field, returning zero value")
		return nil, false
	}

	for _, alias := range aliases {
		value, present := rec[alias]
		if !present || value == nil {
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			continue
		}
		return value, true
	}

	return nil, false
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// dateLayouts covers the formats observed across the import generations:
// ISO dates, full RFC3339 timestamps and the dotted format from Excel.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02.01.2006",
	"02/01/2006",
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "NULL") {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
