package records

import (
	"math"
	"strconv"
	"strings"
)

// SafeNumber coerces an arbitrary scalar into a float64, degrading silently
// to 0 on anything unparsable. This mirrors the historical behavior of the
// import pipeline and is deliberate: reported totals depend on absent or
// broken values counting as zero, so a change here changes every total
// downstream. Never turn this into an error path.
//
// Accepted string styles: "12,345.67" (comma thousands) and "12 345,67"
// (space thousands, decimal comma). The case-insensitive literal "NULL"
// means absent. NaN and infinities coerce to 0.
func SafeNumber(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		return parseNumericString(v)
	default:
		return 0
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseNumericString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "NULL") {
		return 0
	}

	// Drop all whitespace, including the non-breaking spaces Excel uses as
	// thousands separators ("12 345,67").
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == ' ' {
			return -1
		}
		return r
	}, s)

	s = normalizeSeparators(s)

	// Strip remaining non-numeric characters (currency symbols, unit
	// suffixes), keeping a leading minus sign and a single decimal point.
	var b strings.Builder
	seenDot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" || cleaned == "-" || cleaned == "." || cleaned == "-." {
		return 0
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

// normalizeSeparators converts the two observed separator conventions to a
// single decimal-point form.
func normalizeSeparators(s string) string {
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// "12,345.67": commas are thousands separators.
		return strings.ReplaceAll(s, ",", "")
	case hasComma && strings.Count(s, ",") == 1:
		// "12345,67": single comma is the decimal separator.
		return strings.Replace(s, ",", ".", 1)
	case hasComma:
		// "1,234,567": multiple commas without a dot are thousands separators.
		return strings.ReplaceAll(s, ",", "")
	default:
		return s
	}
}
