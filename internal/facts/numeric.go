// Copyright Loideroi Labs, 2026. All rights reserved.

package facts

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Free-text numeric isolation for raw-field content flowing into
// numeric-typed fields. Per prd001-fact-model R4.4: prefer a number next
// to a currency or unit symbol, otherwise strip date/time-like substrings
// and take the first remaining number that is not a bare calendar year.
// When nothing numeric remains the result is the empty string, never a
// guessed number.

var (
	// currencyAdjacent matches a number directly preceded or followed by
	// a currency or unit symbol ("€1,500.00", "1 500 EUR", "42%").
	currencyPrefixed = regexp.MustCompile(`(?:[€$£]|EUR|USD|GBP|CHF)\s*([0-9](?:[0-9 .,']*[0-9])?)`)
	currencySuffixed = regexp.MustCompile(`([0-9](?:[0-9 .,']*[0-9])?)\s*(?:[€$£%]|EUR|USD|GBP|CHF|kWh)`)

	// dateLike matches ISO dates, slashed dates and clock times.
	dateLike = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{1,2}[/.]\d{1,2}[/.]\d{2,4}|\d{1,2}:\d{2}(?::\d{2})?`)

	// numberToken matches a plain number with optional group/decimal marks.
	numberToken = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)*`)
)

const (
	yearRangeLow  = 1900
	yearRangeHigh = 2100
)

// ExtractNumeric isolates a numeric token from free text. The returned
// token keeps its original punctuation ("1,500.00"); normalization is the
// tagging engine's job.
func ExtractNumeric(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if m := currencyPrefixed.FindStringSubmatch(text); m != nil {
		return trimNumeric(m[1])
	}
	if m := currencySuffixed.FindStringSubmatch(text); m != nil {
		return trimNumeric(m[1])
	}

	// No symbol-adjacent number: remove date/time-like substrings so a
	// "31/12/2025" deadline does not masquerade as a measurement.
	cleaned := dateLike.ReplaceAllString(text, " ")

	for _, tok := range numberToken.FindAllString(cleaned, -1) {
		tok = trimNumeric(tok)
		if tok == "" {
			continue
		}
		if isCalendarYear(tok) {
			continue
		}
		return tok
	}
	return ""
}

// trimNumeric drops trailing group separators left over from matching
// ("1,500," -> "1,500").
func trimNumeric(tok string) string {
	return strings.Trim(tok, ".,'")
}

// NormalizeNumeric strips presentation punctuation from a candidate
// numeric value (commas, currency symbols, percent signs, whitespace and
// a single trailing period) and reports whether what remains parses as a
// finite number. This is the sole determinant of numeric-vs-text tagging
// for numeric-typed fields. Per prd002-inline-tagging R1.2.
func NormalizeNumeric(s string) (string, bool) {
	t := strings.TrimSpace(s)
	for _, sym := range []string{",", "€", "$", "£", "%", " ", " ", "'"} {
		t = strings.ReplaceAll(t, sym, "")
	}
	t = strings.TrimSuffix(t, ".")
	if t == "" {
		return "", false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return "", false
	}
	return t, true
}

// IsValueNumeric reports whether a value qualifies for numeric tagging
// after normalization.
func IsValueNumeric(s string) bool {
	_, ok := NormalizeNumeric(s)
	return ok
}

// isCalendarYear reports whether tok is a bare 4-digit number in the
// calendar-year range. Such tokens are far more likely a year than a
// measurement.
func isCalendarYear(tok string) bool {
	if len(tok) != 4 {
		return false
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return false
	}
	return n >= yearRangeLow && n <= yearRangeHigh
}
