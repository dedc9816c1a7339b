// Copyright Loideroi Labs, 2026. All rights reserved.

// Package taxonomy holds the static field catalog and enumeration tables
// of the disclosure taxonomy. Pure data with lookup accessors; the
// correctness of the tables is an input invariant, not a runtime concern.
// Implements: prd001-fact-model (R2); docs/ARCHITECTURE § Taxonomy Catalog.
package taxonomy

import (
	"strings"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// Namespace is the taxonomy namespace bound to the "mica" prefix.
const Namespace = "http://ec.europa.eu/xbrl/mica/2025"

// sectionOrder is the canonical rendering order of disclosure parts.
var sectionOrder = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// sectionTitles maps a part letter to its heading.
var sectionTitles = map[string]string{
	"A": "Information about the offeror",
	"B": "Information about the issuer",
	"C": "Information about the trading platform operator",
	"D": "Information about the crypto-asset project",
	"E": "Information about the offer to the public",
	"F": "Information about the crypto-asset",
	"G": "Rights and obligations attached to the crypto-asset",
	"H": "Information on the underlying technology",
	"I": "Information on risks",
	"J": "Information on sustainability indicators",
}

var (
	fieldsByNumber  map[string]types.FieldDefinition
	fieldsByElement map[string]types.FieldDefinition
	fieldsBySection map[string][]types.FieldDefinition
)

func init() {
	fieldsByNumber = make(map[string]types.FieldDefinition, len(Fields))
	fieldsByElement = make(map[string]types.FieldDefinition, len(Fields))
	fieldsBySection = make(map[string][]types.FieldDefinition)
	for _, f := range Fields {
		fieldsByNumber[f.Number] = f
		fieldsByElement[f.Element] = f
		fieldsBySection[f.Section] = append(fieldsBySection[f.Section], f)
	}
}

// SectionOrder returns the canonical part order ("A" through "J").
func SectionOrder() []string {
	out := make([]string, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

// SectionTitle returns the heading for a part letter, or the letter itself
// when unknown.
func SectionTitle(section string) string {
	if t, ok := sectionTitles[section]; ok {
		return t
	}
	return section
}

// FieldByNumber looks up a field definition by disclosure number.
func FieldByNumber(number string) (types.FieldDefinition, bool) {
	f, ok := fieldsByNumber[number]
	return f, ok
}

// FieldByElement looks up a field definition by taxonomy element name.
func FieldByElement(element string) (types.FieldDefinition, bool) {
	f, ok := fieldsByElement[element]
	return f, ok
}

// FieldsBySection returns the catalog-ordered fields of one part.
func FieldsBySection(section string) []types.FieldDefinition {
	return fieldsBySection[section]
}

// ParentNumber returns the parent disclosure number of a lettered
// sub-field ("A.8.a" -> "A.8"), or "" when the number has no lettered
// suffix. Raw-field fallback also consults the parent number.
func ParentNumber(number string) string {
	i := strings.LastIndex(number, ".")
	if i < 0 {
		return ""
	}
	suffix := number[i+1:]
	if len(suffix) != 1 || suffix[0] < 'a' || suffix[0] > 'z' {
		return ""
	}
	return number[:i]
}

// Enumeration resolves a value key for an enumeration-typed element.
func Enumeration(element, key string) (types.EnumerationEntry, bool) {
	table, ok := enumerations[element]
	if !ok {
		return types.EnumerationEntry{}, false
	}
	e, ok := table[key]
	return e, ok
}

// EnumerationKeyForLabel performs the reverse lookup from a human-readable
// label (case-insensitive) back to the value key.
func EnumerationKeyForLabel(element, label string) (string, bool) {
	table, ok := enumerations[element]
	if !ok {
		return "", false
	}
	want := strings.ToLower(strings.TrimSpace(label))
	for key, e := range table {
		if strings.ToLower(e.Label) == want {
			return key, true
		}
	}
	return "", false
}

// IsCountryElement reports whether the element's enumeration is the
// country table. Country enumerations get a best-effort code extraction
// before the plain-text fallback.
func IsCountryElement(element string) bool {
	return countryElements[element]
}
