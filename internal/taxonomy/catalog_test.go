// Copyright Loideroi Labs, 2026. All rights reserved.

package taxonomy

import (
	"strings"
	"testing"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// Shape and uniqueness checks only; the tables themselves are input data.

func TestFieldNumbersUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Fields {
		if seen[f.Number] {
			t.Errorf("duplicate field number %q", f.Number)
		}
		seen[f.Number] = true
	}
}

func TestFieldElementsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Fields {
		if seen[f.Element] {
			t.Errorf("duplicate element %q", f.Element)
		}
		seen[f.Element] = true
		if !strings.HasPrefix(f.Element, "mica:") {
			t.Errorf("element %q not in the mica namespace", f.Element)
		}
	}
}

func TestFieldShape(t *testing.T) {
	for _, f := range Fields {
		if f.Label == "" {
			t.Errorf("field %s has empty label", f.Number)
		}
		if f.Section == "" || !strings.HasPrefix(f.Number, f.Section+".") {
			t.Errorf("field %s: number does not match section %q", f.Number, f.Section)
		}
		if f.PeriodType != types.PeriodInstant && f.PeriodType != types.PeriodDuration {
			t.Errorf("field %s has invalid period type %q", f.Number, f.PeriodType)
		}
		if f.IsTextBlock != (f.DataType == types.TypeTextBlock) {
			t.Errorf("field %s: IsTextBlock inconsistent with data type %q", f.Number, f.DataType)
		}
		if f.IsHidden && f.DataType != types.TypeEnumeration {
			t.Errorf("field %s: hidden but not an enumeration", f.Number)
		}
	}
}

func TestEveryFieldInASection(t *testing.T) {
	total := 0
	for _, s := range SectionOrder() {
		total += len(FieldsBySection(s))
	}
	if total != len(Fields) {
		t.Errorf("sections cover %d fields, catalog has %d", total, len(Fields))
	}
}

func TestEnumerationTablesResolvable(t *testing.T) {
	for _, f := range Fields {
		if f.DataType != types.TypeEnumeration {
			continue
		}
		if _, ok := enumerations[f.Element]; !ok {
			t.Errorf("enumeration field %s has no value table", f.Number)
		}
	}
}

func TestEnumerationReverseLookup(t *testing.T) {
	key, ok := EnumerationKeyForLabel("mica:TokenType", "utility token")
	if !ok || key != "utility" {
		t.Errorf("reverse lookup = %q, %v; want utility, true", key, ok)
	}
	if _, ok := EnumerationKeyForLabel("mica:TokenType", "no such label"); ok {
		t.Error("reverse lookup matched a nonexistent label")
	}
}

func TestParentNumber(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"A.8.a", "A.8"},
		{"D.3.c", "D.3"},
		{"E.10", ""},
		{"A", ""},
	}
	for _, tt := range tests {
		if got := ParentNumber(tt.number); got != tt.want {
			t.Errorf("ParentNumber(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestCountryCodesAreAlpha2(t *testing.T) {
	for code := range countries {
		if len(code) != 2 || code != strings.ToUpper(code) {
			t.Errorf("country code %q is not uppercase alpha-2", code)
		}
	}
}
