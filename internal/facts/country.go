// Copyright Loideroi Labs, 2026. All rights reserved.

package facts

import (
	"strings"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/taxonomy"
)

// ExtractCountryCode makes a best-effort attempt to pull an alpha-2
// country code out of free-text address content. It first looks for a
// known country name anywhere in the text, then for a standalone
// uppercase two-letter token that is a known code. Returns "" when
// nothing matches; the caller falls back to plain-text tagging.
// Per prd001-fact-model R4.3.
func ExtractCountryCode(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	best := ""
	bestLen := 0
	for code, name := range taxonomy.Countries() {
		if strings.Contains(lower, strings.ToLower(name)) && len(name) > bestLen {
			best = code
			bestLen = len(name)
		}
	}
	if best != "" {
		return best
	}

	// Address lines often end in a bare country code ("… 1010 AT").
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '\n' || r == '\t'
	}) {
		if len(tok) == 2 && tok == strings.ToUpper(tok) && taxonomy.IsCountryCode(tok) {
			return tok
		}
	}
	return ""
}
