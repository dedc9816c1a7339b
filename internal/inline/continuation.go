// Copyright Loideroi Labs, 2026. All rights reserved.

package inline

import (
	"strings"
	"unicode/utf8"
)

// FragmentBudget is the maximum byte length of one text-block fragment.
// Text blocks above this length are split into a continuation chain.
const FragmentBudget = 2500

// boundaryFloor is the fraction of the budget below which a boundary is
// considered too early to cut at, as long as a later one exists.
const boundaryFloor = 70

// SplitText splits text into ordered fragments of at most budget bytes,
// cutting at the best available paragraph, then line, then word boundary.
// A mid-word cut happens only when the chunk contains no boundary at all.
// Concatenating the returned fragments reproduces text exactly.
func SplitText(text string, budget int) []string {
	if budget <= 0 || len(text) <= budget {
		return []string{text}
	}

	var frags []string
	rest := text
	for len(rest) > budget {
		cut := boundaryCut(rest, budget)
		frags = append(frags, rest[:cut])
		rest = rest[cut:]
	}
	return append(frags, rest)
}

// boundaryCut picks the cut position for the next fragment. Each boundary
// kind is accepted at or past the floor; when no kind reaches the floor
// the latest boundary of any kind is used, and only a boundary-free chunk
// is cut mid-word (at a rune boundary).
func boundaryCut(s string, budget int) int {
	window := s[:budget]
	floor := budget * boundaryFloor / 100

	boundaries := []struct {
		sep string
	}{
		{"\n\n"},
		{"\n"},
		{" "},
	}

	for _, b := range boundaries {
		if i := strings.LastIndex(window, b.sep); i >= floor {
			return i + len(b.sep)
		}
	}
	best := -1
	bestLen := 0
	for _, b := range boundaries {
		if i := strings.LastIndex(window, b.sep); i > best {
			best = i
			bestLen = len(b.sep)
		}
	}
	// A boundary at index 0 still yields a non-empty cut (the separator
	// itself), so the chunk always shrinks.
	if best >= 0 {
		return best + bestLen
	}

	cut := budget
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		cut = budget
	}
	return cut
}
