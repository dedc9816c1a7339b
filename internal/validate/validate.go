// Copyright Loideroi Labs, 2026. All rights reserved.

// Package validate runs the rule catalog over a whitepaper record:
// identifier checksum, existence assertions, value assertions, and the
// duplicate-fact scan, merged into one structured outcome.
// Implements: prd004-validation (R1-R5); docs/ARCHITECTURE § Validation.
package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/dupes"
	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/facts"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// Options tunes one validation run. The zero value runs every category
// except the registry lookup.
type Options struct {
	// Registry, when non-nil, adds the best-effort external identifier
	// lookup. Lookup failures degrade to format-only validation.
	Registry RegistryLookup

	// SupportedLanguages overrides the built-in language set.
	SupportedLanguages []string
}

// Run executes all four validation categories and merges their findings.
// The record is valid iff no ERROR-severity finding exists; warnings
// never block. Validation is independent of generation: it never aborts,
// even when the fact model cannot be built.
func Run(ctx context.Context, rec *types.WhitepaperData, opts Options) *types.ValidationResult {
	res := &types.ValidationResult{Valid: true}
	res.Merge(identifierCategory(ctx, rec, opts.Registry))
	res.Merge(existenceCategory(rec))
	res.Merge(valueCategory(rec, opts.SupportedLanguages))
	res.Merge(duplicateCategory(rec))
	return res
}

// duplicateCategory re-invokes the fact model builder to obtain the fact
// set the generator would produce and scans it for identity-key
// collisions. Each duplicate group is one error.
func duplicateCategory(rec *types.WhitepaperData) types.CategoryResult {
	c := types.CategoryResult{Name: "duplicates"}

	model, err := facts.Build(rec)
	if err != nil {
		c.Failed++
		c.Errors = append(c.Errors, types.ValidationError{
			RuleID:   "DUP-000",
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("fact model unavailable: %v", err),
		})
		return c
	}

	report := dupes.Detect(model.Facts())
	for _, g := range report.Groups {
		c.Failed++
		c.Errors = append(c.Errors, types.ValidationError{
			RuleID:   "DUP-001",
			Severity: types.SeverityError,
			Message: fmt.Sprintf("%d facts share identity (%s, %s, %s): values %s",
				g.Count, g.Element, g.ContextRef, g.UnitRef, strings.Join(g.Values, "; ")),
			Element: g.Element,
		})
	}
	c.Passed = report.TotalFacts - countGroupMembers(report.Groups)
	return c
}

func countGroupMembers(groups []types.DuplicateGroup) int {
	n := 0
	for _, g := range groups {
		n += g.Count
	}
	return n
}
