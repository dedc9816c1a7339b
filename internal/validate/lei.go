// Copyright Loideroi Labs, 2026. All rights reserved.

package validate

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// leiPattern is the ISO 17442 shape: 18 alphanumerics then 2 check digits.
var leiPattern = regexp.MustCompile(`^[A-Z0-9]{18}[0-9]{2}$`)

// FormatValid reports whether lei has the 20-character LEI shape.
func FormatValid(lei string) bool {
	return leiPattern.MatchString(lei)
}

// ChecksumValid verifies the mod-97 check digits: letters expand to two
// digits (A=10 … Z=35), the digit string is reduced modulo 97 running
// digit by digit, and the identifier is valid iff the final remainder is 1.
// Structurally the same check as an IBAN. Per prd004-validation R2.2.
func ChecksumValid(lei string) bool {
	rem := 0
	for _, r := range lei {
		switch {
		case r >= '0' && r <= '9':
			rem = (rem*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			rem = (rem*100 + int(r-'A') + 10) % 97
		default:
			return false
		}
	}
	return rem == 1
}

// RegistryLookup is the optional external identifier registry. Its
// failure or absence never blocks validation; findings from it are
// warnings only. Per prd005-registry R1.4.
type RegistryLookup interface {
	Status(ctx context.Context, lei string) (string, error)
}

// registryStatusActive is the only registry status that raises no warning.
const registryStatusActive = "ISSUED"

// identifierCategory runs the format, checksum, and optional registry
// assertions over the primary entity identifier.
func identifierCategory(ctx context.Context, rec *types.WhitepaperData, reg RegistryLookup) types.CategoryResult {
	c := types.CategoryResult{Name: "identifier"}
	lei := rec.Offeror.LEI

	if !FormatValid(lei) {
		c.Failed++
		c.Errors = append(c.Errors, types.ValidationError{
			RuleID:   "LEI-001",
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("legal entity identifier %q does not match the 20-character format", lei),
			Field:    "offeror.lei",
		})
		return c
	}
	c.Passed++

	if !ChecksumValid(lei) {
		c.Failed++
		c.Errors = append(c.Errors, types.ValidationError{
			RuleID:   "LEI-002",
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("legal entity identifier %q fails the mod-97 checksum", lei),
			Field:    "offeror.lei",
		})
		return c
	}
	c.Passed++

	if reg == nil {
		return c
	}

	status, err := reg.Status(ctx, lei)
	if err != nil {
		// Degrade to format-only validation: the lookup is best-effort.
		c.Failed++
		c.Warnings = append(c.Warnings, types.ValidationError{
			RuleID:   "LEI-003",
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("registry lookup unavailable: %v", err),
			Field:    "offeror.lei",
		})
		return c
	}
	if status != registryStatusActive {
		c.Failed++
		c.Warnings = append(c.Warnings, types.ValidationError{
			RuleID:   "LEI-004",
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("registry reports identifier status %q", status),
			Field:    "offeror.lei",
		})
		return c
	}
	c.Passed++
	return c
}
