// Copyright Loideroi Labs, 2026. All rights reserved.

package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/facts"
	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/taxonomy"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

var (
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	symbolPattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)
	alpha2Pattern = regexp.MustCompile(`^[A-Z]{2}$`)
)

// valueRule is one cross-field or format assertion. check returns nil
// when the assertion passes or is not applicable with a passing outcome;
// rules skip silently (no assertion counted) when their input is absent,
// since absence is the existence catalog's concern.
type valueRule struct {
	id    string
	field string
	check func(*types.WhitepaperData) *types.ValidationError
}

// skipRule marks a rule whose input is absent.
var skipRule = &types.ValidationError{RuleID: "skip"}

var valueRules = []valueRule{
	{id: "VAL-DATE-001", field: "offering", check: func(r *types.WhitepaperData) *types.ValidationError {
		if r.Offering.StartDate.IsZero() || r.Offering.EndDate.IsZero() {
			return skipRule
		}
		if !r.Offering.EndDate.Before(r.Offering.StartDate) {
			return nil
		}
		return &types.ValidationError{
			Severity: types.SeverityError,
			Message: fmt.Sprintf("offer end date %s precedes start date %s",
				r.Offering.EndDate.Format("2006-01-02"), r.Offering.StartDate.Format("2006-01-02")),
			Field: "offering.end_date",
		}
	}},
	{id: "VAL-SUPPLY-001", field: "offering.total_supply", check: func(r *types.WhitepaperData) *types.ValidationError {
		return requirePositive(r.Offering.TotalSupply, "offering.total_supply", "total supply")
	}},
	{id: "VAL-PRICE-001", field: "offering.price", check: func(r *types.WhitepaperData) *types.ValidationError {
		return requirePositive(r.Offering.Price, "offering.price", "issue price")
	}},
	{id: "VAL-PCT-001", field: "sustainability.renewable_share", check: func(r *types.WhitepaperData) *types.ValidationError {
		norm, ok := facts.NormalizeNumeric(r.Sustainability.RenewableShare)
		if r.Sustainability.RenewableShare == "" || !ok {
			return skipRule
		}
		v, _ := strconv.ParseFloat(norm, 64)
		if v >= 0 && v <= 100 {
			return nil
		}
		return &types.ValidationError{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("renewable energy share %s is outside 0-100", r.Sustainability.RenewableShare),
			Field:    "sustainability.renewable_share",
		}
	}},
	{id: "VAL-CTRY-001", field: "offeror.country", check: func(r *types.WhitepaperData) *types.ValidationError {
		return requireAlpha2(r.Offeror.Country, "offeror.country")
	}},
	{id: "VAL-CTRY-002", field: "issuer.country", check: func(r *types.WhitepaperData) *types.ValidationError {
		if r.Issuer == nil {
			return skipRule
		}
		return requireAlpha2(r.Issuer.Country, "issuer.country")
	}},
	{id: "VAL-CTRY-003", field: "operator.country", check: func(r *types.WhitepaperData) *types.ValidationError {
		if r.Operator == nil {
			return skipRule
		}
		return requireAlpha2(r.Operator.Country, "operator.country")
	}},
	{id: "VAL-URL-001", field: "website", check: func(r *types.WhitepaperData) *types.ValidationError {
		if r.Website == "" {
			return skipRule
		}
		u, err := url.Parse(r.Website)
		if err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
			return nil
		}
		return &types.ValidationError{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("website %q is not a valid http(s) URL", r.Website),
			Field:    "website",
		}
	}},
	{id: "VAL-EMAIL-001", field: "contact_email", check: func(r *types.WhitepaperData) *types.ValidationError {
		if r.ContactEmail == "" {
			return skipRule
		}
		if emailPattern.MatchString(r.ContactEmail) {
			return nil
		}
		return &types.ValidationError{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("contact e-mail %q is not a plausible address", r.ContactEmail),
			Field:    "contact_email",
		}
	}},
	{id: "VAL-SYM-001", field: "offering.token_symbol", check: func(r *types.WhitepaperData) *types.ValidationError {
		if r.Offering.TokenSymbol == "" {
			return skipRule
		}
		if symbolPattern.MatchString(r.Offering.TokenSymbol) {
			return nil
		}
		return &types.ValidationError{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("token symbol %q must be 2-10 uppercase alphanumerics", r.Offering.TokenSymbol),
			Field:    "offering.token_symbol",
		}
	}},
	{id: "VAL-NRG-001", field: "sustainability.energy_consumption", check: func(r *types.WhitepaperData) *types.ValidationError {
		norm, ok := facts.NormalizeNumeric(r.Sustainability.EnergyConsumption)
		if r.Sustainability.EnergyConsumption == "" || !ok {
			return skipRule
		}
		if v, _ := strconv.ParseFloat(norm, 64); v >= 0 {
			return nil
		}
		return &types.ValidationError{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("energy consumption %s must not be negative", r.Sustainability.EnergyConsumption),
			Field:    "sustainability.energy_consumption",
		}
	}},
}

func requirePositive(value, field, label string) *types.ValidationError {
	norm, ok := facts.NormalizeNumeric(value)
	if value == "" || !ok {
		return skipRule
	}
	if v, _ := strconv.ParseFloat(norm, 64); v > 0 {
		return nil
	}
	return &types.ValidationError{
		Severity: types.SeverityError,
		Message:  fmt.Sprintf("%s %s must be positive", label, value),
		Field:    field,
	}
}

func requireAlpha2(code, field string) *types.ValidationError {
	if code == "" {
		return skipRule
	}
	if alpha2Pattern.MatchString(code) {
		return nil
	}
	return &types.ValidationError{
		Severity: types.SeverityError,
		Message:  fmt.Sprintf("country code %q is not a 2-letter uppercase code", code),
		Field:    field,
	}
}

// valueCategory evaluates the cross-field and format assertions, plus the
// two-stage language check: malformed codes are errors, well-formed codes
// outside the supported set are warnings only.
func valueCategory(rec *types.WhitepaperData, supported []string) types.CategoryResult {
	c := types.CategoryResult{Name: "value"}

	for _, rule := range valueRules {
		finding := rule.check(rec)
		if finding == skipRule {
			continue
		}
		if finding == nil {
			c.Passed++
			continue
		}
		c.Failed++
		finding.RuleID = rule.id
		if finding.Severity == types.SeverityError {
			c.Errors = append(c.Errors, *finding)
		} else {
			c.Warnings = append(c.Warnings, *finding)
		}
	}

	if rec.Language != "" {
		if _, err := language.Parse(rec.Language); err != nil || len(rec.Language) != 2 {
			c.Failed++
			c.Errors = append(c.Errors, types.ValidationError{
				RuleID:   "VAL-LANG-001",
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("language %q is not a 2-letter ISO 639-1 code", rec.Language),
				Field:    "language",
			})
		} else if !languageSupported(rec.Language, supported) {
			c.Failed++
			c.Warnings = append(c.Warnings, types.ValidationError{
				RuleID:   "VAL-LANG-002",
				Severity: types.SeverityWarning,
				Message:  fmt.Sprintf("language %q is well-formed but not in the supported set", rec.Language),
				Field:    "language",
			})
		} else {
			c.Passed++
		}
	}

	return c
}

func languageSupported(code string, supported []string) bool {
	if len(supported) == 0 {
		supported = taxonomy.SupportedLanguages()
	}
	code = strings.ToLower(code)
	for _, s := range supported {
		if strings.ToLower(s) == code {
			return true
		}
	}
	return false
}
