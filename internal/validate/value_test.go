// Copyright Loideroi Labs, 2026. All rights reserved.

package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

func TestValueCompleteRecordPasses(t *testing.T) {
	c := valueCategory(completeRecord(), nil)
	assert.Equal(t, "value", c.Name)
	assert.Empty(t, c.Errors)
	assert.Empty(t, c.Warnings)
	assert.Zero(t, c.Failed)
}

func TestValueRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*types.WhitepaperData)
		wantRule string
		warning  bool
	}{
		{
			name: "end date before start date",
			mutate: func(r *types.WhitepaperData) {
				r.Offering.StartDate = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
				r.Offering.EndDate = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
			},
			wantRule: "VAL-DATE-001",
		},
		{
			name:     "zero total supply",
			mutate:   func(r *types.WhitepaperData) { r.Offering.TotalSupply = "0" },
			wantRule: "VAL-SUPPLY-001",
		},
		{
			name:     "negative price",
			mutate:   func(r *types.WhitepaperData) { r.Offering.Price = "-1" },
			wantRule: "VAL-PRICE-001",
		},
		{
			name:     "renewable share over 100",
			mutate:   func(r *types.WhitepaperData) { r.Sustainability.RenewableShare = "120" },
			wantRule: "VAL-PCT-001",
		},
		{
			name:     "lowercase country code",
			mutate:   func(r *types.WhitepaperData) { r.Offeror.Country = "de" },
			wantRule: "VAL-CTRY-001",
		},
		{
			name:     "website without scheme",
			mutate:   func(r *types.WhitepaperData) { r.Website = "example-labs.example" },
			wantRule: "VAL-URL-001",
		},
		{
			name:     "implausible e-mail",
			mutate:   func(r *types.WhitepaperData) { r.ContactEmail = "not-an-address" },
			wantRule: "VAL-EMAIL-001",
		},
		{
			name:     "lowercase token symbol",
			mutate:   func(r *types.WhitepaperData) { r.Offering.TokenSymbol = "ext" },
			wantRule: "VAL-SYM-001",
		},
		{
			name:     "negative energy consumption",
			mutate:   func(r *types.WhitepaperData) { r.Sustainability.EnergyConsumption = "-5" },
			wantRule: "VAL-NRG-001",
		},
		{
			name:     "malformed language code",
			mutate:   func(r *types.WhitepaperData) { r.Language = "deu" },
			wantRule: "VAL-LANG-001",
		},
		{
			name:     "well-formed unsupported language warns",
			mutate:   func(r *types.WhitepaperData) { r.Language = "ja" },
			wantRule: "VAL-LANG-002",
			warning:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := completeRecord()
			tt.mutate(rec)

			c := valueCategory(rec, nil)
			if tt.warning {
				assert.Contains(t, ruleIDs(c.Warnings), tt.wantRule)
				assert.Empty(t, c.Errors)
			} else {
				assert.Contains(t, ruleIDs(c.Errors), tt.wantRule)
			}
		})
	}
}

func TestValueRulesSkipAbsentInput(t *testing.T) {
	rec := completeRecord()
	rec.Offering.TotalSupply = ""
	rec.Offering.Price = "to be announced"
	rec.Website = ""
	rec.Sustainability.RenewableShare = ""

	// Absence and non-numeric text are the existence catalog's concern;
	// the value rules stay silent on them.
	c := valueCategory(rec, nil)
	ids := ruleIDs(append(c.Errors, c.Warnings...))
	assert.NotContains(t, ids, "VAL-SUPPLY-001")
	assert.NotContains(t, ids, "VAL-PRICE-001")
	assert.NotContains(t, ids, "VAL-URL-001")
	assert.NotContains(t, ids, "VAL-PCT-001")
}

func TestValueLanguageOverride(t *testing.T) {
	rec := completeRecord()
	rec.Language = "ja"

	c := valueCategory(rec, []string{"ja", "en"})
	assert.Empty(t, c.Warnings)
	assert.Empty(t, c.Errors)
}
