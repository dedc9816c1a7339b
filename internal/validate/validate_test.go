// Copyright Loideroi Labs, 2026. All rights reserved.

package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCompleteRecordIsValid(t *testing.T) {
	res := Run(context.Background(), completeRecord(), Options{})

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Categories, 4)
	assert.Equal(t, "identifier", res.Categories[0].Name)
	assert.Equal(t, "existence", res.Categories[1].Name)
	assert.Equal(t, "value", res.Categories[2].Name)
	assert.Equal(t, "duplicates", res.Categories[3].Name)
	for _, c := range res.Categories {
		assert.Zero(t, c.Failed, "category %s", c.Name)
	}
}

func TestRunWarningsDoNotBlock(t *testing.T) {
	rec := completeRecord()
	rec.Language = "ja" // well-formed, outside the supported set

	res := Run(context.Background(), rec, Options{})
	assert.True(t, res.Valid)
	assert.NotEmpty(t, res.Warnings)
}

func TestRunErrorsAccumulateAcrossCategories(t *testing.T) {
	rec := completeRecord()
	rec.Offeror.LEI = "529900T8BM49AURSDO54" // checksum failure
	rec.Offeror.Name = ""                    // existence failure
	rec.Offering.TotalSupply = "0"           // value failure

	res := Run(context.Background(), rec, Options{})
	assert.False(t, res.Valid)

	ids := ruleIDs(res.Errors)
	assert.Contains(t, ids, "LEI-002")
	assert.Contains(t, ids, "EX-A.1")
	assert.Contains(t, ids, "VAL-SUPPLY-001")
}

func TestRunNeverAbortsWithoutIdentifier(t *testing.T) {
	rec := completeRecord()
	rec.Offeror.LEI = ""

	// Generation would fail fatally here. Validation still runs every
	// category and reports the unavailable fact model as a finding.
	res := Run(context.Background(), rec, Options{})
	assert.False(t, res.Valid)

	ids := ruleIDs(res.Errors)
	assert.Contains(t, ids, "LEI-001")
	assert.Contains(t, ids, "DUP-000")
	assert.Len(t, res.Categories, 4)
}

func TestRunRegistryOnlyViaOptions(t *testing.T) {
	res := Run(context.Background(), completeRecord(), Options{
		Registry: stubRegistry{status: "LAPSED"},
	})

	assert.True(t, res.Valid, "registry findings are warnings only")
	assert.Contains(t, ruleIDs(res.Warnings), "LEI-004")
}
