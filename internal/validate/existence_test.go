// Copyright Loideroi Labs, 2026. All rights reserved.

package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// completeRecord returns a record that passes every validation category.
func completeRecord() *types.WhitepaperData {
	return &types.WhitepaperData{
		DocumentDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Language:     "de",
		OfferingType: types.OfferingUtility,
		Offeror: types.Entity{
			LEI:     "529900T8BM49AURSDO55",
			Name:    "Example Labs GmbH",
			Address: "Taunusanlage 12, 60325 Frankfurt am Main",
			Country: "DE",
		},
		Website:              "https://example-labs.example",
		ContactEmail:         "contact@example-labs.example",
		ProjectName:          "Example Token",
		ProjectDescription:   "A settlement token for example marketplaces.",
		AssetDescription:     "Fungible utility token on a public ledger.",
		RightsAndObligations: "Holders may use tokens to settle marketplace fees.",
		Offering: types.OfferingTerms{
			StartDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
			TotalSupply: "1000000",
			Price:       "0.50",
			Currency:    "EUR",
			TokenName:   "Example Token",
			TokenSymbol: "EXT",
		},
		Technology: types.Technology{
			Description:        "Public proof-of-stake ledger.",
			DLTType:            "public-permissionless",
			ConsensusMechanism: "proof-of-stake",
		},
		Risks: types.RiskNarratives{
			OfferRisks:      "The offer may be undersubscribed.",
			AssetRisks:      "Token value may fall to zero.",
			TechnologyRisks: "Consensus failures may halt transfers.",
			ProjectRisks:    "The project may be discontinued.",
		},
		Sustainability: types.Sustainability{
			EnergyConsumption: "125000.5",
			RenewableShare:    "42.5",
			Methodology:       "Metered validator consumption, annualized.",
		},
	}
}

func TestExistenceCompleteRecordPasses(t *testing.T) {
	c := existenceCategory(completeRecord())
	assert.Equal(t, "existence", c.Name)
	assert.Empty(t, c.Errors)
	assert.Empty(t, c.Warnings)
	assert.Zero(t, c.Failed)
	assert.Greater(t, c.Passed, 15)
}

func TestExistenceMissingRequiredFields(t *testing.T) {
	rec := completeRecord()
	rec.Offeror.Name = ""
	rec.RightsAndObligations = "   "
	rec.Risks.AssetRisks = ""

	c := existenceCategory(rec)

	errorIDs := ruleIDs(c.Errors)
	assert.Contains(t, errorIDs, "EX-A.1")
	assert.Contains(t, errorIDs, "EX-G.1")

	// Asset risks are a warning-grade field.
	assert.Contains(t, ruleIDs(c.Warnings), "EX-I.2")
	assert.Equal(t, 3, c.Failed)
}

func TestExistenceOfferingTypeScoping(t *testing.T) {
	rec := completeRecord()
	rec.OfferingType = types.OfferingAssetReferenced
	rec.Offering.StartDate = time.Time{}
	rec.Offering.EndDate = time.Time{}
	rec.Offering.TotalSupply = ""

	c := existenceCategory(rec)

	// Offer-period rules apply to public offers only; an asset-referenced
	// paper without offer dates is complete.
	ids := ruleIDs(append(c.Errors, c.Warnings...))
	assert.NotContains(t, ids, "EX-E.2")
	assert.NotContains(t, ids, "EX-E.3")
	assert.NotContains(t, ids, "EX-E.4")
}

func TestExistencePreconditions(t *testing.T) {
	t.Run("issuer rules dormant without issuer", func(t *testing.T) {
		rec := completeRecord()
		rec.Issuer = nil
		ids := ruleIDs(append(existenceCategory(rec).Errors, existenceCategory(rec).Warnings...))
		assert.NotContains(t, ids, "EX-B.1")
	})

	t.Run("issuer present without name fires", func(t *testing.T) {
		rec := completeRecord()
		rec.Issuer = &types.Entity{LEI: "5299009D9BIL4D4UHT93"}
		assert.Contains(t, ruleIDs(existenceCategory(rec).Errors), "EX-B.1")
	})

	t.Run("currency required only when price present", func(t *testing.T) {
		rec := completeRecord()
		rec.Offering.Currency = ""
		assert.Contains(t, ruleIDs(existenceCategory(rec).Errors), "EX-E.6")

		rec.Offering.Price = ""
		c := existenceCategory(rec)
		assert.NotContains(t, ruleIDs(append(c.Errors, c.Warnings...)), "EX-E.6")
	})

	t.Run("max subscription expected once min is set", func(t *testing.T) {
		rec := completeRecord()
		rec.Offering.MinSubscription = "100"
		assert.Contains(t, ruleIDs(existenceCategory(rec).Warnings), "EX-E.8")
	})

	t.Run("methodology expected once energy is reported", func(t *testing.T) {
		rec := completeRecord()
		rec.Sustainability.Methodology = ""
		assert.Contains(t, ruleIDs(existenceCategory(rec).Warnings), "EX-J.3")
	})
}

func ruleIDs(findings []types.ValidationError) []string {
	ids := make([]string, len(findings))
	for i, f := range findings {
		ids[i] = f.RuleID
	}
	return ids
}
