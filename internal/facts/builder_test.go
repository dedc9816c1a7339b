// Copyright Loideroi Labs, 2026. All rights reserved.

package facts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

func baseRecord() *types.WhitepaperData {
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
		Website:      "https://example-labs.example",
		ContactEmail: "contact@example-labs.example",
		ProjectName:  "Example Token",
		Offering: types.OfferingTerms{
			TotalSupply: "1000000",
			Price:       "0.50",
			Currency:    "EUR",
			TokenName:   "Example Token",
			TokenSymbol: "EXT",
		},
	}
}

func TestBuildRequiresPrimaryIdentifier(t *testing.T) {
	rec := baseRecord()
	rec.Offeror.LEI = "   "

	model, err := Build(rec)
	require.Error(t, err)
	assert.Nil(t, model)
	assert.Contains(t, err.Error(), "identifier missing")
}

func TestBuildPrimaryContexts(t *testing.T) {
	model, err := Build(baseRecord())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(model.Contexts), 2)

	instant := model.Contexts[0]
	assert.Equal(t, CtxInstant, instant.ID)
	assert.Equal(t, "529900T8BM49AURSDO55", instant.EntityID)
	assert.Equal(t, types.LEIScheme, instant.Scheme)
	assert.Equal(t, "2026-03-15", instant.Instant.Format("2006-01-02"))

	duration := model.Contexts[1]
	assert.Equal(t, CtxDuration, duration.ID)
	assert.Equal(t, "2026-01-01", duration.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-12-31", duration.EndDate.Format("2006-01-02"))
}

func TestBuildSecondaryEntityContexts(t *testing.T) {
	tests := []struct {
		name        string
		issuer      *types.Entity
		wantCtx     string
		wantIssuerB bool
	}{
		{
			name:    "no issuer reports in primary context",
			issuer:  nil,
			wantCtx: "",
		},
		{
			name:    "issuer with same identifier shares the primary context",
			issuer:  &types.Entity{LEI: "529900T8BM49AURSDO55", Name: "Example Labs GmbH"},
			wantCtx: CtxDuration,
		},
		{
			name:    "issuer with distinct identifier gets a dimensional context",
			issuer:  &types.Entity{LEI: "5299009D9BIL4D4UHT93", Name: "Example Issuance S.A."},
			wantCtx: CtxIssuer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			rec.Issuer = tt.issuer

			model, err := Build(rec)
			require.NoError(t, err)

			fv, ok := model.FactMap["mica:IssuerName"]
			if tt.issuer == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantCtx, fv.ContextRef)

			if tt.wantCtx == CtxIssuer {
				var found *types.Context
				for i := range model.Contexts {
					if model.Contexts[i].ID == CtxIssuer {
						found = &model.Contexts[i]
					}
				}
				require.NotNil(t, found)
				assert.Equal(t, "5299009D9BIL4D4UHT93", found.EntityID)
				require.NotNil(t, found.Dimension)
				assert.Equal(t, "mica:EntityRoleAxis", found.Dimension.Axis)
				assert.Equal(t, "issuer", found.Dimension.Value)
			}
		})
	}
}

func TestBuildTypedPrecedenceOverRaw(t *testing.T) {
	rec := baseRecord()
	rec.RawFields = map[string]string{
		"A.1": "Shadow Name Ltd",
		"G.1": "Holders may redeem tokens at any time.",
	}

	model, err := Build(rec)
	require.NoError(t, err)

	// Typed A.1 wins over the raw bag.
	assert.Equal(t, "Example Labs GmbH", model.FactMap["mica:OfferorName"].Value)

	// G.1 has no typed value, so the raw bag fills it.
	assert.Equal(t, "Holders may redeem tokens at any time.",
		model.FactMap["mica:RightsAndObligations"].Value)
}

func TestBuildRawNumericIsolation(t *testing.T) {
	rec := baseRecord()
	rec.Offering.Price = ""
	rec.RawFields = map[string]string{
		"E.5":  "The issue price is €1,500.00 per token.",
		"E.10": "Not applicable, the offer carries no fee.",
	}

	model, err := Build(rec)
	require.NoError(t, err)

	price := model.FactMap["mica:TokenIssuePrice"]
	assert.Equal(t, "1,500.00", price.Value)
	assert.Equal(t, "unit_EUR", price.UnitRef)
	assert.Equal(t, "2", price.Decimals)

	// No numeric token could be isolated: the fact exists with an empty
	// value and no unit, never a guessed number.
	fees := model.FactMap["mica:SubscriberFees"]
	assert.Equal(t, "", fees.Value)
	assert.Empty(t, fees.UnitRef)
}

func TestBuildTypedValuesAreNotRewritten(t *testing.T) {
	rec := baseRecord()
	rec.Offering.TotalSupply = "600,000 tokens"

	model, err := Build(rec)
	require.NoError(t, err)

	// A typed value that does not normalize to a number keeps its text and
	// gets no unit; token isolation applies to raw free text only.
	supply := model.FactMap["mica:TotalSupplyOfTokens"]
	assert.Equal(t, "600,000 tokens", supply.Value)
	assert.Empty(t, supply.UnitRef)
}

func TestBuildUnits(t *testing.T) {
	rec := baseRecord()
	rec.Sustainability.EnergyConsumption = "125000.5"
	rec.Sustainability.RenewableShare = "42.5"

	model, err := Build(rec)
	require.NoError(t, err)

	units := make(map[string]string)
	for _, u := range model.Units {
		units[u.ID] = u.Measure
	}

	assert.Equal(t, "xbrli:pure", units["unit_pure"])
	assert.Equal(t, "iso4217:EUR", units["unit_EUR"])
	assert.Equal(t, "utr:kWh", units["unit_kWh"])

	supply := model.FactMap["mica:TotalSupplyOfTokens"]
	assert.Equal(t, "unit_pure", supply.UnitRef)
	assert.Equal(t, "0", supply.Decimals)

	energy := model.FactMap["mica:EnergyConsumption"]
	assert.Equal(t, "unit_kWh", energy.UnitRef)

	share := model.FactMap["mica:RenewableEnergyShare"]
	assert.Equal(t, "unit_pure", share.UnitRef)
	assert.Equal(t, "4", share.Decimals)
}

func TestBuildEnumerationResolution(t *testing.T) {
	tests := []struct {
		name      string
		country   string
		wantValue string
		wantURI   bool
	}{
		{"exact code", "DE", "DE", true},
		{"human-readable label", "Germany", "DE", true},
		{"code buried in address text", "Seat: Frankfurt, Germany (HRB 12345)", "DE", true},
		{"unresolvable text falls back to plain", "Atlantis", "Atlantis", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			rec.Offeror.Country = tt.country

			model, err := Build(rec)
			require.NoError(t, err)

			fv := model.FactMap["mica:OfferorCountry"]
			assert.Equal(t, tt.wantValue, fv.Value)
			if tt.wantURI {
				assert.NotEmpty(t, fv.HiddenURI)
				assert.NotEmpty(t, fv.DisplayLabel)
			} else {
				assert.Empty(t, fv.HiddenURI)
			}
		})
	}
}

func TestBuildMemberBlocks(t *testing.T) {
	rec := baseRecord()
	rec.ManagementBody = []types.Person{
		{Identity: "Anna Schmidt", BusinessAddress: "Frankfurt", Function: "CEO"},
		{Identity: "Jon Braun", Function: "CTO"},
	}
	rec.PersonsInvolved = []types.Person{
		{Identity: "Advisor One", Function: "Advisor"},
	}

	model, err := Build(rec)
	require.NoError(t, err)
	require.Len(t, model.Members, 3)

	first := model.Members[0]
	assert.Equal(t, "ctx_member_1", first.ContextID)
	require.Len(t, first.Facts, 3)
	assert.Equal(t, "mica:ManagementBodyMemberIdentity", first.Facts[0].Element)
	assert.Equal(t, "Anna Schmidt", first.Facts[0].Value.Value)

	// Empty sub-fields produce no fact at all.
	second := model.Members[1]
	assert.Equal(t, "ctx_member_2", second.ContextID)
	assert.Len(t, second.Facts, 2)

	person := model.Members[2]
	assert.Equal(t, "ctx_person_1", person.ContextID)

	// Each block has its own typed-dimension context.
	ctxIDs := make(map[string]*types.Dimension)
	for i := range model.Contexts {
		ctxIDs[model.Contexts[i].ID] = model.Contexts[i].Dimension
	}
	require.Contains(t, ctxIDs, "ctx_member_1")
	require.Contains(t, ctxIDs, "ctx_member_2")
	require.Contains(t, ctxIDs, "ctx_person_1")
	assert.Equal(t, "1", ctxIDs["ctx_member_1"].Value)
	assert.Equal(t, "2", ctxIDs["ctx_member_2"].Value)
	assert.Equal(t, "mica:PersonInvolvedAxis", ctxIDs["ctx_person_1"].Axis)
}

func TestFactsFlattenIsDeterministic(t *testing.T) {
	rec := baseRecord()
	rec.ManagementBody = []types.Person{{Identity: "Anna Schmidt", Function: "CEO"}}

	m1, err := Build(rec)
	require.NoError(t, err)
	m2, err := Build(rec)
	require.NoError(t, err)

	assert.Equal(t, m1.Facts(), m2.Facts())
	assert.NotEmpty(t, m1.Facts())
}
