// Copyright Loideroi Labs, 2026. All rights reserved.

package validate

import (
	"fmt"
	"strings"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// existenceRule is one required-field assertion. A rule fires only when
// its precondition (if any) holds, the record's offering type is in its
// applies-to set (empty set = all types), and the target is absent/empty.
// Per prd004-validation R3.1.
type existenceRule struct {
	id       string
	field    string
	element  string
	severity types.Severity

	appliesTo    []types.OfferingType
	precondition func(*types.WhitepaperData) bool
	get          func(*types.WhitepaperData) string
}

var publicOffers = []types.OfferingType{types.OfferingUtility, types.OfferingOther}

var existenceRules = []existenceRule{
	{id: "EX-A.1", field: "offeror.name", element: "mica:OfferorName", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.Offeror.Name }},
	{id: "EX-A.3", field: "offeror.address", element: "mica:OfferorRegisteredAddress", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.Offeror.Address }},
	{id: "EX-A.4", field: "offeror.country", element: "mica:OfferorCountry", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.Offeror.Country }},
	{id: "EX-A.7", field: "contact_email", element: "mica:OfferorContactEmail", severity: types.SeverityWarning,
		get: func(r *types.WhitepaperData) string { return r.ContactEmail }},
	{id: "EX-A.9", field: "document_date", element: "mica:WhitepaperDate", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string {
			if r.DocumentDate.IsZero() {
				return ""
			}
			return "set"
		}},
	{id: "EX-A.10", field: "language", element: "mica:WhitepaperLanguage", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.Language }},

	{id: "EX-B.1", field: "issuer.name", element: "mica:IssuerName", severity: types.SeverityError,
		precondition: func(r *types.WhitepaperData) bool { return r.Issuer != nil },
		get:          func(r *types.WhitepaperData) string { return r.Issuer.Name }},
	{id: "EX-B.2", field: "issuer.lei", element: "mica:IssuerLegalEntityIdentifier", severity: types.SeverityWarning,
		precondition: func(r *types.WhitepaperData) bool { return r.Issuer != nil },
		get:          func(r *types.WhitepaperData) string { return r.Issuer.LEI }},

	{id: "EX-D.1", field: "project_name", element: "mica:ProjectName", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.ProjectName }},
	{id: "EX-D.2", field: "project_description", element: "mica:ProjectDescription", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.ProjectDescription }},

	{id: "EX-E.2", field: "offering.start_date", element: "mica:OfferStartDate", severity: types.SeverityError,
		appliesTo: publicOffers,
		get: func(r *types.WhitepaperData) string {
			if r.Offering.StartDate.IsZero() {
				return ""
			}
			return "set"
		}},
	{id: "EX-E.3", field: "offering.end_date", element: "mica:OfferEndDate", severity: types.SeverityError,
		appliesTo: publicOffers,
		get: func(r *types.WhitepaperData) string {
			if r.Offering.EndDate.IsZero() {
				return ""
			}
			return "set"
		}},
	{id: "EX-E.4", field: "offering.total_supply", element: "mica:TotalSupplyOfTokens", severity: types.SeverityError,
		appliesTo: publicOffers,
		get:       func(r *types.WhitepaperData) string { return r.Offering.TotalSupply }},
	{id: "EX-E.5", field: "offering.price", element: "mica:TokenIssuePrice", severity: types.SeverityWarning,
		appliesTo: publicOffers,
		get:       func(r *types.WhitepaperData) string { return r.Offering.Price }},
	{id: "EX-E.6", field: "offering.currency", element: "mica:OfferCurrency", severity: types.SeverityError,
		precondition: func(r *types.WhitepaperData) bool { return r.Offering.Price != "" },
		get:          func(r *types.WhitepaperData) string { return r.Offering.Currency }},
	{id: "EX-E.8", field: "offering.max_subscription", element: "mica:MaximumSubscription", severity: types.SeverityWarning,
		precondition: func(r *types.WhitepaperData) bool { return r.Offering.MinSubscription != "" },
		get:          func(r *types.WhitepaperData) string { return r.Offering.MaxSubscription }},

	{id: "EX-F.1", field: "offering.token_name", element: "mica:TokenName", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.Offering.TokenName }},
	{id: "EX-F.2", field: "offering.token_symbol", element: "mica:TokenSymbol", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.Offering.TokenSymbol }},
	{id: "EX-F.3", field: "offering_type", element: "mica:TokenType", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return string(r.OfferingType) }},

	{id: "EX-G.1", field: "rights_and_obligations", element: "mica:RightsAndObligations", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.RightsAndObligations }},

	{id: "EX-H.1", field: "technology.description", element: "mica:TechnologyDescription", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.Technology.Description }},

	{id: "EX-I.1", field: "risks.offer_risks", element: "mica:OfferRisks", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.Risks.OfferRisks }},
	{id: "EX-I.2", field: "risks.asset_risks", element: "mica:AssetRisks", severity: types.SeverityWarning,
		get: func(r *types.WhitepaperData) string { return r.Risks.AssetRisks }},
	{id: "EX-I.3", field: "risks.technology_risks", element: "mica:TechnologyRisks", severity: types.SeverityWarning,
		get: func(r *types.WhitepaperData) string { return r.Risks.TechnologyRisks }},

	{id: "EX-J.1", field: "sustainability.energy_consumption", element: "mica:EnergyConsumption", severity: types.SeverityError,
		get: func(r *types.WhitepaperData) string { return r.Sustainability.EnergyConsumption }},
	{id: "EX-J.3", field: "sustainability.methodology", element: "mica:SustainabilityMethodology", severity: types.SeverityWarning,
		precondition: func(r *types.WhitepaperData) bool { return r.Sustainability.EnergyConsumption != "" },
		get:          func(r *types.WhitepaperData) string { return r.Sustainability.Methodology }},
}

func (r existenceRule) applies(rec *types.WhitepaperData) bool {
	if r.precondition != nil && !r.precondition(rec) {
		return false
	}
	if len(r.appliesTo) == 0 {
		return true
	}
	for _, t := range r.appliesTo {
		if rec.OfferingType == t {
			return true
		}
	}
	return false
}

// existenceCategory evaluates the required-field catalog.
func existenceCategory(rec *types.WhitepaperData) types.CategoryResult {
	c := types.CategoryResult{Name: "existence"}
	for _, rule := range existenceRules {
		if !rule.applies(rec) {
			continue
		}
		if strings.TrimSpace(rule.get(rec)) != "" {
			c.Passed++
			continue
		}
		c.Failed++
		finding := types.ValidationError{
			RuleID:   rule.id,
			Severity: rule.severity,
			Message:  fmt.Sprintf("required field %s is missing or empty", rule.field),
			Element:  rule.element,
			Field:    rule.field,
		}
		if rule.severity == types.SeverityError {
			c.Errors = append(c.Errors, finding)
		} else {
			c.Warnings = append(c.Warnings, finding)
		}
	}
	return c
}
