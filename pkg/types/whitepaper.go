// Copyright Loideroi Labs, 2026. All rights reserved.

package types

import "time"

// OfferingType classifies the crypto-asset offering described by a white
// paper. Per prd001-fact-model R1.2.
type OfferingType string

const (
	OfferingUtility         OfferingType = "utility"
	OfferingAssetReferenced OfferingType = "asset-referenced"
	OfferingEMoney          OfferingType = "e-money"
	OfferingOther           OfferingType = "other"
)

// Entity identifies a legal entity participating in the offering.
type Entity struct {
	// LEI is the 20-character ISO 17442 legal entity identifier.
	LEI string `json:"lei" yaml:"lei"`

	// Name is the registered legal name.
	Name string `json:"name" yaml:"name"`

	// LegalForm is the legal form of the entity (e.g. "GmbH", "S.A.").
	LegalForm string `json:"legal_form,omitempty" yaml:"legal_form,omitempty"`

	// Address is the registered address as free text.
	Address string `json:"address" yaml:"address"`

	// Country is the 2-letter ISO 3166-1 country code of the registered seat.
	Country string `json:"country" yaml:"country"`
}

// Person describes one management body member or one person involved in
// the project. Tagged dimensionally, one typed member per slice index.
// Per prd001-fact-model R3.4.
type Person struct {
	// Identity is the full name of the person.
	Identity string `json:"identity" yaml:"identity"`

	// BusinessAddress is the business address as free text.
	BusinessAddress string `json:"business_address" yaml:"business_address"`

	// Function is the role the person holds (e.g. "CEO", "Advisor").
	Function string `json:"function" yaml:"function"`
}

// OfferingTerms holds the commercial terms of the offer to the public.
// Values are kept as entered by the upstream extractor; numeric parsing
// happens at tagging time, not here.
type OfferingTerms struct {
	// StartDate is the first day of the offer period.
	StartDate time.Time `json:"start_date" yaml:"start_date"`

	// EndDate is the last day of the offer period.
	EndDate time.Time `json:"end_date" yaml:"end_date"`

	// TotalSupply is the total number of tokens offered.
	TotalSupply string `json:"total_supply" yaml:"total_supply"`

	// Price is the issue price per token.
	Price string `json:"price" yaml:"price"`

	// Currency is the 3-letter ISO 4217 code the offer is denominated in.
	Currency string `json:"currency" yaml:"currency"`

	// MinSubscription and MaxSubscription bound individual subscriptions.
	MinSubscription string `json:"min_subscription,omitempty" yaml:"min_subscription,omitempty"`
	MaxSubscription string `json:"max_subscription,omitempty" yaml:"max_subscription,omitempty"`

	// TokenName and TokenSymbol identify the offered crypto-asset.
	TokenName   string `json:"token_name" yaml:"token_name"`
	TokenSymbol string `json:"token_symbol" yaml:"token_symbol"`
}

// Technology describes the distributed ledger underpinning the asset.
type Technology struct {
	// Description is the narrative technology description.
	Description string `json:"description" yaml:"description"`

	// DLTType is the ledger family key (e.g. "public-permissionless").
	DLTType string `json:"dlt_type" yaml:"dlt_type"`

	// ConsensusMechanism is the consensus key (e.g. "proof-of-stake").
	ConsensusMechanism string `json:"consensus_mechanism" yaml:"consensus_mechanism"`
}

// Sustainability holds the climate and environment related metrics.
type Sustainability struct {
	// EnergyConsumption is the annual energy use in kWh.
	EnergyConsumption string `json:"energy_consumption" yaml:"energy_consumption"`

	// RenewableShare is the renewable percentage of consumed energy.
	RenewableShare string `json:"renewable_share,omitempty" yaml:"renewable_share,omitempty"`

	// Methodology describes how the indicators were determined.
	Methodology string `json:"methodology,omitempty" yaml:"methodology,omitempty"`
}

// RiskNarratives holds the risk disclosure texts, one per risk family.
type RiskNarratives struct {
	OfferRisks      string `json:"offer_risks" yaml:"offer_risks"`
	AssetRisks      string `json:"asset_risks" yaml:"asset_risks"`
	TechnologyRisks string `json:"technology_risks" yaml:"technology_risks"`
	ProjectRisks    string `json:"project_risks" yaml:"project_risks"`
}

// WhitepaperData is the fully assembled disclosure record. It is produced
// by the upstream extraction collaborator and never mutated by this module.
// Per prd001-fact-model R1.1.
type WhitepaperData struct {
	// DocumentDate is the date the white paper was drawn up.
	DocumentDate time.Time `json:"document_date" yaml:"document_date"`

	// Language is the 2-letter ISO 639-1 code the paper is written in.
	Language string `json:"language" yaml:"language"`

	// OfferingType selects which disclosure regime applies.
	OfferingType OfferingType `json:"offering_type" yaml:"offering_type"`

	// Offeror is the primary entity. Its LEI is the one fatal precondition
	// of generation: without it no context can be constructed.
	Offeror Entity `json:"offeror" yaml:"offeror"`

	// Issuer and Operator are optional secondary entities. When their LEI
	// differs from the offeror's they are tagged in their own dimensional
	// contexts.
	Issuer   *Entity `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	Operator *Entity `json:"operator,omitempty" yaml:"operator,omitempty"`

	// Website and ContactEmail are the offeror's public contact points.
	Website      string `json:"website" yaml:"website"`
	ContactEmail string `json:"contact_email" yaml:"contact_email"`

	ProjectName        string `json:"project_name" yaml:"project_name"`
	ProjectDescription string `json:"project_description" yaml:"project_description"`

	// AssetDescription describes the crypto-asset itself.
	AssetDescription string `json:"asset_description" yaml:"asset_description"`

	// RightsAndObligations is the purchaser rights narrative.
	RightsAndObligations string `json:"rights_and_obligations" yaml:"rights_and_obligations"`

	Offering       OfferingTerms  `json:"offering" yaml:"offering"`
	Technology     Technology     `json:"technology" yaml:"technology"`
	Risks          RiskNarratives `json:"risks" yaml:"risks"`
	Sustainability Sustainability `json:"sustainability" yaml:"sustainability"`

	// ManagementBody lists the members of the offeror's management body.
	ManagementBody []Person `json:"management_body,omitempty" yaml:"management_body,omitempty"`

	// PersonsInvolved lists other persons involved in the project.
	PersonsInvolved []Person `json:"persons_involved,omitempty" yaml:"persons_involved,omitempty"`

	// RawFields is the open bag of extracted content keyed by taxonomy
	// field number (e.g. "E.10"). Typed fields above always take
	// precedence over this bag. Per prd001-fact-model R4.2.
	RawFields map[string]string `json:"raw_fields,omitempty" yaml:"raw_fields,omitempty"`
}
