// Copyright Loideroi Labs, 2026. All rights reserved.

package taxonomy

import "github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"

// Fields is the ordered field catalog. One row per disclosure field;
// catalog order within a part is rendering order.
var Fields = []types.FieldDefinition{
	// Part A: offeror.
	{Number: "A.1", Label: "Name of the offeror", Element: "mica:OfferorName", Section: "A", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "A.2", Label: "Legal form of the offeror", Element: "mica:OfferorLegalForm", Section: "A", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "A.3", Label: "Registered address of the offeror", Element: "mica:OfferorRegisteredAddress", Section: "A", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "A.4", Label: "Country of the registered office", Element: "mica:OfferorCountry", Section: "A", DataType: types.TypeEnumeration, PeriodType: types.PeriodDuration, IsHidden: true},
	{Number: "A.5", Label: "Legal entity identifier of the offeror", Element: "mica:OfferorLegalEntityIdentifier", Section: "A", DataType: types.TypeString, PeriodType: types.PeriodInstant},
	{Number: "A.6", Label: "Website of the offeror", Element: "mica:OfferorWebsite", Section: "A", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "A.7", Label: "Contact e-mail address", Element: "mica:OfferorContactEmail", Section: "A", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "A.8.a", Label: "Identity of the management body member", Element: "mica:ManagementBodyMemberIdentity", Section: "A", DataType: types.TypeString, PeriodType: types.PeriodDuration, IsDimensional: true},
	{Number: "A.8.b", Label: "Business address of the management body member", Element: "mica:ManagementBodyMemberBusinessAddress", Section: "A", DataType: types.TypeString, PeriodType: types.PeriodDuration, IsDimensional: true},
	{Number: "A.8.c", Label: "Function of the management body member", Element: "mica:ManagementBodyMemberFunction", Section: "A", DataType: types.TypeString, PeriodType: types.PeriodDuration, IsDimensional: true},
	{Number: "A.9", Label: "Date of drawing up the white paper", Element: "mica:WhitepaperDate", Section: "A", DataType: types.TypeDate, PeriodType: types.PeriodInstant},
	{Number: "A.10", Label: "Language of the white paper", Element: "mica:WhitepaperLanguage", Section: "A", DataType: types.TypeEnumeration, PeriodType: types.PeriodDuration, IsHidden: true},

	// Part B: issuer (when different from the offeror).
	{Number: "B.1", Label: "Name of the issuer", Element: "mica:IssuerName", Section: "B", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "B.2", Label: "Legal entity identifier of the issuer", Element: "mica:IssuerLegalEntityIdentifier", Section: "B", DataType: types.TypeString, PeriodType: types.PeriodInstant},
	{Number: "B.3", Label: "Country of the issuer", Element: "mica:IssuerCountry", Section: "B", DataType: types.TypeEnumeration, PeriodType: types.PeriodDuration, IsHidden: true},

	// Part C: trading platform operator (when drawing up the paper).
	{Number: "C.1", Label: "Name of the trading platform operator", Element: "mica:OperatorName", Section: "C", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "C.2", Label: "Legal entity identifier of the operator", Element: "mica:OperatorLegalEntityIdentifier", Section: "C", DataType: types.TypeString, PeriodType: types.PeriodInstant},
	{Number: "C.3", Label: "Country of the operator", Element: "mica:OperatorCountry", Section: "C", DataType: types.TypeEnumeration, PeriodType: types.PeriodDuration, IsHidden: true},

	// Part D: crypto-asset project.
	{Number: "D.1", Label: "Name of the crypto-asset project", Element: "mica:ProjectName", Section: "D", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "D.2", Label: "Description of the crypto-asset project", Element: "mica:ProjectDescription", Section: "D", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},
	{Number: "D.3.a", Label: "Identity of the person involved", Element: "mica:PersonInvolvedIdentity", Section: "D", DataType: types.TypeString, PeriodType: types.PeriodDuration, IsDimensional: true},
	{Number: "D.3.b", Label: "Business address of the person involved", Element: "mica:PersonInvolvedBusinessAddress", Section: "D", DataType: types.TypeString, PeriodType: types.PeriodDuration, IsDimensional: true},
	{Number: "D.3.c", Label: "Function of the person involved", Element: "mica:PersonInvolvedFunction", Section: "D", DataType: types.TypeString, PeriodType: types.PeriodDuration, IsDimensional: true},

	// Part E: offer to the public.
	{Number: "E.1", Label: "Reasons for the offer to the public", Element: "mica:ReasonsForOffer", Section: "E", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},
	{Number: "E.2", Label: "Start date of the offer", Element: "mica:OfferStartDate", Section: "E", DataType: types.TypeDate, PeriodType: types.PeriodInstant},
	{Number: "E.3", Label: "End date of the offer", Element: "mica:OfferEndDate", Section: "E", DataType: types.TypeDate, PeriodType: types.PeriodInstant},
	{Number: "E.4", Label: "Total number of crypto-assets offered", Element: "mica:TotalSupplyOfTokens", Section: "E", DataType: types.TypeInteger, PeriodType: types.PeriodDuration},
	{Number: "E.5", Label: "Issue price per crypto-asset", Element: "mica:TokenIssuePrice", Section: "E", DataType: types.TypeMonetary, PeriodType: types.PeriodDuration},
	{Number: "E.6", Label: "Subscription currency", Element: "mica:OfferCurrency", Section: "E", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "E.7", Label: "Minimum subscription amount", Element: "mica:MinimumSubscription", Section: "E", DataType: types.TypeMonetary, PeriodType: types.PeriodDuration},
	{Number: "E.8", Label: "Maximum subscription amount", Element: "mica:MaximumSubscription", Section: "E", DataType: types.TypeMonetary, PeriodType: types.PeriodDuration},
	{Number: "E.9", Label: "Refund arrangements", Element: "mica:RefundArrangements", Section: "E", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "E.10", Label: "Fees charged to the subscriber", Element: "mica:SubscriberFees", Section: "E", DataType: types.TypeMonetary, PeriodType: types.PeriodDuration},

	// Part F: crypto-asset.
	{Number: "F.1", Label: "Name of the crypto-asset", Element: "mica:TokenName", Section: "F", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "F.2", Label: "Symbol of the crypto-asset", Element: "mica:TokenSymbol", Section: "F", DataType: types.TypeString, PeriodType: types.PeriodDuration},
	{Number: "F.3", Label: "Type of the crypto-asset", Element: "mica:TokenType", Section: "F", DataType: types.TypeEnumeration, PeriodType: types.PeriodDuration, IsHidden: true},
	{Number: "F.4", Label: "Characteristics of the crypto-asset", Element: "mica:AssetDescription", Section: "F", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},

	// Part G: rights and obligations.
	{Number: "G.1", Label: "Rights and obligations of the purchaser", Element: "mica:RightsAndObligations", Section: "G", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},
	{Number: "G.2", Label: "Transferability of the crypto-asset", Element: "mica:TokensFreelyTransferable", Section: "G", DataType: types.TypeBoolean, PeriodType: types.PeriodDuration},

	// Part H: underlying technology.
	{Number: "H.1", Label: "Description of the technology", Element: "mica:TechnologyDescription", Section: "H", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},
	{Number: "H.2", Label: "Distributed ledger technology", Element: "mica:DistributedLedgerTechnology", Section: "H", DataType: types.TypeEnumeration, PeriodType: types.PeriodDuration, IsHidden: true},
	{Number: "H.3", Label: "Consensus mechanism", Element: "mica:ConsensusMechanism", Section: "H", DataType: types.TypeEnumeration, PeriodType: types.PeriodDuration, IsHidden: true},

	// Part I: risks.
	{Number: "I.1", Label: "Risks relating to the offer", Element: "mica:OfferRisks", Section: "I", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},
	{Number: "I.2", Label: "Risks relating to the crypto-asset", Element: "mica:AssetRisks", Section: "I", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},
	{Number: "I.3", Label: "Risks relating to the technology", Element: "mica:TechnologyRisks", Section: "I", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},
	{Number: "I.4", Label: "Risks relating to the project", Element: "mica:ProjectRisks", Section: "I", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},

	// Part J: sustainability indicators.
	{Number: "J.1", Label: "Annual energy consumption (kWh)", Element: "mica:EnergyConsumption", Section: "J", DataType: types.TypeDecimal, PeriodType: types.PeriodDuration},
	{Number: "J.2", Label: "Share of renewable energy", Element: "mica:RenewableEnergyShare", Section: "J", DataType: types.TypePercent, PeriodType: types.PeriodDuration},
	{Number: "J.3", Label: "Description of sustainability indicators", Element: "mica:SustainabilityMethodology", Section: "J", DataType: types.TypeTextBlock, PeriodType: types.PeriodDuration, IsTextBlock: true},
}
