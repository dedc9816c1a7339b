// Copyright Loideroi Labs, 2026. All rights reserved.

package taxonomy

import "github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"

// memberURI builds the taxonomy member URI for one enumeration value.
func memberURI(domain, member string) string {
	return Namespace + "/" + domain + "#" + member
}

// countries maps ISO 3166-1 alpha-2 codes to country names. EU and EEA
// members plus the third countries seen in practice.
var countries = map[string]string{
	"AT": "Austria", "BE": "Belgium", "BG": "Bulgaria", "HR": "Croatia",
	"CY": "Cyprus", "CZ": "Czechia", "DK": "Denmark", "EE": "Estonia",
	"FI": "Finland", "FR": "France", "DE": "Germany", "GR": "Greece",
	"HU": "Hungary", "IE": "Ireland", "IT": "Italy", "LV": "Latvia",
	"LT": "Lithuania", "LU": "Luxembourg", "MT": "Malta", "NL": "Netherlands",
	"PL": "Poland", "PT": "Portugal", "RO": "Romania", "SK": "Slovakia",
	"SI": "Slovenia", "ES": "Spain", "SE": "Sweden",
	"IS": "Iceland", "LI": "Liechtenstein", "NO": "Norway",
	"CH": "Switzerland", "GB": "United Kingdom", "US": "United States",
	"CA": "Canada", "JP": "Japan", "SG": "Singapore", "AE": "United Arab Emirates",
	"AU": "Australia", "HK": "Hong Kong", "KY": "Cayman Islands",
}

// languages maps ISO 639-1 codes to language names, EU official languages.
var languages = map[string]string{
	"bg": "Bulgarian", "hr": "Croatian", "cs": "Czech", "da": "Danish",
	"nl": "Dutch", "en": "English", "et": "Estonian", "fi": "Finnish",
	"fr": "French", "de": "German", "el": "Greek", "hu": "Hungarian",
	"ga": "Irish", "it": "Italian", "lv": "Latvian", "lt": "Lithuanian",
	"mt": "Maltese", "pl": "Polish", "pt": "Portuguese", "ro": "Romanian",
	"sk": "Slovak", "sl": "Slovenian", "es": "Spanish", "sv": "Swedish",
}

var tokenTypes = map[string]types.EnumerationEntry{
	"utility":          {Label: "Utility token", URI: memberURI("token-type", "UtilityToken")},
	"asset-referenced": {Label: "Asset-referenced token", URI: memberURI("token-type", "AssetReferencedToken")},
	"e-money":          {Label: "E-money token", URI: memberURI("token-type", "EMoneyToken")},
	"other":            {Label: "Other crypto-asset", URI: memberURI("token-type", "OtherCryptoAsset")},
}

var dltTypes = map[string]types.EnumerationEntry{
	"public-permissionless": {Label: "Public permissionless ledger", URI: memberURI("dlt", "PublicPermissionless")},
	"public-permissioned":   {Label: "Public permissioned ledger", URI: memberURI("dlt", "PublicPermissioned")},
	"private-permissioned":  {Label: "Private permissioned ledger", URI: memberURI("dlt", "PrivatePermissioned")},
}

var consensusMechanisms = map[string]types.EnumerationEntry{
	"proof-of-work":           {Label: "Proof of work", URI: memberURI("consensus", "ProofOfWork")},
	"proof-of-stake":          {Label: "Proof of stake", URI: memberURI("consensus", "ProofOfStake")},
	"delegated-proof-of-stake": {Label: "Delegated proof of stake", URI: memberURI("consensus", "DelegatedProofOfStake")},
	"proof-of-authority":      {Label: "Proof of authority", URI: memberURI("consensus", "ProofOfAuthority")},
	"byzantine-fault-tolerant": {Label: "Byzantine fault tolerant", URI: memberURI("consensus", "ByzantineFaultTolerant")},
}

// enumerations maps each enumeration-typed element to its value table.
var enumerations map[string]map[string]types.EnumerationEntry

// countryElements marks the elements backed by the country table.
var countryElements = map[string]bool{
	"mica:OfferorCountry":  true,
	"mica:IssuerCountry":   true,
	"mica:OperatorCountry": true,
}

func init() {
	countryTable := make(map[string]types.EnumerationEntry, len(countries))
	for code, name := range countries {
		countryTable[code] = types.EnumerationEntry{Label: name, URI: memberURI("country", code)}
	}
	languageTable := make(map[string]types.EnumerationEntry, len(languages))
	for code, name := range languages {
		languageTable[code] = types.EnumerationEntry{Label: name, URI: memberURI("language", code)}
	}

	enumerations = map[string]map[string]types.EnumerationEntry{
		"mica:OfferorCountry":              countryTable,
		"mica:IssuerCountry":               countryTable,
		"mica:OperatorCountry":             countryTable,
		"mica:WhitepaperLanguage":          languageTable,
		"mica:TokenType":                   tokenTypes,
		"mica:DistributedLedgerTechnology": dltTypes,
		"mica:ConsensusMechanism":          consensusMechanisms,
	}
}

// SupportedLanguages returns the 2-letter codes of the built-in language
// table, the default supported set for validation.
func SupportedLanguages() []string {
	out := make([]string, 0, len(languages))
	for code := range languages {
		out = append(out, code)
	}
	return out
}

// Countries returns a copy of the country code table (alpha-2 -> name).
func Countries() map[string]string {
	out := make(map[string]string, len(countries))
	for code, name := range countries {
		out[code] = name
	}
	return out
}

// IsCountryCode reports whether code is a known alpha-2 country code.
func IsCountryCode(code string) bool {
	_, ok := countries[code]
	return ok
}
