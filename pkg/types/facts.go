// Copyright Loideroi Labs, 2026. All rights reserved.

package types

import "time"

// LEIScheme is the identifier scheme every context entity is reported under.
const LEIScheme = "https://eurofiling.info/eu/lei"

// Dimension is a typed member narrowing a context to one repeated
// sub-record instance. Per prd001-fact-model R3.4.
type Dimension struct {
	// Axis is the namespace-qualified dimension element.
	Axis string `json:"axis" yaml:"axis"`

	// Member is the namespace-qualified typed member element.
	Member string `json:"member" yaml:"member"`

	// Value is the member value, stable per sub-record index.
	Value string `json:"value" yaml:"value"`
}

// Context is the (entity, period, optional dimension) triple facts are
// reported against. IDs are unique within one document.
type Context struct {
	ID string `json:"id" yaml:"id"`

	// EntityID is the LEI of the reported entity; Scheme is always LEIScheme.
	EntityID string `json:"entity_id" yaml:"entity_id"`
	Scheme   string `json:"scheme" yaml:"scheme"`

	// Instant is set for instant contexts; StartDate/EndDate for durations.
	Instant   time.Time `json:"instant,omitempty" yaml:"instant,omitempty"`
	StartDate time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	Dimension *Dimension `json:"dimension,omitempty" yaml:"dimension,omitempty"`
}

// IsInstant reports whether the context carries an instant period.
func (c Context) IsInstant() bool {
	return !c.Instant.IsZero()
}

// Unit is a measurement unit referenced by numeric facts. Only units with
// at least one referencing fact are emitted.
type Unit struct {
	ID      string `json:"id" yaml:"id"`
	Measure string `json:"measure" yaml:"measure"`
}

// FactValue is one reportable data point keyed by taxonomy element name in
// the fact map. Per prd001-fact-model R4.1.
type FactValue struct {
	// Value is the fact content as it will appear in the document.
	Value string `json:"value" yaml:"value"`

	// ContextRef names the context the fact is reported against.
	ContextRef string `json:"context_ref" yaml:"context_ref"`

	// UnitRef and Decimals are set for numeric-typed fields only.
	UnitRef  string `json:"unit_ref,omitempty" yaml:"unit_ref,omitempty"`
	Decimals string `json:"decimals,omitempty" yaml:"decimals,omitempty"`

	// HiddenURI is the resolved taxonomy member URI for enumeration
	// fields; when set the value is linked through the hidden block.
	HiddenURI string `json:"hidden_uri,omitempty" yaml:"hidden_uri,omitempty"`

	// DisplayLabel overrides the visible text for hidden-linked facts.
	DisplayLabel string `json:"display_label,omitempty" yaml:"display_label,omitempty"`
}

// Fact is one emitted fact reduced to its identity key plus value, the
// shape the duplicate detector groups over. Per prd004-validation R4.1.
type Fact struct {
	Element    string `json:"element" yaml:"element"`
	ContextRef string `json:"context_ref" yaml:"context_ref"`
	UnitRef    string `json:"unit_ref,omitempty" yaml:"unit_ref,omitempty"`
	Value      string `json:"value" yaml:"value"`
}

// Key returns the fact identity key. Two emitted facts sharing a key are a
// duplicate regardless of their values.
func (f Fact) Key() FactKey {
	return FactKey{Element: f.Element, ContextRef: f.ContextRef, UnitRef: f.UnitRef}
}

// FactKey is the (element, context, unit) identity triple.
type FactKey struct {
	Element    string
	ContextRef string
	UnitRef    string
}

// DuplicateGroup reports one identity key claimed by two or more facts.
type DuplicateGroup struct {
	Element    string   `json:"element" yaml:"element"`
	ContextRef string   `json:"context_ref" yaml:"context_ref"`
	UnitRef    string   `json:"unit_ref,omitempty" yaml:"unit_ref,omitempty"`
	Count      int      `json:"count" yaml:"count"`
	Values     []string `json:"values" yaml:"values"`
}
