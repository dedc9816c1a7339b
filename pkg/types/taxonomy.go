// Copyright Loideroi Labs, 2026. All rights reserved.

package types

// DataType is the abstract XBRL data type of a taxonomy field.
// Per prd001-fact-model R2.1.
type DataType string

const (
	TypeString      DataType = "string"
	TypeBoolean     DataType = "boolean"
	TypeDate        DataType = "date"
	TypeMonetary    DataType = "monetary"
	TypeDecimal     DataType = "decimal"
	TypeInteger     DataType = "integer"
	TypePercent     DataType = "percent"
	TypeTextBlock   DataType = "textBlock"
	TypeEnumeration DataType = "enumeration"
)

// IsNumeric reports whether the type is tagged as a numeric fact when its
// value parses as a number. Per prd002-inline-tagging R1.1.
func (d DataType) IsNumeric() bool {
	switch d {
	case TypeMonetary, TypeDecimal, TypeInteger, TypePercent:
		return true
	}
	return false
}

// PeriodType selects which kind of context period a field reports against.
type PeriodType string

const (
	PeriodInstant  PeriodType = "instant"
	PeriodDuration PeriodType = "duration"
)

// FieldDefinition is one row of the taxonomy field catalog. Immutable,
// loaded once at startup. Per prd001-fact-model R2.2.
type FieldDefinition struct {
	// Number is the disclosure field number (e.g. "E.10", "A.8.a").
	Number string `json:"number" yaml:"number"`

	// Label is the human-readable field label shown next to the value.
	Label string `json:"label" yaml:"label"`

	// Element is the namespace-qualified taxonomy element name.
	Element string `json:"element" yaml:"element"`

	// Section is the single-letter disclosure part ("A" through "J").
	Section string `json:"section" yaml:"section"`

	DataType   DataType   `json:"data_type" yaml:"data_type"`
	PeriodType PeriodType `json:"period_type" yaml:"period_type"`

	// IsTextBlock marks fields rendered with block-text escape semantics.
	IsTextBlock bool `json:"is_text_block,omitempty" yaml:"is_text_block,omitempty"`

	// IsHidden marks enumeration fields whose machine value goes into the
	// hidden block rather than the visible body.
	IsHidden bool `json:"is_hidden,omitempty" yaml:"is_hidden,omitempty"`

	// IsDimensional marks fields reported once per repeated sub-record.
	IsDimensional bool `json:"is_dimensional,omitempty" yaml:"is_dimensional,omitempty"`
}

// EnumerationEntry maps one enumeration value key to its presentation
// label and taxonomy member URI. Per prd001-fact-model R2.3.
type EnumerationEntry struct {
	Label string `json:"label" yaml:"label"`
	URI   string `json:"uri" yaml:"uri"`
}
