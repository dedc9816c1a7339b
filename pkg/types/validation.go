// Copyright Loideroi Labs, 2026. All rights reserved.

package types

// Severity grades a validation finding. ERROR findings make the record
// invalid; WARNING findings never block acceptance. Per prd004-validation R1.2.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// ValidationError is one structured finding from a validation category.
type ValidationError struct {
	// RuleID identifies the rule that fired (e.g. "LEI-002", "EX-E.3").
	RuleID string `json:"rule_id" yaml:"rule_id"`

	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`

	// Element is the taxonomy element the finding concerns, when known.
	Element string `json:"element,omitempty" yaml:"element,omitempty"`

	// Field is the record field path the finding concerns, when known.
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
}

// CategoryResult summarizes one validation category run.
type CategoryResult struct {
	// Name is the category: identifier, existence, value, or duplicates.
	Name string `json:"name" yaml:"name"`

	// Passed and Failed count the assertions evaluated in the category.
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`

	Errors   []ValidationError `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ValidationResult is the merged outcome of all validation categories.
// Per prd004-validation R1.1.
type ValidationResult struct {
	// Valid is true iff no ERROR-severity finding exists in any category.
	Valid bool `json:"valid" yaml:"valid"`

	Errors   []ValidationError `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	Categories []CategoryResult `json:"categories" yaml:"categories"`
}

// Merge folds one category result into the aggregate.
func (r *ValidationResult) Merge(c CategoryResult) {
	r.Categories = append(r.Categories, c)
	r.Errors = append(r.Errors, c.Errors...)
	r.Warnings = append(r.Warnings, c.Warnings...)
	r.Valid = len(r.Errors) == 0
}
