// Copyright Loideroi Labs, 2026. All rights reserved.

package facts

import "fmt"

// Sequence issues the human-readable ids used inside one generated
// document (fact, hidden-fact and continuation ids). Each generation call
// gets its own Sequence, so repeated runs over the same record produce
// identical documents and concurrent calls never interleave ids.
// Per prd001-fact-model R6.1-R6.3.
type Sequence struct {
	fact         int
	hidden       int
	continuation int
}

// NewSequence returns a fresh id sequence starting at 1 for every series.
func NewSequence() *Sequence {
	return &Sequence{}
}

// NextFactID returns the next visible fact id ("fact-1", "fact-2", …).
func (s *Sequence) NextFactID() string {
	s.fact++
	return fmt.Sprintf("fact-%d", s.fact)
}

// NextHiddenID returns the next hidden fact id ("hidden-fact-1", …).
func (s *Sequence) NextHiddenID() string {
	s.hidden++
	return fmt.Sprintf("hidden-fact-%d", s.hidden)
}

// NextContinuationID returns the next continuation id ("continuation-1", …).
func (s *Sequence) NextContinuationID() string {
	s.continuation++
	return fmt.Sprintf("continuation-%d", s.continuation)
}
