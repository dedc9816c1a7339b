// Copyright Loideroi Labs, 2026. All rights reserved.

package dupes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		facts      []types.Fact
		wantGroups int
	}{
		{
			name:       "empty set",
			facts:      nil,
			wantGroups: 0,
		},
		{
			name: "distinct elements never collide",
			facts: []types.Fact{
				{Element: "mica:OfferorName", ContextRef: "ctx_duration", Value: "A"},
				{Element: "mica:ProjectName", ContextRef: "ctx_duration", Value: "A"},
			},
			wantGroups: 0,
		},
		{
			name: "same element in different contexts is not a duplicate",
			facts: []types.Fact{
				{Element: "mica:ManagementBodyMemberIdentity", ContextRef: "ctx_member_1", Value: "Anna"},
				{Element: "mica:ManagementBodyMemberIdentity", ContextRef: "ctx_member_2", Value: "Anna"},
			},
			wantGroups: 0,
		},
		{
			name: "same element and context with different units is not a duplicate",
			facts: []types.Fact{
				{Element: "mica:TokenIssuePrice", ContextRef: "ctx_duration", UnitRef: "unit_EUR", Value: "1"},
				{Element: "mica:TokenIssuePrice", ContextRef: "ctx_duration", UnitRef: "unit_USD", Value: "1"},
			},
			wantGroups: 0,
		},
		{
			name: "full identity-key collision",
			facts: []types.Fact{
				{Element: "mica:TokenIssuePrice", ContextRef: "ctx_duration", UnitRef: "unit_EUR", Value: "0.50"},
				{Element: "mica:TokenIssuePrice", ContextRef: "ctx_duration", UnitRef: "unit_EUR", Value: "0.55"},
			},
			wantGroups: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Detect(tt.facts)
			assert.Len(t, report.Groups, tt.wantGroups)
			assert.Equal(t, tt.wantGroups > 0, report.HasDuplicates)
			assert.Equal(t, len(tt.facts), report.TotalFacts)
		})
	}
}

func TestDetectGroupDetails(t *testing.T) {
	report := Detect([]types.Fact{
		{Element: "mica:OfferorName", ContextRef: "ctx_duration", Value: "Example Labs"},
		{Element: "mica:TokenIssuePrice", ContextRef: "ctx_duration", UnitRef: "unit_EUR", Value: "0.50"},
		{Element: "mica:TokenIssuePrice", ContextRef: "ctx_duration", UnitRef: "unit_EUR", Value: "0.55"},
		{Element: "mica:TokenIssuePrice", ContextRef: "ctx_duration", UnitRef: "unit_EUR", Value: "0.60"},
		{Element: "mica:EnergyConsumption", ContextRef: "ctx_duration", UnitRef: "unit_kWh", Value: "1"},
		{Element: "mica:EnergyConsumption", ContextRef: "ctx_duration", UnitRef: "unit_kWh", Value: "1"},
	})

	require.True(t, report.HasDuplicates)
	require.Len(t, report.Groups, 2)
	assert.Equal(t, 6, report.TotalFacts)

	// Groups come back sorted by element.
	assert.Equal(t, "mica:EnergyConsumption", report.Groups[0].Element)
	assert.Equal(t, 2, report.Groups[0].Count)

	triple := report.Groups[1]
	assert.Equal(t, "mica:TokenIssuePrice", triple.Element)
	assert.Equal(t, 3, triple.Count)
	assert.ElementsMatch(t, []string{"0.50", "0.55", "0.60"}, triple.Values)
}
