// Copyright Loideroi Labs, 2026. All rights reserved.

package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

func TestFormatValid(t *testing.T) {
	tests := []struct {
		name string
		lei  string
		want bool
	}{
		{"issued identifier", "529900T8BM49AURSDO55", true},
		{"all digits", "52990000000000000055", true},
		{"too short", "529900T8BM49AURSDO5", false},
		{"too long", "529900T8BM49AURSDO555", false},
		{"lowercase rejected", "529900t8bm49aursdo55", false},
		{"letter in check digits", "529900T8BM49AURSDO5X", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValid(tt.lei))
		})
	}
}

func TestChecksumValid(t *testing.T) {
	tests := []struct {
		name string
		lei  string
		want bool
	}{
		{"valid identifier", "529900T8BM49AURSDO55", true},
		{"another valid identifier", "5299009D9BIL4D4UHT93", true},
		{"third valid identifier", "724500PMK2A2M1SQQ228", true},
		{"single digit mutation", "529900T8BM49AURSDO54", false},
		{"transposition", "529900T8BM94AURSDO55", false},
		{"lowercase rejected", "529900t8bm49aursdo55", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChecksumValid(tt.lei))
		})
	}
}

// stubRegistry implements RegistryLookup with a fixed response.
type stubRegistry struct {
	status string
	err    error
}

func (s stubRegistry) Status(ctx context.Context, lei string) (string, error) {
	return s.status, s.err
}

func TestIdentifierCategory(t *testing.T) {
	tests := []struct {
		name         string
		lei          string
		registry     RegistryLookup
		wantErrors   []string
		wantWarnings []string
		wantPassed   int
	}{
		{
			name:       "malformed identifier stops at format",
			lei:        "NOT-AN-LEI",
			wantErrors: []string{"LEI-001"},
			wantPassed: 0,
		},
		{
			name:       "well-formed but bad checksum",
			lei:        "529900T8BM49AURSDO54",
			wantErrors: []string{"LEI-002"},
			wantPassed: 1,
		},
		{
			name:       "valid without registry",
			lei:        "529900T8BM49AURSDO55",
			wantPassed: 2,
		},
		{
			name:       "registry confirms issued",
			lei:        "529900T8BM49AURSDO55",
			registry:   stubRegistry{status: "ISSUED"},
			wantPassed: 3,
		},
		{
			name:         "registry lookup failure degrades to warning",
			lei:          "529900T8BM49AURSDO55",
			registry:     stubRegistry{err: errors.New("connection refused")},
			wantWarnings: []string{"LEI-003"},
			wantPassed:   2,
		},
		{
			name:         "lapsed registration warns",
			lei:          "529900T8BM49AURSDO55",
			registry:     stubRegistry{status: "LAPSED"},
			wantWarnings: []string{"LEI-004"},
			wantPassed:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &types.WhitepaperData{Offeror: types.Entity{LEI: tt.lei}}
			c := identifierCategory(context.Background(), rec, tt.registry)

			assert.Equal(t, "identifier", c.Name)
			assert.Equal(t, tt.wantPassed, c.Passed)
			require.Len(t, c.Errors, len(tt.wantErrors))
			for i, id := range tt.wantErrors {
				assert.Equal(t, id, c.Errors[i].RuleID)
				assert.Equal(t, types.SeverityError, c.Errors[i].Severity)
			}
			require.Len(t, c.Warnings, len(tt.wantWarnings))
			for i, id := range tt.wantWarnings {
				assert.Equal(t, id, c.Warnings[i].RuleID)
				assert.Equal(t, types.SeverityWarning, c.Warnings[i].Severity)
			}
		})
	}
}
