// Copyright Loideroi Labs, 2026. All rights reserved.

// Package dupes scans an emitted fact set for identity-key collisions.
// The scan is pure: it never mutates or deduplicates, it only reports.
// Implements: prd004-validation (R4); docs/ARCHITECTURE § Duplicate Scan.
package dupes

import (
	"sort"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// Report is the outcome of one duplicate scan.
type Report struct {
	HasDuplicates bool                   `json:"has_duplicates" yaml:"has_duplicates"`
	Groups        []types.DuplicateGroup `json:"groups,omitempty" yaml:"groups,omitempty"`
	TotalFacts    int                    `json:"total_facts" yaml:"total_facts"`
}

// Detect groups facts strictly by the (element, context, unit) identity
// key and reports every group with two or more members. Facts sharing an
// element and value but reported in different contexts are never flagged.
func Detect(factList []types.Fact) Report {
	byKey := make(map[types.FactKey][]types.Fact)
	for _, f := range factList {
		k := f.Key()
		byKey[k] = append(byKey[k], f)
	}

	var groups []types.DuplicateGroup
	for k, members := range byKey {
		if len(members) < 2 {
			continue
		}
		g := types.DuplicateGroup{
			Element:    k.Element,
			ContextRef: k.ContextRef,
			UnitRef:    k.UnitRef,
			Count:      len(members),
		}
		for _, m := range members {
			g.Values = append(g.Values, m.Value)
		}
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Element != groups[j].Element {
			return groups[i].Element < groups[j].Element
		}
		return groups[i].ContextRef < groups[j].ContextRef
	})

	return Report{
		HasDuplicates: len(groups) > 0,
		Groups:        groups,
		TotalFacts:    len(factList),
	}
}
