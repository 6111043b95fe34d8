// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/akshayghatge/prabhag-pulse/models"
)

// ErrEmptyGroup reports a (unit, category) group with no entries reaching the
// analyzer. Groups are derived from existing entries, so this indicates a
// defect in the aggregation step, not bad user data. It is never masked.
var ErrEmptyGroup = errors.New("margin analysis: group has no entries")

// Margins derives one MarginResult per distinct (unit, category) group.
//
// Within each group, entries are ranked descending by total votes with a
// stable sort: an exact tie keeps first-appearance order, so the candidate
// aggregated first wins the tie. When more than two candidates tie for first
// place the same rule applies and the first-encountered entry is the winner.
//
// A group with a single candidate is a valid unopposed outcome: RunnerUp is
// nil and Margin equals the winner's total votes. All arithmetic is exact
// integer arithmetic.
//
// Results are emitted in group first-appearance order. That order is not a
// contract surface; callers impose their own presentation order.
func Margins(entries []models.AggregatedEntry) ([]models.MarginResult, error) {
	groupIndex := make(map[models.GroupKey]int)
	var keys []models.GroupKey
	var groups [][]models.AggregatedEntry

	for _, entry := range entries {
		key := models.GroupKey{Unit: entry.Unit, Category: entry.Category}
		i, ok := groupIndex[key]
		if !ok {
			i = len(groups)
			groupIndex[key] = i
			keys = append(keys, key)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], entry)
	}

	results := make([]models.MarginResult, 0, len(groups))
	for i, group := range groups {
		ranked, err := rankGroup(group)
		if err != nil {
			return nil, fmt.Errorf("group %s/%s: %w", keys[i].Unit, keys[i].Category, err)
		}

		result := models.MarginResult{
			Unit:     keys[i].Unit,
			Category: keys[i].Category,
			Winner:   ranked[0],
			Margin:   ranked[0].TotalVotes,
		}
		if len(ranked) > 1 {
			runnerUp := ranked[1]
			result.RunnerUp = &runnerUp
			result.Margin = ranked[0].TotalVotes - runnerUp.TotalVotes
		}

		results = append(results, result)
	}

	return results, nil
}

// rankGroup orders a group's entries descending by total votes without
// mutating the input. The sort must stay stable: ties preserve the order in
// which candidates first appeared in the aggregation, which keeps winner
// selection deterministic.
func rankGroup(group []models.AggregatedEntry) ([]models.AggregatedEntry, error) {
	if len(group) == 0 {
		return nil, ErrEmptyGroup
	}

	ranked := make([]models.AggregatedEntry, len(group))
	copy(ranked, group)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalVotes > ranked[j].TotalVotes
	})

	return ranked, nil
}
