// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import "github.com/akshayghatge/prabhag-pulse/models"

type entryKey struct {
	unit     string
	category string
	name     string
	party    string
}

// Aggregate collapses raw vote records into one AggregatedEntry per unique
// (unit, category, name, party) combination. Totals are plain sums, so
// permuting the input never changes them. The returned slice preserves
// first-appearance order; downstream ranking relies on that order as the
// tie-break, so it must not be shuffled.
//
// Pure function: no side effects, identical output on identical input.
// An empty input yields an empty slice, not an error.
func Aggregate(records []models.VoteRecord) []models.AggregatedEntry {
	index := make(map[entryKey]int, len(records))
	entries := make([]models.AggregatedEntry, 0, len(records))

	for _, rec := range records {
		key := entryKey{rec.Unit, rec.Category, rec.Name, rec.Party}
		if i, ok := index[key]; ok {
			entries[i].TotalVotes += rec.Votes
			continue
		}
		index[key] = len(entries)
		entries = append(entries, models.AggregatedEntry{
			Unit:       rec.Unit,
			Category:   rec.Category,
			Name:       rec.Name,
			Party:      rec.Party,
			TotalVotes: rec.Votes,
		})
	}

	return entries
}
