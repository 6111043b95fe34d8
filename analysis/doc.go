// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package analysis implements the aggregation and margin algorithms.

Everything here is a pure function over in-memory values: no I/O, no shared
state, exact integer arithmetic throughout. Floating point never enters this
path; percentages and chart geometry belong to the presentation layer.

# Aggregation

Aggregate collapses raw vote records into per-candidate totals keyed by
(unit, category, name, party):

	entries := analysis.Aggregate(records)

Totals are commutative sums, so input order never changes them. The returned
slice preserves first-appearance order, which is the tie-break carrier for
ranking.

# Margin Analysis

Margins ranks each (unit, category) group descending by total votes and pairs
the winner with the runner-up:

	results, err := analysis.Margins(entries)

The sort is stable, so an exact vote tie is won by the candidate that
appeared first in the aggregation. A single-candidate group is a valid
unopposed outcome (nil runner-up, margin = winner's votes). An empty group
returns ErrEmptyGroup; it can only mean an aggregator defect and is never
silently tolerated.

The output sequence order is not a contract. Callers re-sort for
presentation.

# Natural Sort

Unit identifiers mix numerals and names ("1", "10", "Ward-A"). NaturalLess
orders numeric strings by integer value ahead of non-numeric strings:

	analysis.SortNatural(units) // ["2","10","1","Ward-A"] → ["1","2","10","Ward-A"]

The order is deterministic for identical input, which keeps generated report
layouts reproducible across runs.
*/
package analysis
