// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Data structures shared across the analysis and report pipeline:

  - VoteRecord: one normalized source row (unit, category, name, party, votes)
  - AggregatedEntry: per-candidate vote total within a (unit, category) group
  - GroupKey: identifies one analysis group
  - MarginResult: winner, optional runner-up, and vote margin for a group
  - MarginSnapshot: a full margin analysis with identity and source hash
  - ReportPage: one rendered report page (chart bytes plus text rows)

# Request Types

Types for parsing incoming JSON:

  - ReportRequest: units, parties, watermark

A nil filter list in ReportRequest means "all values"; an explicitly empty
list selects nothing and will produce an empty report.

# Response Types

Types for JSON responses:

  - UnitsResponse: units (natural order), parties, categories
  - UnitDetailResponse: aggregated entries for one unit
  - TableResponse: the consolidated results table
  - ReloadResponse: reloaded flag and row count
  - HealthResponse: status, rows, warnings
  - ErrorResponse: error, message

# Constants

	PartyIndependent = "Independent"

Applied by the loader when the party column is blank or missing.
*/
package models
