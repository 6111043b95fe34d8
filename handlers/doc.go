// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Prabhag Pulse API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - DashboardHandler: Health, unit listing, aggregated table, reload
  - MarginHandler: Victory margin snapshots
  - ReportHandler: PDF report generation

Handlers are created via constructor functions that accept *store.Store and
Config:

	dashboard := handlers.NewDashboardHandler(st, cfg)

# Dashboard Surface

	GET  /health      → Health (row and warning counts)
	GET  /units       → ListUnits (distinct units, parties, categories)
	GET  /units/{id}  → GetUnit (per-candidate totals for one prabhag)
	GET  /table       → GetTable (full aggregated table)
	POST /reload      → Reload (re-read the source file if it changed)

Units are returned in natural order, so "2" sorts before "10".

# Margin Snapshots

	GET /margins?category= → GetMargins
	GET /insights          → GetInsights

Each response is a MarginSnapshot carrying a fresh UUID, the computation
timestamp, and the sha256 of the source file, so a snapshot can always be
matched to the exact data it was derived from. The optional category query
parameter restricts the analysis to one election type.

GetInsights summarizes city-wide party performance from the same margin
analysis: seats won (winning groups per party) against distinct candidates
fielded, ordered by wins descending. A candidate contesting several
categories counts once toward the fielded total.

# Report Generation

	POST /reports/results → CreateResultsReport
	POST /reports/margins → CreateMarginReport

Both accept a models.ReportRequest body. An omitted units or parties list
means "all values"; an explicitly empty list selects nothing, which yields a
422 because a report with zero pages is never produced. The response body is
the finished PDF with a Content-Disposition attachment header.

Chart rendering failures do not fail the report: the affected page falls back
to a text-only candidate summary and the remaining pages are unaffected.

NewReportHandlerWithRenderer exists so tests can substitute a stub chart
renderer; production code uses NewReportHandler, which wires the default bar
renderer and party color legend.
*/
package handlers
