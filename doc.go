// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Prabhag Pulse API server.

Prabhag Pulse analyzes ward-level (prabhag) election results: it aggregates
per-candidate vote totals, computes victory margins, and generates PDF reports
with per-unit vote distribution charts.

# Starting the Server

The server requires a results file via environment variable or CLI flag:

	DATA_FILE=results.xlsx go run main.go

Or with flags:

	go run main.go -p 4117 -f results.csv -w "Election Analysis 2025"

A .env file in the working directory is loaded at startup if present.

# Configuration

Required settings:

  - DATA_FILE (-f): Path to the results table (.csv or .xlsx)

Optional settings:

  - PORT (-p): Server port (default: 4117)
  - WATERMARK (-w): Footer watermark on generated reports

# Data Handling

The source table is loaded once at startup into an in-memory store. A load
failure is not fatal: the server starts with an empty table and reports
degraded health. POST /reload re-reads the file when its size or modification
time changed, so results can be refreshed mid-count without a restart.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (dashboard, margins, reports)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - loader: CSV/XLSX parsing and row coercion
  - store: In-memory table with change-detecting reload
  - analysis: Aggregation, margin ranking, natural sort
  - render: Party-colored bar charts (PNG)
  - report: Page composition and PDF assembly
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
