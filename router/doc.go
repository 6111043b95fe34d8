// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Prabhag Pulse API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Dashboard (read-only):

	GET /units      - Distinct units, parties, and categories
	GET /units/{id} - Per-candidate totals for one prabhag
	GET /table      - Full aggregated table

Margin analysis:

	GET /margins           - Margin snapshot for every group
	GET /margins?category= - Restricted to one election type
	GET /insights          - Seats won and candidates fielded per party

Report generation:

	POST /reports/results - Per-unit vote distribution PDF
	POST /reports/margins - Per-category victory margin PDF

Source management:

	POST /reload - Re-read the source file if its signature changed

The root route is registered as "GET /{$}" so it matches "/" exactly;
unregistered paths get the mux's 404 and wrong-method requests get a 405
instead of falling through to the root banner.

# Logging

Every route except /health is wrapped in middleware.WithLogging. The health
check is polled frequently and would drown the log otherwise.
*/
package router
