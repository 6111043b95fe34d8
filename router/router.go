// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/akshayghatge/prabhag-pulse/cliparse"
	"github.com/akshayghatge/prabhag-pulse/handlers"
	"github.com/akshayghatge/prabhag-pulse/middleware"
	"github.com/akshayghatge/prabhag-pulse/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(st, cfg)
	marginHandler := handlers.NewMarginHandler(st, cfg)
	reportHandler := handlers.NewReportHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", dashboardHandler.Health)

	// Dashboard (read-only)
	mux.HandleFunc("GET /units", middleware.WithLogging(dashboardHandler.ListUnits))
	mux.HandleFunc("GET /units/{id}", middleware.WithLogging(dashboardHandler.GetUnit))
	mux.HandleFunc("GET /table", middleware.WithLogging(dashboardHandler.GetTable))

	// Margin analysis
	mux.HandleFunc("GET /margins", middleware.WithLogging(marginHandler.GetMargins))
	mux.HandleFunc("GET /insights", middleware.WithLogging(marginHandler.GetInsights))

	// Report generation
	mux.HandleFunc("POST /reports/results", middleware.WithLogging(reportHandler.CreateResultsReport))
	mux.HandleFunc("POST /reports/margins", middleware.WithLogging(reportHandler.CreateMarginReport))

	// Source management
	mux.HandleFunc("POST /reload", middleware.WithLogging(dashboardHandler.Reload))

	// Root endpoint ({$} keeps it exact-match rather than a catch-all)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("prabhag-pulse API v1"))
	})

	return mux
}
