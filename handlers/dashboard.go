// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/akshayghatge/prabhag-pulse/analysis"
	"github.com/akshayghatge/prabhag-pulse/cliparse"
	"github.com/akshayghatge/prabhag-pulse/middleware"
	"github.com/akshayghatge/prabhag-pulse/models"
	"github.com/akshayghatge/prabhag-pulse/store"
)

type DashboardHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewDashboardHandler(st *store.Store, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{store: st, cfg: cfg}
}

// Health handles GET /health
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	rows := len(h.store.Records())
	warnings := len(h.store.Warnings())

	status := "ok"
	if rows == 0 && warnings > 0 {
		status = "degraded"
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:   status,
		Rows:     rows,
		Warnings: warnings,
	})
}

// ListUnits handles GET /units
func (h *DashboardHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	records := h.store.Records()

	units := distinctValues(records, func(rec models.VoteRecord) string { return rec.Unit })
	analysis.SortNatural(units)

	parties := distinctValues(records, func(rec models.VoteRecord) string { return rec.Party })
	sort.Strings(parties)

	categories := distinctValues(records, func(rec models.VoteRecord) string { return rec.Category })
	sort.Strings(categories)

	middleware.JSONResponse(w, http.StatusOK, models.UnitsResponse{
		Units:      units,
		Parties:    parties,
		Categories: categories,
	})
}

// GetUnit handles GET /units/{id}
func (h *DashboardHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	unit := r.PathValue("id")
	if unit == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unit is required")
		return
	}

	var rows []models.VoteRecord
	for _, rec := range h.store.Records() {
		if rec.Unit == unit {
			rows = append(rows, rec)
		}
	}
	if len(rows) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("unknown prabhag: %s", unit))
		return
	}

	entries := analysis.Aggregate(rows)
	sortEntries(entries)

	middleware.JSONResponse(w, http.StatusOK, models.UnitDetailResponse{
		Unit:    unit,
		Entries: entries,
	})
}

// GetTable handles GET /table
func (h *DashboardHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	entries := analysis.Aggregate(h.store.Records())
	sortEntries(entries)

	middleware.JSONResponse(w, http.StatusOK, models.TableResponse{Rows: entries})
}

// Reload handles POST /reload
func (h *DashboardHandler) Reload(w http.ResponseWriter, r *http.Request) {
	reloaded, err := h.store.Reload()
	if err != nil {
		slog.Error("reload failed", "path", h.store.Path(), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reload data file")
		return
	}

	if reloaded {
		slog.Info("table reloaded", "path", h.store.Path(), "rows", len(h.store.Records()))
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReloadResponse{
		Reloaded: reloaded,
		Rows:     len(h.store.Records()),
	})
}

// sortEntries orders entries for display: natural unit order, then category,
// then party, then votes descending.
func sortEntries(entries []models.AggregatedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Unit != entries[j].Unit {
			return analysis.NaturalLess(entries[i].Unit, entries[j].Unit)
		}
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		if entries[i].Party != entries[j].Party {
			return entries[i].Party < entries[j].Party
		}
		return entries[i].TotalVotes > entries[j].TotalVotes
	})
}

func distinctValues(records []models.VoteRecord, key func(models.VoteRecord) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, rec := range records {
		v := key(rec)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}
