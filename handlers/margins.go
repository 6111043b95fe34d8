// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akshayghatge/prabhag-pulse/analysis"
	"github.com/akshayghatge/prabhag-pulse/cliparse"
	"github.com/akshayghatge/prabhag-pulse/middleware"
	"github.com/akshayghatge/prabhag-pulse/models"
	"github.com/akshayghatge/prabhag-pulse/store"
)

type MarginHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewMarginHandler(st *store.Store, cfg cliparse.Config) *MarginHandler {
	return &MarginHandler{store: st, cfg: cfg}
}

// GetMargins handles GET /margins?category=
func (h *MarginHandler) GetMargins(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	records := h.store.Records()
	if category != "" {
		var filtered []models.VoteRecord
		for _, rec := range records {
			if rec.Category == category {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	results, err := analysis.Margins(analysis.Aggregate(records))
	if err != nil {
		slog.Error("margin analysis failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Margin analysis failed")
		return
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Unit != results[j].Unit {
			return analysis.NaturalLess(results[i].Unit, results[j].Unit)
		}
		return results[i].Category < results[j].Category
	})

	middleware.JSONResponse(w, http.StatusOK, models.MarginSnapshot{
		ID:         uuid.NewString(),
		ComputedAt: time.Now().UTC(),
		SourceHash: h.store.Hash(),
		Results:    results,
	})
}

// GetInsights handles GET /insights
func (h *MarginHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	records := h.store.Records()

	results, err := analysis.Margins(analysis.Aggregate(records))
	if err != nil {
		slog.Error("margin analysis failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Margin analysis failed")
		return
	}

	// Distinct candidates fielded per party, city-wide.
	fielded := make(map[string]map[string]bool)
	for _, rec := range records {
		if fielded[rec.Party] == nil {
			fielded[rec.Party] = make(map[string]bool)
		}
		fielded[rec.Party][rec.Name] = true
	}

	wins := make(map[string]int)
	for _, res := range results {
		wins[res.Winner.Party]++
	}

	parties := make([]models.PartyInsight, 0, len(fielded))
	for party, names := range fielded {
		parties = append(parties, models.PartyInsight{
			Party:      party,
			Wins:       wins[party],
			Candidates: len(names),
		})
	}
	sort.Slice(parties, func(i, j int) bool {
		if parties[i].Wins != parties[j].Wins {
			return parties[i].Wins > parties[j].Wins
		}
		return parties[i].Party < parties[j].Party
	})

	middleware.JSONResponse(w, http.StatusOK, models.InsightsResponse{Parties: parties})
}
