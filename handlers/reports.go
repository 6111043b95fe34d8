// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/akshayghatge/prabhag-pulse/cliparse"
	"github.com/akshayghatge/prabhag-pulse/middleware"
	"github.com/akshayghatge/prabhag-pulse/models"
	"github.com/akshayghatge/prabhag-pulse/render"
	"github.com/akshayghatge/prabhag-pulse/report"
	"github.com/akshayghatge/prabhag-pulse/store"
)

type ReportHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	composer *report.Composer
}

func NewReportHandler(st *store.Store, cfg cliparse.Config) *ReportHandler {
	renderer := render.NewBarRenderer(render.DefaultLegend())
	return NewReportHandlerWithRenderer(st, cfg, renderer)
}

// NewReportHandlerWithRenderer allows tests to substitute the chart renderer.
func NewReportHandlerWithRenderer(st *store.Store, cfg cliparse.Config, renderer render.ChartRenderer) *ReportHandler {
	return &ReportHandler{
		store:    st,
		cfg:      cfg,
		composer: report.NewComposer(renderer),
	}
}

type composeFunc func([]models.VoteRecord, report.Filter, report.EmitFunc) (int, error)

// CreateResultsReport handles POST /reports/results
func (h *ReportHandler) CreateResultsReport(w http.ResponseWriter, r *http.Request) {
	h.createReport(w, r, "results", h.composer.ComposeResults)
}

// CreateMarginReport handles POST /reports/margins
func (h *ReportHandler) CreateMarginReport(w http.ResponseWriter, r *http.Request) {
	h.createReport(w, r, "margins", h.composer.ComposeMargins)
}

func (h *ReportHandler) createReport(w http.ResponseWriter, r *http.Request, kind string, compose composeFunc) {
	var req models.ReportRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	records := h.store.Records()

	// An omitted list means "all values"; an explicitly empty list means
	// "select nothing" and falls through to the 422 below.
	filter := report.Filter{Units: req.Units, Parties: req.Parties}
	if filter.Units == nil {
		filter.Units = distinctValues(records, func(rec models.VoteRecord) string { return rec.Unit })
	}
	if filter.Parties == nil {
		filter.Parties = distinctValues(records, func(rec models.VoteRecord) string { return rec.Party })
	}

	watermark := h.cfg.Watermark
	if req.Watermark != nil {
		watermark = *req.Watermark
	}

	sink := report.NewPDFSink(watermark)
	pages, err := compose(records, filter, sink.AddPage)
	if err != nil {
		slog.Error("report composition failed", "kind", kind, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	if pages == 0 {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "No rows match the selected filters")
		return
	}

	var buf bytes.Buffer
	if err := sink.Output(&buf); err != nil {
		slog.Error("report output failed", "kind", kind, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	slog.Info("report generated", "kind", kind, "pages", pages, "bytes", buf.Len())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-report.pdf", kind))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write report body", "error", err)
	}
}
