// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Party assigned to a record when the source leaves the column blank.
const PartyIndependent = "Independent"

// Domain types

// VoteRecord is one normalized row from the source table. All coercion
// (trimming, vote parsing, party defaulting) happens in the loader; these
// values are strictly typed and read-only from here on.
type VoteRecord struct {
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Party    string `json:"party"`
	Votes    int    `json:"votes"`
}

// AggregatedEntry is the per-candidate vote total within one
// (unit, category) group. One entry exists per unique
// (unit, category, name, party) combination.
type AggregatedEntry struct {
	Unit       string `json:"unit"`
	Category   string `json:"category"`
	Name       string `json:"name"`
	Party      string `json:"party"`
	TotalVotes int    `json:"total_votes"`
}

// GroupKey identifies a (unit, category) analysis group.
type GroupKey struct {
	Unit     string
	Category string
}

// MarginResult pairs the winner and runner-up of one group.
// RunnerUp is nil for an unopposed group, in which case Margin equals the
// winner's total votes.
type MarginResult struct {
	Unit     string           `json:"unit"`
	Category string           `json:"category"`
	Winner   AggregatedEntry  `json:"winner"`
	RunnerUp *AggregatedEntry `json:"runner_up,omitempty"`
	Margin   int              `json:"margin"`
}

// ReportPage is one rendered page of a report. Chart is nil when rendering
// failed; Lines carries the textual summary either way, so a failed chart
// still produces a readable page.
type ReportPage struct {
	Index int
	Title string
	Chart []byte // PNG bytes, nil on render failure
	Lines []string
}

// Request types

// ReportRequest selects the rows included in a generated PDF. A nil list
// means "all values"; an explicitly empty list selects nothing.
type ReportRequest struct {
	Units     []string `json:"units"`
	Parties   []string `json:"parties"`
	Watermark *string  `json:"watermark"`
}

// Response types

type UnitsResponse struct {
	Units      []string `json:"units"`
	Parties    []string `json:"parties"`
	Categories []string `json:"categories"`
}

type UnitDetailResponse struct {
	Unit    string            `json:"unit"`
	Entries []AggregatedEntry `json:"entries"`
}

type TableResponse struct {
	Rows []AggregatedEntry `json:"rows"`
}

// MarginSnapshot is a margin analysis computed at a point in time.
// SourceHash is the content hash of the loaded table, so a snapshot can be
// matched to the exact data it was derived from.
type MarginSnapshot struct {
	ID         string         `json:"id"`
	ComputedAt time.Time      `json:"computed_at"`
	SourceHash string         `json:"source_hash"`
	Results    []MarginResult `json:"results"`
}

// PartyInsight is one party's city-wide performance: seats won (count of
// groups whose winner ran for the party) against distinct candidates fielded.
type PartyInsight struct {
	Party      string `json:"party"`
	Wins       int    `json:"wins"`
	Candidates int    `json:"candidates"`
}

type InsightsResponse struct {
	Parties []PartyInsight `json:"parties"`
}

type ReloadResponse struct {
	Reloaded bool `json:"reloaded"`
	Rows     int  `json:"rows"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Rows     int    `json:"rows"`
	Warnings int    `json:"warnings"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
