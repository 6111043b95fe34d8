// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/akshayghatge/prabhag-pulse/analysis"
	"github.com/akshayghatge/prabhag-pulse/models"
	"github.com/akshayghatge/prabhag-pulse/render"
)

// Filter selects the rows included in a report. Units and Parties are
// literal sets: an empty Units list matches nothing and yields an empty page
// sequence (callers translate an omitted filter to "all" before composing).
type Filter struct {
	Units   []string
	Parties []string
}

// EmitFunc receives each completed page as soon as it is built. Returning an
// error aborts the batch; the composer otherwise never stops early.
type EmitFunc func(models.ReportPage) error

// Composer turns the loaded table into an ordered sequence of report pages.
// Pages are emitted one at a time so callers can report progress or cancel
// between pages; chart buffers are released as soon as a page is handed off.
type Composer struct {
	renderer render.ChartRenderer
}

func NewComposer(renderer render.ChartRenderer) *Composer {
	return &Composer{renderer: renderer}
}

// ComposeResults emits one page per selected unit, in natural unit order:
// a vote-distribution chart plus a candidate summary table. A unit whose
// chart fails to render gets a text-only fallback page; the failure never
// loses the other units' pages. Returns the number of pages emitted; zero
// pages with a nil error means the filters matched nothing.
func (c *Composer) ComposeResults(records []models.VoteRecord, filter Filter, emit EmitFunc) (int, error) {
	rows := filterRecords(records, filter.Units, filter.Parties)
	units := distinctUnits(rows)

	pages := 0
	for _, unit := range units {
		entries := analysis.Aggregate(recordsForUnit(rows, unit))
		sortForDisplay(entries)

		page := models.ReportPage{
			Index: pages + 1,
			Title: fmt.Sprintf("Election Report: Prabhag %s", unit),
			Lines: summaryLines(entries),
		}

		chart, err := c.renderer.VoteChart(unit, entries)
		if err != nil {
			slog.Warn("chart rendering failed, using text fallback", "unit", unit, "error", err)
		} else {
			page.Chart = chart
		}

		if err := emit(page); err != nil {
			return pages, err
		}
		pages++
	}

	return pages, nil
}

// ComposeMargins emits the margin report variant: one page per distinct
// category across the filtered set (categories ascending), each charting the
// victory margin of every selected unit in that category.
func (c *Composer) ComposeMargins(records []models.VoteRecord, filter Filter, emit EmitFunc) (int, error) {
	rows := filterRecords(records, filter.Units, nil)

	results, err := analysis.Margins(analysis.Aggregate(rows))
	if err != nil {
		return 0, err
	}

	byCategory := make(map[string][]models.MarginResult)
	var categories []string
	for _, res := range results {
		if _, ok := byCategory[res.Category]; !ok {
			categories = append(categories, res.Category)
		}
		byCategory[res.Category] = append(byCategory[res.Category], res)
	}
	sort.Strings(categories)

	pages := 0
	for _, category := range categories {
		group := byCategory[category]
		sort.SliceStable(group, func(i, j int) bool {
			return analysis.NaturalLess(group[i].Unit, group[j].Unit)
		})

		page := models.ReportPage{
			Index: pages + 1,
			Title: fmt.Sprintf("Margin Report: %s", category),
			Lines: marginLines(group),
		}

		chart, err := c.renderer.MarginChart(category, group)
		if err != nil {
			slog.Warn("chart rendering failed, using text fallback", "category", category, "error", err)
		} else {
			page.Chart = chart
		}

		if err := emit(page); err != nil {
			return pages, err
		}
		pages++
	}

	return pages, nil
}

// filterRecords keeps rows whose unit and party are both selected. A nil
// parties set means "no party filter" (used by the margin variant).
func filterRecords(records []models.VoteRecord, units, parties []string) []models.VoteRecord {
	unitSet := toSet(units)
	var partySet map[string]bool
	if parties != nil {
		partySet = toSet(parties)
	}

	var rows []models.VoteRecord
	for _, rec := range records {
		if !unitSet[rec.Unit] {
			continue
		}
		if partySet != nil && !partySet[rec.Party] {
			continue
		}
		rows = append(rows, rec)
	}
	return rows
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// distinctUnits returns the distinct units in the rows, natural-sorted so
// the page order is deterministic and reproducible across runs.
func distinctUnits(records []models.VoteRecord) []string {
	seen := make(map[string]bool)
	var units []string
	for _, rec := range records {
		if !seen[rec.Unit] {
			seen[rec.Unit] = true
			units = append(units, rec.Unit)
		}
	}
	analysis.SortNatural(units)
	return units
}

func recordsForUnit(records []models.VoteRecord, unit string) []models.VoteRecord {
	var rows []models.VoteRecord
	for _, rec := range records {
		if rec.Unit == unit {
			rows = append(rows, rec)
		}
	}
	return rows
}

// sortForDisplay orders a unit's entries party ascending, then votes
// descending, matching the dashboard presentation.
func sortForDisplay(entries []models.AggregatedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Party != entries[j].Party {
			return entries[i].Party < entries[j].Party
		}
		return entries[i].TotalVotes > entries[j].TotalVotes
	})
}

func summaryLines(entries []models.AggregatedEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s (%s): %s votes", e.Name, e.Party, humanize.Comma(int64(e.TotalVotes))))
	}
	return lines
}

func marginLines(results []models.MarginResult) []string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		if r.RunnerUp == nil {
			lines = append(lines, fmt.Sprintf("Prabhag %s: %s (%s) unopposed, %s votes",
				r.Unit, r.Winner.Name, r.Winner.Party, humanize.Comma(int64(r.Winner.TotalVotes))))
			continue
		}
		lines = append(lines, fmt.Sprintf("Prabhag %s: %s (%s) def. %s (%s) by %s votes",
			r.Unit, r.Winner.Name, r.Winner.Party, r.RunnerUp.Name, r.RunnerUp.Party, humanize.Comma(int64(r.Margin))))
	}
	return lines
}
