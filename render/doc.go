// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render draws the chart images embedded in PDF reports.

# Renderer Contract

ChartRenderer is the collaborator interface the report composer depends on:

	type ChartRenderer interface {
		VoteChart(unit string, entries []models.AggregatedEntry) ([]byte, error)
		MarginChart(category string, results []models.MarginResult) ([]byte, error)
	}

Implementations return PNG bytes kept entirely in memory; the composer embeds
them into a page and lets them go out of scope immediately.

# Bar Charts

BarRenderer draws one bar per candidate (vote charts) or per unit (margin
charts), colored by the party legend:

	r := render.NewBarRenderer(render.DefaultLegend())
	png, err := r.VoteChart("5", entries)

ErrNoData is returned when there is nothing to plot; callers treat it as a
rendering failure and fall back to a text page.

# Color Legend

Legend maps party names to display colors with an "unspecified" fallback for
unmapped parties, so recurring parties keep the same color on every page.
*/
package render
