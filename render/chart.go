// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/akshayghatge/prabhag-pulse/models"
)

// ErrNoData reports a chart request with nothing to plot. The report
// composer treats it like any other render failure and falls back to a
// textual page.
var ErrNoData = errors.New("render: no data to plot")

// ChartRenderer is the rendering collaborator consumed by the report
// composer. Implementations return PNG bytes or an error; they never write
// to disk.
type ChartRenderer interface {
	VoteChart(unit string, entries []models.AggregatedEntry) ([]byte, error)
	MarginChart(category string, results []models.MarginResult) ([]byte, error)
}

// BarRenderer renders bar charts as in-memory PNGs, colored by party legend.
type BarRenderer struct {
	Legend Legend
	Width  int
	Height int
}

// NewBarRenderer returns a renderer with the dimensions the PDF layout
// expects (190mm wide slot at a 1000x600 raster).
func NewBarRenderer(legend Legend) *BarRenderer {
	return &BarRenderer{Legend: legend, Width: 1000, Height: 600}
}

// VoteChart renders the vote distribution for one unit, one bar per
// aggregated candidate entry, colored by party.
func (r *BarRenderer) VoteChart(unit string, entries []models.AggregatedEntry) ([]byte, error) {
	bars := make([]chart.Value, 0, len(entries))
	max := 0
	for _, e := range entries {
		bars = append(bars, r.bar(e.Name, e.TotalVotes, e.Party))
		if e.TotalVotes > max {
			max = e.TotalVotes
		}
	}
	return r.renderBars(fmt.Sprintf("Vote Distribution - Prabhag %s", unit), bars, max)
}

// MarginChart renders victory margins for one category, one bar per unit,
// colored by the winning party.
func (r *BarRenderer) MarginChart(category string, results []models.MarginResult) ([]byte, error) {
	bars := make([]chart.Value, 0, len(results))
	max := 0
	for _, res := range results {
		bars = append(bars, r.bar(res.Unit, res.Margin, res.Winner.Party))
		if res.Margin > max {
			max = res.Margin
		}
	}
	return r.renderBars(fmt.Sprintf("Margins for %s", category), bars, max)
}

func (r *BarRenderer) bar(label string, value int, party string) chart.Value {
	c := r.Legend.Color(party)
	return chart.Value{
		Label: label,
		Value: float64(value),
		Style: chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 0},
	}
}

func (r *BarRenderer) renderBars(title string, bars []chart.Value, max int) ([]byte, error) {
	if len(bars) == 0 || max <= 0 {
		return nil, ErrNoData
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: chart.YAxis{
			Name:           "Votes",
			ValueFormatter: chart.IntValueFormatter,
			// explicit range: a single bar would otherwise collapse it
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max) * 1.1},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", title, err)
	}
	return buf.Bytes(), nil
}
