// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// Legend maps party names to display colors. Parties without an entry get
// the unspecified fallback so charts stay consistent across the report.
type Legend map[string]drawing.Color

// colorUnspecified is the fallback for parties outside the legend.
var colorUnspecified = drawing.Color{R: 119, G: 136, B: 153, A: 255}

// DefaultLegend returns the standard party color mapping used across the
// dashboard and PDF reports.
func DefaultLegend() Legend {
	return Legend{
		"BJP":         {R: 0, G: 0, B: 255, A: 255},
		"SS":          {R: 255, G: 165, B: 0, A: 255},
		"SS-UBT":      {R: 238, G: 130, B: 238, A: 255},
		"Independent": {R: 128, G: 128, B: 128, A: 255},
		"Nota":        {R: 0, G: 0, B: 0, A: 255},
	}
}

// Color resolves a party to its display color, falling back to the
// unspecified default for unmapped parties.
func (l Legend) Color(party string) drawing.Color {
	if c, ok := l[party]; ok {
		return c
	}
	return colorUnspecified
}
