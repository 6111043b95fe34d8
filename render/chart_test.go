// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/akshayghatge/prabhag-pulse/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestVoteChartRendersPNG(t *testing.T) {
	r := NewBarRenderer(DefaultLegend())
	entries := []models.AggregatedEntry{
		{Unit: "5", Category: "General", Name: "A", Party: "BJP", TotalVotes: 120},
		{Unit: "5", Category: "General", Name: "B", Party: "SS", TotalVotes: 95},
		{Unit: "5", Category: "General", Name: "C", Party: "Unknown Local Front", TotalVotes: 40},
	}

	png, err := r.VoteChart("5", entries)
	if err != nil {
		t.Fatalf("VoteChart returned error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("expected PNG output")
	}
}

func TestVoteChartSingleBar(t *testing.T) {
	r := NewBarRenderer(DefaultLegend())
	entries := []models.AggregatedEntry{
		{Unit: "9", Category: "General", Name: "Solo", Party: "Independent", TotalVotes: 312},
	}

	png, err := r.VoteChart("9", entries)
	if err != nil {
		t.Fatalf("VoteChart returned error for single bar: %v", err)
	}
	if len(png) == 0 {
		t.Error("expected non-empty PNG")
	}
}

func TestVoteChartNoData(t *testing.T) {
	r := NewBarRenderer(DefaultLegend())

	if _, err := r.VoteChart("5", nil); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for empty entries, got %v", err)
	}

	zeroes := []models.AggregatedEntry{
		{Unit: "5", Category: "General", Name: "A", Party: "BJP", TotalVotes: 0},
	}
	if _, err := r.VoteChart("5", zeroes); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for all-zero votes, got %v", err)
	}
}

func TestMarginChartRendersPNG(t *testing.T) {
	r := NewBarRenderer(DefaultLegend())
	runnerUp := models.AggregatedEntry{Unit: "5", Category: "General", Name: "B", Party: "SS", TotalVotes: 95}
	results := []models.MarginResult{
		{
			Unit:     "5",
			Category: "General",
			Winner:   models.AggregatedEntry{Unit: "5", Category: "General", Name: "A", Party: "BJP", TotalVotes: 120},
			RunnerUp: &runnerUp,
			Margin:   25,
		},
	}

	png, err := r.MarginChart("General", results)
	if err != nil {
		t.Fatalf("MarginChart returned error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("expected PNG output")
	}
}

func TestLegendFallback(t *testing.T) {
	legend := DefaultLegend()

	if legend.Color("BJP") == colorUnspecified {
		t.Error("mapped party should not use the fallback color")
	}
	if legend.Color("No Such Party") != colorUnspecified {
		t.Error("unmapped party should use the fallback color")
	}
}
