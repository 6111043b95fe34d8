// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATA_FILE", "results.csv")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DataPath != "results.csv" {
		t.Errorf("expected data path results.csv, got %q", cfg.DataPath)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-f", "ward.xlsx", "-w", "Draft"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Watermark != "Draft" {
		t.Errorf("expected watermark Draft, got %q", cfg.Watermark)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-f", "results.csv"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 4117 {
		t.Errorf("expected default port 4117, got %d", cfg.Port)
	}
	if cfg.Watermark != "Election Analysis 2025" {
		t.Errorf("unexpected default watermark: %q", cfg.Watermark)
	}
}

func TestParseFlags_MissingDataFile(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when data file is not provided")
	}
}
