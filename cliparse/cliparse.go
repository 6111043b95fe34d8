// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port      int
	DataPath  string
	Watermark string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("prabhag-pulse", flag.ContinueOnError)

	// Network and data config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataPath, "f", "", "Path to the election results file (.csv or .xlsx)")
	fs.StringVar(&cfg.Watermark, "w", "", "Watermark stamped on every report footer")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4117 // default
		}
	}

	if cfg.DataPath == "" {
		cfg.DataPath = os.Getenv("DATA_FILE")
	}
	if cfg.DataPath == "" {
		return Config{}, errors.New("data file required (use -f or DATA_FILE env)")
	}

	if cfg.Watermark == "" {
		cfg.Watermark = os.Getenv("WATERMARK")
		if cfg.Watermark == "" {
			cfg.Watermark = "Election Analysis 2025"
		}
	}

	return cfg, nil
}
