// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4117)
  - DataPath: Path to the election results file, .csv or .xlsx (required)
  - Watermark: Text stamped on every report page footer
    (default: "Election Analysis 2025")

# CLI Flags

	-p  Server port
	-f  Election results file
	-w  Report watermark

# Environment Variables

Flags fall back to environment variables:

	PORT      → -p
	DATA_FILE → -f
	WATERMARK → -w

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATA_FILE must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	st := store.Open(cfg.DataPath)
	mux := router.NewRouter(st, cfg)
*/
package cliparse
