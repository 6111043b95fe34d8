// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akshayghatge/prabhag-pulse/models"
)

// Source column names, matched case-insensitively after trimming.
const (
	colUnit     = "prabhag"
	colCategory = "election_type"
	colName     = "name"
	colParty    = "party"
	colVotes    = "votes"
)

// Read loads and normalizes the source table at path. The format is chosen
// by extension: .xlsx goes through the spreadsheet reader, everything else is
// parsed as CSV.
//
// Coercion happens here and only here: strings are trimmed, votes are parsed
// with invalid or missing values defaulting to 0, and a blank party becomes
// "Independent". Recoverable row problems are reported as warnings, not
// errors; an empty table is a valid result. A non-nil error means the source
// itself is unreadable or its header is unusable.
func Read(path string) ([]models.VoteRecord, []string, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, nil, err
	}

	return parseTable(rows)
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read CSV: %w", err)
	}
	return rows, nil
}

// parseTable turns raw rows (header first) into normalized records plus
// per-row warnings.
func parseTable(rows [][]string) ([]models.VoteRecord, []string, error) {
	if len(rows) == 0 {
		return nil, nil, nil
	}

	index := mapHeaders(rows[0])
	required := []string{colUnit, colCategory, colName, colVotes}
	if missing := missingHeaders(required, index); len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required headers: %s", strings.Join(missing, ", "))
	}

	var records []models.VoteRecord
	var warnings []string
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, header is line 1
		record, warns := parseRow(row, index, line)
		warnings = append(warnings, warns...)
		if record != nil {
			records = append(records, *record)
		}
	}

	return records, warnings, nil
}

func mapHeaders(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		index[key] = i
	}
	return index
}

func missingHeaders(required []string, index map[string]int) []string {
	var missing []string
	for _, key := range required {
		if _, ok := index[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func parseRow(row []string, index map[string]int, line int) (*models.VoteRecord, []string) {
	get := func(key string) string {
		pos, ok := index[key]
		if !ok || pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	unit := get(colUnit)
	name := get(colName)
	if unit == "" || name == "" {
		return nil, []string{fmt.Sprintf("line %d: missing prabhag or candidate name, row skipped", line)}
	}

	party := get(colParty)
	if party == "" {
		party = models.PartyIndependent
	}

	var warnings []string
	votes, ok := parseVotes(get(colVotes))
	if !ok {
		warnings = append(warnings, fmt.Sprintf("line %d: invalid votes value, defaulting to 0", line))
		votes = 0
	}

	return &models.VoteRecord{
		Unit:     unit,
		Category: get(colCategory),
		Name:     name,
		Party:    party,
		Votes:    votes,
	}, warnings
}

// parseVotes coerces a raw cell to a non-negative vote count. Thousands
// separators are tolerated because exported spreadsheets often carry them.
func parseVotes(raw string) (int, bool) {
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
