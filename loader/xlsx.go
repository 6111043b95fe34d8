// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX extracts the raw rows of the first sheet of a workbook. Cells come
// back as display strings, so the rows feed the same parser as CSV data.
func readXLSX(path string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook: %w", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
