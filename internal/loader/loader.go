// Package loader reads return series from CSV files for the CLI
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Series reads one column of a CSV file as a float64 series, preserving
// row order. column is zero-based. A first row that does not parse as a
// number is treated as a header and skipped; a parse failure on any
// later row is an error.
func Series(path string, column int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open series file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	series := make([]float64, 0, len(records))
	for i, record := range records {
		if column >= len(record) {
			return nil, fmt.Errorf("%s row %d has %d columns, need column %d", path, i+1, len(record), column)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(record[column]), 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("%s row %d column %d: %w", path, i+1, column, err)
		}
		series = append(series, v)
	}
	return series, nil
}
