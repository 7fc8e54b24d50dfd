package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

// LoadCSV loads a dataset from a CSV file.
//
// CSV Format:
//
//	x,y
//	0.5,1.5
//	1.0,3.0
//
// The header row is optional: a first row whose fields are not numbers is
// skipped. Every other row must have exactly two numeric fields.
func LoadCSV(filename string, shuffle bool, rng *rand.Rand) (*Data, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for dataset loading
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, shuffle, rng)
}

// ReadCSV reads a dataset in LoadCSV format from r.
func ReadCSV(r io.Reader, shuffle bool, rng *rand.Rand) (*Data, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
	}

	x := make([]float64, len(records))
	y := make([]float64, len(records))
	for i, record := range records {
		if x[i], err = strconv.ParseFloat(strings.TrimSpace(record[0]), 64); err != nil {
			return nil, fmt.Errorf("invalid x at row %d: %w", i+1, err)
		}
		if y[i], err = strconv.ParseFloat(strings.TrimSpace(record[1]), 64); err != nil {
			return nil, fmt.Errorf("invalid y at row %d: %w", i+1, err)
		}
	}

	return New(x, y, shuffle, rng)
}

func isHeader(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
			return true
		}
	}
	return false
}
