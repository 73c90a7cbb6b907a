package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV reads a tabular trade export into raw rows keyed by column name.
// Column names are trimmed of surrounding whitespace before matching.
// Rows with a different field count than the header are skipped rather
// than failing the whole export.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // handled per-row below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty export: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}
		if len(record) != len(columns) {
			continue
		}

		row := make(Row, len(columns))
		for i, cell := range record {
			row[columns[i]] = cell
		}
		rows = append(rows, row)
	}

	return rows, nil
}
