package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Table is ordered tabular content ready for rendering. Rows shorter than
// Columns are padded with empty cells.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func (t Table) cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// CSVExporter renders tables as CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV with the column names as the first record. The table
// title is not included, CSV consumers key off the header row.
func (e *CSVExporter) Render(table Table) ([]byte, error) {
	if len(table.Columns) == 0 {
		return nil, fmt.Errorf("csv requires at least one column")
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range table.Columns {
			record[i] = table.cell(row, i)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
