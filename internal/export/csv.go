// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// =============================================================================
// CSV EXPORTER
// =============================================================================

// CSVExporter writes one CSV row per grid row without labels, so column
// and row positions match the document's addresses.
type CSVExporter struct {
	options *Options
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(opts *Options) *CSVExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &CSVExporter{options: opts}
}

// Export converts a table to CSV.
func (e *CSVExporter) Export(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	rows, columns := t.Size()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	record := make([]string, columns)
	for r := 0; r < rows; r++ {
		for c := range record {
			record[c] = t.Cell(r, c)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	return ".csv"
}

// MimeType returns the MIME type for CSV.
func (e *CSVExporter) MimeType() string {
	return "text/csv"
}
