// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports the cells and the canonical value. JSON exports
// always carry the complete document regardless of options, so they can be
// read back.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

type jsonCell struct {
	Cell   string `json:"cell"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Value  string `json:"value"`
}

type jsonDocument struct {
	Name     string     `json:"name"`
	Rows     int        `json:"rows"`
	Columns  int        `json:"columns"`
	Cells    []jsonCell `json:"cells"`
	Value    string     `json:"value"`
	Exported string     `json:"exported,omitempty"`
}

// Export converts a table to JSON.
func (e *JSONExporter) Export(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	rows, columns := t.Size()

	doc := jsonDocument{
		Name:    t.Name,
		Rows:    rows,
		Columns: columns,
		Cells:   make([]jsonCell, 0, len(t.Cells)),
		Value:   t.Value,
	}
	for _, addr := range sortedCells(t) {
		doc.Cells = append(doc.Cells, jsonCell{
			Cell:   addr.Name(),
			Row:    addr.Row,
			Column: addr.Column,
			Value:  t.Cells[addr],
		})
	}
	if e.options.IncludeMetadata {
		doc.Exported = e.options.timestamp().UTC().Format(time.RFC3339)
	}

	return json.MarshalIndent(doc, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
