// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/gridinput/internal/grid"
)

func testTable() *Table {
	state := grid.NewState("0_0\tYes\n1_2\ta|b\n3_0\tfar", grid.DefaultCodec())
	return NewTable("budget", state, 2, 2)
}

func fixedOptions() *Options {
	opts := DefaultOptions()
	opts.now = func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC) }
	return opts
}

func TestTable_Size(t *testing.T) {
	rows, columns := testTable().Size()
	if rows != 4 || columns != 3 {
		t.Errorf("Size() = %d x %d, want 4 x 3", rows, columns)
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"markdown", "md", ".html", "JSON", "csv"} {
		if _, err := New(name, nil); err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
		}
	}
	if _, err := New("pdf", nil); err == nil {
		t.Error("New(pdf) should fail")
	}
}

func TestMarkdownExporter(t *testing.T) {
	opts := fixedOptions()
	opts.IncludeMetadata = false
	data, err := NewMarkdownExporter(opts).Export(testTable())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	want := "|   | A | B | C |\n" +
		"|---|---|---|---|\n" +
		"| 1 | Yes |  |  |\n" +
		"| 2 |  |  | a\\|b |\n" +
		"| 3 |  |  |  |\n" +
		"| 4 | far |  |  |\n"
	if string(data) != want {
		t.Errorf("Export() =\n%s\nwant\n%s", data, want)
	}
}

func TestMarkdownExporter_Metadata(t *testing.T) {
	data, err := NewMarkdownExporter(fixedOptions()).Export(testTable())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "# budget\n") {
		t.Errorf("missing title: %q", out)
	}
	if !strings.Contains(out, "March 1, 2025") {
		t.Errorf("missing export date: %q", out)
	}
}

func TestHTMLExporter(t *testing.T) {
	table := testTable()
	table.Cells[grid.At(0, 1)] = "<b>&"
	data, err := NewHTMLExporter(fixedOptions()).Export(table)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"<title>budget</title>",
		"<body class=\"dark-theme\">",
		"<th>C</th>",
		"<td>Yes</td>",
		"<td>&lt;b&gt;&amp;</td>",
		"<td class=\"empty\"></td>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestJSONExporter(t *testing.T) {
	data, err := NewJSONExporter(fixedOptions()).Export(testTable())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Rows != 4 || doc.Columns != 3 || len(doc.Cells) != 3 {
		t.Errorf("unexpected document: %+v", doc)
	}
	if doc.Cells[0].Cell != "A1" || doc.Cells[1].Cell != "C2" || doc.Cells[2].Cell != "A4" {
		t.Errorf("cells out of order: %+v", doc.Cells)
	}
	if doc.Value != "0_0\tYes\n1_2\ta|b\n3_0\tfar" {
		t.Errorf("Value = %q", doc.Value)
	}
	if doc.Exported != "2025-03-01T09:30:00Z" {
		t.Errorf("Exported = %q", doc.Exported)
	}
}

func TestCSVExporter(t *testing.T) {
	table := testTable()
	table.Cells[grid.At(0, 1)] = "x,y"
	data, err := NewCSVExporter(nil).Export(table)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	want := "Yes,\"x,y\",\n,,a|b\n,,\nfar,,\n"
	if string(data) != want {
		t.Errorf("Export() = %q, want %q", data, want)
	}
}

func TestExportToFile(t *testing.T) {
	opts := fixedOptions()
	opts.OutputDir = filepath.Join(t.TempDir(), "out")

	table := testTable()
	table.Name = "my budget/2025"
	path, err := ExportToFile(table, NewCSVExporter(opts), opts)
	if err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	if filepath.Base(path) != "my_budget-2025_20250301_093000.csv" {
		t.Errorf("unexpected filename: %s", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"":              "grid",
		"a b":           "a_b",
		"x:y*z":         "x-y-z",
		"tab\there":     "tab_here",
		"bell\x07":      "bell-",
		"plain-name_01": "plain-name_01",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExport_NilTable(t *testing.T) {
	if _, err := NewMarkdownExporter(nil).Export(nil); err == nil {
		t.Error("expected error for nil table")
	}
}
