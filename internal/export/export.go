// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/jeranaias/gridinput/internal/grid"
	"github.com/jeranaias/gridinput/internal/util"
)

// =============================================================================
// TABLE
// =============================================================================

// Table is a document prepared for export.
type Table struct {
	// Name labels the export; it becomes the title and part of the filename.
	Name string

	// Rows and Columns are the rendered size. Cells beyond them extend it.
	Rows    int
	Columns int

	Cells grid.Grid

	// Value is the canonical text of the document.
	Value string
}

// NewTable builds a Table from a document state.
func NewTable(name string, state *grid.State, rows, columns int) *Table {
	return &Table{
		Name:    name,
		Rows:    rows,
		Columns: columns,
		Cells:   state.Cells(),
		Value:   state.Value(),
	}
}

// Size returns the rendered size: the configured bounds grown to include
// every stored cell.
func (t *Table) Size() (rows, columns int) {
	rows, columns = t.Rows, t.Columns
	for addr := range t.Cells {
		rows = max(rows, addr.Row+1)
		columns = max(columns, addr.Column+1)
	}
	return rows, columns
}

// Cell returns the value at (row, column), "" when absent.
func (t *Table) Cell(row, column int) string {
	return t.Cells[grid.At(row, column)]
}

func (t *Table) validate() error {
	if t == nil {
		return errors.New("table is nil")
	}
	if t.Rows < 0 || t.Columns < 0 {
		return fmt.Errorf("invalid table size %dx%d", t.Rows, t.Columns)
	}
	return nil
}

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for document exporters.
type Exporter interface {
	// Export converts a table to the target format and returns the content.
	Export(t *Table) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md", ".html").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// Formats lists the names accepted by New.
var Formats = []string{"markdown", "html", "json", "csv"}

// New returns the exporter for a format name or file extension.
func New(format string, opts *Options) (Exporter, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "markdown", "md":
		return NewMarkdownExporter(opts), nil
	case "html", "htm":
		return NewHTMLExporter(opts), nil
	case "json":
		return NewJSONExporter(opts), nil
	case "csv":
		return NewCSVExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want one of: %s)", format, strings.Join(Formats, ", "))
	}
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool

	// IncludeMetadata adds a title and export time where the format allows.
	IncludeMetadata bool

	// Theme for HTML export ("light" or "dark").
	// Default: "dark"
	Theme string

	// now is the export time; tests fix it.
	now func() time.Time
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		OpenAfterExport: false,
		IncludeMetadata: true,
		Theme:           "dark",
	}
}

func (o *Options) timestamp() time.Time {
	if o.now != nil {
		return o.now()
	}
	return time.Now()
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile exports a table to a file in opts.OutputDir using the
// specified exporter. Returns the output file path.
func ExportToFile(t *Table, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(t)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	filename := fmt.Sprintf("%s_%s%s",
		sanitizeFilename(t.Name),
		opts.timestamp().Format("20060102_150405"),
		exporter.FileExtension(),
	)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, filename)
	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	if opts.OpenAfterExport {
		if err := openFile(outputPath); err != nil {
			// Non-fatal - file was still created successfully
			return outputPath, fmt.Errorf("%w: %v", ErrOpenFailed, err)
		}
	}

	return outputPath, nil
}

// ErrOpenFailed is returned with the output path when the file was written
// but could not be opened.
var ErrOpenFailed = errors.New("could not open exported file")

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// sanitizeFilename removes or replaces characters that are invalid in filenames.
func sanitizeFilename(s string) string {
	// Limit length
	maxLen := 50
	runes := []rune(s)
	if len(runes) > maxLen {
		s = string(runes[:maxLen])
	}

	replacer := map[rune]rune{
		'/':  '-',
		'\\': '-',
		':':  '-',
		'*':  '-',
		'?':  '-',
		'"':  '-',
		'<':  '-',
		'>':  '-',
		'|':  '-',
		' ':  '_',
		'\t': '_',
		'\n': '_',
		'\r': '_',
	}

	result := []rune{}
	for _, r := range s {
		if replacement, found := replacer[r]; found {
			result = append(result, replacement)
		} else if r < 32 || r == 127 {
			result = append(result, '-')
		} else {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return "grid"
	}
	return string(result)
}

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// sortedCells returns the cells of t in row-major order.
func sortedCells(t *Table) []grid.Address {
	addrs := make([]grid.Address, 0, len(t.Cells))
	for addr := range t.Cells {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		if addrs[i].Row != addrs[j].Row {
			return addrs[i].Row < addrs[j].Row
		}
		return addrs[i].Column < addrs[j].Column
	})
	return addrs
}
