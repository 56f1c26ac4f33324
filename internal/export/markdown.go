// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/gridinput/internal/grid"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports documents as a Markdown pipe table.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a table to Markdown. Row numbers and column letters
// label the table the way the editor does.
func (e *MarkdownExporter) Export(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	rows, columns := t.Size()

	var sb strings.Builder

	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("# %s\n\n", escapeMarkdown(t.Name)))
	}

	sb.WriteString("|   |")
	for c := 0; c < columns; c++ {
		sb.WriteString(" " + grid.ColumnName(c) + " |")
	}
	sb.WriteString("\n|---|")
	for c := 0; c < columns; c++ {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for r := 0; r < rows; r++ {
		sb.WriteString("| " + strconv.Itoa(r+1) + " |")
		for c := 0; c < columns; c++ {
			sb.WriteString(" " + escapeCell(t.Cell(r, c)) + " |")
		}
		sb.WriteString("\n")
	}

	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("\n*Exported from gridinput on %s*\n",
			e.options.timestamp().Format("January 2, 2006 at 3:04 PM")))
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// escapeMarkdown escapes characters that would break formatting in titles.
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "#", "\\#")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	return s
}

// escapeCell keeps a value inside one table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}

