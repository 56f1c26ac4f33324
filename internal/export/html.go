// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/jeranaias/gridinput/internal/grid"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports documents as a standalone page with embedded CSS.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export converts a table to HTML.
func (e *HTMLExporter) Export(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	theme := e.options.Theme
	if theme != "light" {
		theme = "dark"
	}

	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(t.Name)))
	sb.WriteString("    <meta name=\"generator\" content=\"gridinput\">\n")
	sb.WriteString(e.getCSS())
	sb.WriteString("</head>\n")
	sb.WriteString(fmt.Sprintf("<body class=\"%s-theme\">\n", theme))
	sb.WriteString("    <div class=\"container\">\n")

	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("        <header class=\"header\"><h1>%s</h1></header>\n", html.EscapeString(t.Name)))
	}

	sb.WriteString(e.renderTable(t))

	if e.options.IncludeMetadata {
		sb.WriteString("        <footer class=\"footer\">\n")
		sb.WriteString(fmt.Sprintf("            <p>Exported from <strong>gridinput</strong> on %s</p>\n",
			e.options.timestamp().Format("January 2, 2006 at 3:04 PM")))
		sb.WriteString("        </footer>\n")
	}

	sb.WriteString("    </div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// =============================================================================
// RENDERING FUNCTIONS
// =============================================================================

// renderTable renders the grid. Absent cells get the "empty" class so they
// can be told apart from cells holding "".
func (e *HTMLExporter) renderTable(t *Table) string {
	rows, columns := t.Size()
	var sb strings.Builder

	sb.WriteString("        <table class=\"grid\">\n")
	sb.WriteString("            <thead><tr><th></th>")
	for c := 0; c < columns; c++ {
		sb.WriteString("<th>" + grid.ColumnName(c) + "</th>")
	}
	sb.WriteString("</tr></thead>\n")

	sb.WriteString("            <tbody>\n")
	for r := 0; r < rows; r++ {
		sb.WriteString(fmt.Sprintf("                <tr><th>%d</th>", r+1))
		for c := 0; c < columns; c++ {
			value, ok := t.Cells[grid.At(r, c)]
			if !ok {
				sb.WriteString("<td class=\"empty\"></td>")
				continue
			}
			escaped := strings.ReplaceAll(html.EscapeString(value), "\n", "<br>")
			sb.WriteString("<td>" + escaped + "</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("            </tbody>\n")
	sb.WriteString("        </table>\n")

	return sb.String()
}

// getCSS returns the embedded stylesheet.
func (e *HTMLExporter) getCSS() string {
	return `    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        :root {
            --font-sans: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
        }

        /* Dark theme (default) */
        .dark-theme {
            --bg-primary: #1a1b26;
            --bg-secondary: #24283b;
            --bg-tertiary: #414868;
            --text-primary: #c0caf5;
            --text-muted: #565f89;
            --border-color: #414868;
        }

        /* Light theme */
        .light-theme {
            --bg-primary: #ffffff;
            --bg-secondary: #f7f8fa;
            --bg-tertiary: #e1e4e8;
            --text-primary: #24292e;
            --text-muted: #6a737d;
            --border-color: #e1e4e8;
        }

        body {
            font-family: var(--font-sans);
            font-size: 16px;
            line-height: 1.6;
            color: var(--text-primary);
            background: var(--bg-primary);
            padding: 20px;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: var(--bg-secondary);
            border-radius: 12px;
            overflow: auto;
        }

        .header {
            padding: 24px 32px;
            background: var(--bg-tertiary);
        }

        table.grid {
            border-collapse: collapse;
            margin: 24px 32px;
        }

        table.grid th, table.grid td {
            border: 1px solid var(--border-color);
            padding: 4px 12px;
            min-width: 80px;
            vertical-align: top;
        }

        table.grid th {
            color: var(--text-muted);
            font-weight: 600;
        }

        table.grid td.empty {
            background: var(--bg-primary);
        }

        .footer {
            padding: 16px 32px;
            font-size: 13px;
            color: var(--text-muted);
        }
    </style>
`
}
