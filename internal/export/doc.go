// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes a grid document in formats other programs read.
//
// # Key Types
//
//   - Table: the document to export, with the grid bounds to render
//   - Exporter: one output format
//   - Options: export configuration options
//
// # Supported Formats
//
//   - Markdown: a pipe table
//   - HTML: a standalone page with a styled table
//   - JSON: the cells and the canonical value
//   - CSV: one row per grid row
//
// # Usage
//
//	exporter, err := export.New("markdown", export.DefaultOptions())
//	data, err := exporter.Export(table)
//
// Export to a file in OutputDir:
//
//	path, err := export.ExportToFile(table, exporter, opts)
package export
