// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styles for command output.

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/gridinput/internal/ui/styles"
)

func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

var (
	// TitleStyle heads command output.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Cyan).
			MarginBottom(1)

	// LabelStyle is a fixed-width key column.
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(32)

	ValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Purple).
			Padding(0, 1)

	// CellStyle is used for table cells.
	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// BorderStyle colours table borders.
	BorderStyle = lipgloss.NewStyle().
			Foreground(styles.Overlay)
)
