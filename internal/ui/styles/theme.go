// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewTheme.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds the styled components of the grid widget.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// GRID STYLES
	// ==========================================================================

	ColumnHeader lipgloss.Style
	RowHeader    lipgloss.Style
	Cell         lipgloss.Style
	CellEmpty    lipgloss.Style
	CellFocused  lipgloss.Style
	CellActive   lipgloss.Style
	CellWarning  lipgloss.Style

	// ==========================================================================
	// OPTION LIST STYLES
	// ==========================================================================

	OptionBox      lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	OptionEmpty    lipgloss.Style

	// ==========================================================================
	// EDITOR AND VALUE PANE STYLES
	// ==========================================================================

	EditorBox  lipgloss.Style
	ValueTitle lipgloss.Style
	ValueBox   lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ModeSelect   lipgloss.Style
	ModeText     lipgloss.Style
	ModeInactive lipgloss.Style
	StatusText   lipgloss.Style
}

// NewTheme creates a theme. mode "dark" or "light" overrides background
// detection; anything else asks the terminal.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	// AdaptiveColor resolves against the default renderer.
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Grid
	t.ColumnHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary).
		Background(SurfaceDim)

	t.RowHeader = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Align(lipgloss.Right).
		PaddingRight(1)

	t.Cell = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceBright)

	t.CellEmpty = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CellFocused = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(FocusRing).
		Bold(true)

	t.CellActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true)

	t.CellWarning = lipgloss.NewStyle().
		Foreground(Amber).
		Background(SurfaceBright)

	// Option list
	t.OptionBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.Option = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.OptionSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true)

	t.OptionEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Editor and value pane
	t.EditorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Emerald).
		Padding(0, 1)

	t.ValueTitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.ValueBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Foreground(TextPrimary)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ModeSelect = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.ModeText = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ModeInactive = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusText = lipgloss.NewStyle().
		Foreground(TextSecondary)
}
