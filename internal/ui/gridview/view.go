// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gridview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/gridinput/internal/grid"
	"github.com/jeranaias/gridinput/internal/ui/styles"
	"github.com/jeranaias/gridinput/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the widget: column headers, the visible rows, the option list
// or text editor of the active cell, the value pane, the status bar and help.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderColumnHeader())
	b.WriteString("\n")

	rows := m.visibleRows()
	for i := 0; i < rows; i++ {
		b.WriteString(m.renderRow(m.top + i))
		b.WriteString("\n")
	}

	if panel := m.renderPanel(); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n")
	}

	if m.opts.ShowValue {
		b.WriteString(m.renderValuePane())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderColumnHeader() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", m.rowHeaderWidth()))
	for c := m.left; c < m.left+m.visibleCols(); c++ {
		b.WriteString(util.CenterWidth(grid.ColumnName(c), m.opts.CellWidth))
		b.WriteString(" ")
	}
	return m.theme.ColumnHeader.Render(b.String())
}

func (m Model) renderRow(row int) string {
	var b strings.Builder
	digits := m.rowHeaderWidth() - 1
	b.WriteString(m.theme.RowHeader.Render(fmt.Sprintf("%*d", digits, row+1)))

	state := m.doc.State()
	seps := state.Codec().Separators()
	for c := m.left; c < m.left+m.visibleCols(); c++ {
		addr := grid.At(row, c)
		value, has := state.Cell(addr)

		text := util.FitWidth(util.SingleLine(value), m.opts.CellWidth)
		style := m.theme.Cell
		switch {
		case addr == m.focus && m.cell.Active:
			style = m.theme.CellActive
		case addr == m.focus:
			style = m.theme.CellFocused
		case !has:
			style = m.theme.CellEmpty
			text = util.CenterWidth("·", m.opts.CellWidth)
		case seps.CheckValue(value) != nil:
			style = m.theme.CellWarning
		}
		b.WriteString(style.Render(text))
		b.WriteString(" ")
	}
	return b.String()
}

// renderPanel draws the option list while selecting and the text editor while
// typing. It is empty for an inactive cell.
func (m Model) renderPanel() string {
	switch {
	case m.cell.Selecting():
		return m.renderOptions()
	case m.cell.FreeText():
		return m.theme.EditorBox.Render(m.input.View())
	}
	return ""
}

func (m Model) renderOptions() string {
	width := m.optionWidth()
	start, end := m.optionWindow()

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := util.SingleLine(m.choices[i])
		style := m.theme.Option
		if label == "" {
			label = "(empty)"
			style = m.theme.OptionEmpty
		}
		if i == m.highlight {
			style = m.theme.OptionSelected
		}
		lines = append(lines, style.Render(util.FitWidth(label, width)))
	}
	return m.theme.OptionBox.Render(strings.Join(lines, "\n"))
}

func (m Model) renderValuePane() string {
	title := m.theme.ValueTitle.Render("Value")
	if m.doc.State().Value() == "" {
		title += m.theme.StatusText.Render(" (empty)")
	}
	box := m.theme.ValueBox.Width(m.value.Width).Render(m.value.View())
	return lipgloss.JoinVertical(lipgloss.Left, title, box)
}

func (m Model) renderStatusBar() string {
	var mode string
	switch {
	case m.cell.FreeText():
		mode = m.theme.ModeText.Render("TEXT")
	case m.cell.Selecting():
		mode = m.theme.ModeSelect.Render("SELECT")
	default:
		mode = m.theme.ModeInactive.Render("NAV")
	}

	parts := []string{mode, m.focus.Name()}
	if m.status != "" {
		msg := util.SingleLine(m.status)
		switch m.statusKind {
		case statusWarn:
			msg = styles.RenderWarning(msg)
		case statusError:
			msg = styles.RenderError(msg)
		default:
			msg = m.theme.StatusText.Render(msg)
		}
		parts = append(parts, msg)
	}

	bar := m.theme.StatusBar
	if m.width > 0 {
		bar = bar.Width(m.width)
	}
	return bar.Render(strings.Join(parts, "  "))
}

// =============================================================================
// LAYOUT
// =============================================================================

// rowHeaderWidth is the width of the row number gutter, padding included.
func (m Model) rowHeaderWidth() int {
	return len(strconv.Itoa(m.opts.Rows)) + 1
}

// visibleCols is the number of columns rendered from m.left.
func (m Model) visibleCols() int {
	n := m.opts.Columns - m.left
	if m.width > 0 {
		n = min(n, max((m.width-m.rowHeaderWidth())/(m.opts.CellWidth+1), 1))
	}
	return max(n, 0)
}

// visibleRows is the number of rows rendered from m.top.
func (m Model) visibleRows() int {
	n := m.opts.Rows - m.top
	if m.height > 0 {
		n = min(n, max(m.height-m.chromeHeight(), 1))
	}
	return max(n, 0)
}

// chromeHeight is the number of lines the view uses besides grid rows.
func (m Model) chromeHeight() int {
	h := 1 // column header
	h += m.panelHeight()
	if m.opts.ShowValue {
		h += valuePaneHeight + 3 // title and border
	}
	h++ // status bar
	h += lipgloss.Height(m.help.View(m.keys))
	return h
}

func (m Model) panelHeight() int {
	switch {
	case m.cell.Selecting():
		start, end := m.optionWindow()
		return end - start + 2
	case m.cell.FreeText():
		return 3
	}
	return 0
}

// ensureVisible scrolls the grid so the focused cell is on screen.
func (m *Model) ensureVisible() {
	m.top = clamp(m.top, 0, max(m.opts.Rows-1, 0))
	m.left = clamp(m.left, 0, max(m.opts.Columns-1, 0))

	if m.focus.Row < m.top {
		m.top = m.focus.Row
	}
	if rows := m.visibleRows(); rows > 0 && m.focus.Row >= m.top+rows {
		m.top = m.focus.Row - rows + 1
	}

	if m.focus.Column < m.left {
		m.left = m.focus.Column
	}
	if cols := m.visibleCols(); cols > 0 && m.focus.Column >= m.left+cols {
		m.left = m.focus.Column - cols + 1
	}
}

// optionWindow is the range of choices shown, keeping the highlight in view.
func (m Model) optionWindow() (start, end int) {
	n := len(m.choices)
	if n <= maxOptionRows {
		return 0, n
	}
	start = clamp(m.highlight-maxOptionRows+1, 0, n-maxOptionRows)
	return start, start + maxOptionRows
}

// optionWidth is the label width inside the option box.
func (m Model) optionWidth() int {
	w := m.opts.CellWidth
	for _, c := range m.choices {
		w = max(w, util.StringWidth(util.SingleLine(c)))
	}
	if m.width > 0 {
		w = min(w, max(m.width-4, 1))
	}
	return w
}

// =============================================================================
// HIT TESTING
// =============================================================================

// cellAt maps a screen position to the cell drawn there.
func (m Model) cellAt(x, y int) (grid.Address, bool) {
	if y < 1 || y > m.visibleRows() {
		return grid.Address{}, false
	}
	x -= m.rowHeaderWidth()
	if x < 0 {
		return grid.Address{}, false
	}
	c, offset := x/(m.opts.CellWidth+1), x%(m.opts.CellWidth+1)
	if offset == m.opts.CellWidth || c >= m.visibleCols() {
		return grid.Address{}, false
	}
	return grid.At(m.top+y-1, m.left+c), true
}

// optionAt maps a screen position to the option drawn there.
func (m Model) optionAt(x, y int) (int, bool) {
	if !m.cell.Selecting() {
		return 0, false
	}
	top := 1 + m.visibleRows() // first line of the option box border
	start, end := m.optionWindow()
	i := start + y - top - 1
	if i < start || i >= end {
		return 0, false
	}
	// border and padding on each side
	if x < 0 || x >= m.optionWidth()+4 {
		return 0, false
	}
	return i, true
}

// =============================================================================
// NAMES
// =============================================================================

// displayValue makes field separators visible in the value pane.
func displayValue(v string) string {
	return strings.ReplaceAll(v, "\t", "→")
}
