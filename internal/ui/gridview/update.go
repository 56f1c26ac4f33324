// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gridview

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/gridinput/internal/cell"
	"github.com/jeranaias/gridinput/internal/grid"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.value.Width = max(msg.Width-2, 10)
		m.input.Width = max(msg.Width-8, 10)
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case PasteMsg:
		return m.handlePaste(msg)

	case ExternalValueMsg:
		before := m.doc.State().Value()
		m.doc.SetValue(msg.Value)
		m.syncValue()
		if m.doc.State().Value() != before {
			m.setStatus(statusInfo, "reloaded from disk")
		}
		return m, nil

	case SaveErrorMsg:
		m.setStatus(statusError, "save failed: "+msg.Err.Error())
		return m, nil
	}

	if m.cell.FreeText() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// KEYBOARD
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.cell.FreeText():
		return m.handleTextKey(msg)
	case m.cell.Selecting():
		return m.handleSelectKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.ensureVisible()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		return m.moveFocus(-1, 0)
	case key.Matches(msg, m.keys.Down):
		return m.moveFocus(1, 0)
	case key.Matches(msg, m.keys.Left):
		return m.moveFocus(0, -1)
	case key.Matches(msg, m.keys.Right):
		return m.moveFocus(0, 1)
	case key.Matches(msg, m.keys.ValueUp):
		m.value.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.ValueDown):
		m.value.HalfViewDown()
		return m, nil
	}
	cmd := m.editKey(msg)
	return m, cmd
}

// editKey handles the bindings shared by inactive and selecting cells.
func (m *Model) editKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ToggleText):
		return m.fire(cell.Event{Kind: cell.EventAltClick})
	case key.Matches(msg, m.keys.Activate):
		return m.fire(cell.Event{Kind: cell.EventActivate})
	case key.Matches(msg, m.keys.Escape):
		return m.fire(cell.Event{Kind: cell.EventEscape})
	case key.Matches(msg, m.keys.Clear):
		return m.fire(cell.Event{Kind: cell.EventDelete})
	case key.Matches(msg, m.keys.Cut):
		return m.fire(cell.Event{Kind: cell.EventCut})
	case key.Matches(msg, m.keys.Copy):
		return m.fire(cell.Event{Kind: cell.EventCopy})
	case key.Matches(msg, m.keys.Paste):
		return m.fire(cell.Event{Kind: cell.EventPaste})
	}
	return nil
}

func (m Model) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		if m.highlight > 0 {
			m.highlight--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.highlight < len(m.choices)-1 {
			m.highlight++
		}
		return m, nil
	case key.Matches(msg, m.keys.Left):
		return m.moveFocus(0, -1)
	case key.Matches(msg, m.keys.Right):
		return m.moveFocus(0, 1)
	case key.Matches(msg, m.keys.Activate):
		cmd := m.choose(m.highlight)
		return m, cmd
	}
	cmd := m.editKey(msg)
	return m, cmd
}

func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.ToggleText):
		cmd := m.fire(cell.Event{Kind: cell.EventAltClick})
		return m, cmd
	case key.Matches(msg, m.keys.Escape):
		cmd := m.fire(cell.Event{Kind: cell.EventEscape})
		return m, cmd
	case msg.Type == tea.KeyEnter:
		cmd := m.fire(cell.Event{Kind: cell.EventCommit, Text: m.input.Value()})
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// choose picks entry i of the option list.
func (m *Model) choose(i int) tea.Cmd {
	if i < 0 || i >= len(m.choices) {
		return nil
	}
	return m.fire(cell.Event{Kind: cell.EventChoose, Text: m.choices[i]})
}

// moveFocus blurs the focused cell and focuses its neighbour.
func (m Model) moveFocus(dRow, dCol int) (tea.Model, tea.Cmd) {
	row := clamp(m.focus.Row+dRow, 0, m.opts.Rows-1)
	col := clamp(m.focus.Column+dCol, 0, m.opts.Columns-1)
	next := grid.At(row, col)
	if next == m.focus {
		return m, nil
	}
	cmd := m.blur()
	m.focus = next
	m.ensureVisible()
	return m, cmd
}

// blur takes focus away from the focused cell. Text typed in free-text mode
// is kept.
func (m *Model) blur() tea.Cmd {
	ev := cell.Event{Kind: cell.EventBlur}
	if m.cell.FreeText() {
		ev.Text = m.input.Value()
	}
	return m.fire(ev)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

// =============================================================================
// MOUSE
// =============================================================================

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if i, ok := m.optionAt(msg.X, msg.Y); ok {
		cmd := m.choose(i)
		return m, cmd
	}

	addr, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		cmd := m.blur()
		return m, cmd
	}

	var cmds []tea.Cmd
	if addr != m.focus {
		cmds = append(cmds, m.blur())
		m.focus = addr
	}
	kind := cell.EventClick
	if msg.Alt {
		kind = cell.EventAltClick
	}
	cmds = append(cmds, m.fire(cell.Event{Kind: kind}))
	return m, tea.Batch(cmds...)
}

// =============================================================================
// CLIPBOARD
// =============================================================================

// handlePaste applies a finished clipboard read to the address captured when
// the paste was issued.
func (m Model) handlePaste(msg PasteMsg) (tea.Model, tea.Cmd) {
	if m.ctx.Err() != nil {
		return m, nil
	}
	if msg.Err != nil {
		log.Printf("gridview: clipboard read failed: %v", msg.Err)
		m.setStatus(statusError, "paste failed: "+msg.Err.Error())
		return m, nil
	}
	m.edit(msg.Address, msg.Text)
	return m, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
