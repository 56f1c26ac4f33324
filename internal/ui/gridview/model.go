// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gridview

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/gridinput/internal/cell"
	"github.com/jeranaias/gridinput/internal/clipboard"
	"github.com/jeranaias/gridinput/internal/grid"
	"github.com/jeranaias/gridinput/internal/ui/styles"
)

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is the edit surface the widget drives. *grid.Store satisfies it.
type Document interface {
	grid.Editor
	State() *grid.State
	Mount()
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Model.
type Options struct {
	// Rows and Columns of the rendered grid.
	Rows    int
	Columns int

	// Choices is the option list offered in selecting mode.
	Choices []string

	// AllowFreeText enables free text entry.
	AllowFreeText bool

	// CellWidth is the display width of one cell. Defaults to 12.
	CellWidth int

	// ShowValue shows the canonical value pane.
	ShowValue bool

	// Clipboard defaults to the system clipboard.
	Clipboard clipboard.Clipboard

	// Theme defaults to an auto-detected theme.
	Theme *styles.Theme

	// KeyMap defaults to DefaultKeyMap.
	KeyMap *KeyMap
}

const (
	defaultCellWidth = 12
	valuePaneHeight  = 4
	maxOptionRows    = 8
)

// =============================================================================
// MODEL
// =============================================================================

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusError
)

// Model is the Bubble Tea model of the grid editor.
type Model struct {
	doc   Document
	opts  Options
	keys  KeyMap
	theme *styles.Theme
	clip  clipboard.Clipboard

	// Focus and the interaction state of the focused cell. Only the focused
	// cell can be active.
	focus grid.Address
	cell  cell.State

	// Option list while selecting.
	choices   []string
	highlight int

	input textinput.Model
	help  help.Model
	value viewport.Model

	status     string
	statusKind statusKind

	// Scroll offsets of the grid.
	top, left int

	width, height int

	// ctx lives as long as the widget; pending clipboard reads end with it.
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates the widget for doc.
func New(doc Document, opts Options) Model {
	if opts.Rows < 1 {
		opts.Rows = 1
	}
	if opts.Columns < 1 {
		opts.Columns = 1
	}
	if opts.CellWidth < 3 {
		opts.CellWidth = defaultCellWidth
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewSystem()
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme(styles.ModeAuto)
	}
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "value"
	input.CharLimit = 0

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		doc:    doc,
		opts:   opts,
		keys:   keys,
		theme:  opts.Theme,
		clip:   opts.Clipboard,
		input:  input,
		help:   help.New(),
		value:  viewport.New(40, valuePaneHeight),
		ctx:    ctx,
		cancel: cancel,
	}
	m.syncValue()
	return m
}

// Init reports the initial value to the document's listener.
func (m Model) Init() tea.Cmd {
	m.doc.Mount()
	return nil
}

// Close ends the widget's lifetime. Clipboard reads still in flight are
// discarded.
func (m Model) Close() {
	m.cancel()
}

// Focus returns the focused cell.
func (m Model) Focus() grid.Address {
	return m.focus
}

// CellState returns the interaction state of the focused cell.
func (m Model) CellState() cell.State {
	return m.cell
}

// Choices returns the option list shown while selecting.
func (m Model) Choices() []string {
	return m.choices
}

// Status returns the status line message.
func (m Model) Status() string {
	return m.status
}

// =============================================================================
// STATE MACHINE GLUE
// =============================================================================

// fire runs ev through the focused cell's state machine and carries out the
// requested effects.
func (m *Model) fire(ev cell.Event) tea.Cmd {
	addr := m.focus
	value, has := m.doc.State().Cell(addr)

	prev := m.cell
	next, eff := cell.Transition(prev, ev, cell.Context{
		Value:         value,
		HasValue:      has,
		AllowFreeText: m.opts.AllowFreeText,
	})

	cmd := m.enter(prev, next, value, has)
	m.ensureVisible()
	return tea.Batch(cmd, m.apply(addr, eff))
}

// enter prepares the option list or text input for the next state.
func (m *Model) enter(prev, next cell.State, value string, has bool) tea.Cmd {
	m.cell = next

	if next.Selecting() && !prev.Selecting() {
		m.choices = cell.Options(m.opts.Choices, value, has)
		m.highlight = cell.IndexOf(m.choices, value)
	}
	if !next.Selecting() {
		m.choices = nil
		m.highlight = 0
	}

	if next.FreeText() && !prev.FreeText() {
		m.input.SetValue(value)
		m.input.CursorEnd()
		return m.input.Focus()
	}
	if prev.FreeText() && !next.FreeText() {
		m.input.Blur()
		m.input.SetValue("")
	}
	return nil
}

// apply performs transition effects on addr.
func (m *Model) apply(addr grid.Address, eff cell.Effects) tea.Cmd {
	if eff.Copy {
		if err := m.clip.WriteText(eff.CopyText); err != nil {
			log.Printf("gridview: clipboard write failed: %v", err)
			m.setStatus(statusError, "copy failed: "+err.Error())
		} else {
			m.setStatus(statusInfo, "copied "+addr.Name())
		}
	}
	if eff.Edit {
		m.edit(addr, eff.EditValue)
	}
	if eff.ReadClipboard {
		return m.readClipboard(addr)
	}
	return nil
}

// edit dispatches a cell change. An empty value clears the cell. A change
// that leaves the grid as it was reports nothing.
func (m *Model) edit(addr grid.Address, value string) {
	before := m.doc.State()
	m.doc.ChangeCell(addr.Row, addr.Column, value)
	if m.doc.State() == before {
		return
	}
	m.syncValue()

	if value == "" {
		m.setStatus(statusInfo, "cleared "+addr.Name())
		return
	}
	if err := m.doc.State().Codec().Separators().CheckValue(value); err != nil {
		m.setStatus(statusWarn, addr.Name()+": "+err.Error())
		return
	}
	m.setStatus(statusInfo, "set "+addr.Name())
}

// readClipboard returns a command reading the clipboard for addr. The read
// outlives the cell's activation but not the widget.
func (m *Model) readClipboard(addr grid.Address) tea.Cmd {
	ctx, clip := m.ctx, m.clip
	m.setStatus(statusInfo, "pasting into "+addr.Name())
	return func() tea.Msg {
		if ctx.Err() != nil {
			return nil
		}
		text, err := clip.ReadText()
		if ctx.Err() != nil {
			return nil
		}
		return PasteMsg{Address: addr, Text: text, Err: err}
	}
}

func (m *Model) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.status = msg
}

// syncValue refreshes the value pane.
func (m *Model) syncValue() {
	m.value.SetContent(displayValue(m.doc.State().Value()))
}
