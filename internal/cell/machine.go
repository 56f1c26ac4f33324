// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cell

// =============================================================================
// STATE
// =============================================================================

// Mode is the editing mode of an active cell.
type Mode int

const (
	// ModeSelecting picks the value from the option list.
	ModeSelecting Mode = iota
	// ModeFreeText accepts any typed text.
	ModeFreeText
)

func (m Mode) String() string {
	switch m {
	case ModeSelecting:
		return "select"
	case ModeFreeText:
		return "text"
	default:
		return "unknown"
	}
}

// State is the transient interaction state of one cell. The zero value is
// Inactive.
type State struct {
	Active bool
	Mode   Mode
}

// Inactive is the initial state.
var Inactive = State{}

// Selecting reports whether the cell shows its option list.
func (s State) Selecting() bool {
	return s.Active && s.Mode == ModeSelecting
}

// FreeText reports whether the cell is in free-text editing.
func (s State) FreeText() bool {
	return s.Active && s.Mode == ModeFreeText
}

func (s State) String() string {
	if !s.Active {
		return "inactive"
	}
	return "active/" + s.Mode.String()
}

// =============================================================================
// EVENTS
// =============================================================================

// EventKind enumerates user input understood by the machine.
type EventKind int

const (
	EventActivate EventKind = iota // Enter on a focused cell
	EventClick                     // plain click
	EventAltClick                  // Alt+click
	EventEscape                    // discards typed text
	EventBlur                      // focus left the cell; Text holds typed text
	EventChoose                    // option picked from the list; Text holds it
	EventCommit                    // free-text input finished; Text holds it
	EventDelete                    // Delete or Backspace
	EventCut
	EventCopy
	EventPaste
)

// Event is one user input. Text is used by EventChoose, EventCommit and,
// in free-text mode, EventBlur.
type Event struct {
	Kind EventKind
	Text string
}

// Context is what the cell knows about its surroundings when an event
// arrives.
type Context struct {
	// Value is the cell's current value; HasValue is false when the cell has
	// none.
	Value    string
	HasValue bool

	// AllowFreeText enables ModeFreeText for the grid.
	AllowFreeText bool
}

// Effects are the side effects requested by a transition.
type Effects struct {
	// Edit requests ChangeCell(row, column, EditValue).
	Edit      bool
	EditValue string

	// Copy requests writing CopyText to the clipboard.
	Copy     bool
	CopyText string

	// ReadClipboard requests an asynchronous clipboard read whose result is
	// applied as an edit of this cell.
	ReadClipboard bool
}

// None reports whether no effect was requested.
func (e Effects) None() bool {
	return !e.Edit && !e.Copy && !e.ReadClipboard
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// Transition applies ev to s.
func Transition(s State, ev Event, ctx Context) (State, Effects) {
	switch ev.Kind {
	case EventActivate, EventClick:
		return activate(s), Effects{}

	case EventAltClick:
		next := activate(s)
		if ctx.AllowFreeText && next.Mode != ModeFreeText {
			next.Mode = ModeFreeText
		} else {
			next.Mode = ModeSelecting
		}
		return next, Effects{}

	case EventEscape:
		return Inactive, Effects{}

	case EventBlur:
		if s.FreeText() {
			return Inactive, Effects{Edit: true, EditValue: ev.Text}
		}
		return Inactive, Effects{}

	case EventChoose:
		if !s.Selecting() {
			return s, Effects{}
		}
		return Inactive, Effects{Edit: true, EditValue: ev.Text}

	case EventCommit:
		if !s.FreeText() {
			return s, Effects{}
		}
		return Inactive, Effects{Edit: true, EditValue: ev.Text}

	case EventDelete:
		if s.FreeText() {
			return s, Effects{}
		}
		return Inactive, Effects{Edit: true}

	case EventCut:
		if s.FreeText() || !ctx.HasValue {
			return s, Effects{}
		}
		return Inactive, Effects{Copy: true, CopyText: ctx.Value, Edit: true}

	case EventCopy:
		if s.FreeText() || !ctx.HasValue {
			return s, Effects{}
		}
		return s, Effects{Copy: true, CopyText: ctx.Value}

	case EventPaste:
		if s.FreeText() {
			return s, Effects{}
		}
		return s, Effects{ReadClipboard: true}
	}
	return s, Effects{}
}

func activate(s State) State {
	if s.Active {
		return s
	}
	return State{Active: true, Mode: ModeSelecting}
}
