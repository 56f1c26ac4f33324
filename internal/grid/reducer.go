// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

// =============================================================================
// STATE
// =============================================================================

// State is an immutable snapshot of a document: its cells, its canonical
// value, and the codec that links the two. The canonical value is always
// the Stringify of the cells; it is computed when the State is built.
type State struct {
	cells Grid
	value string
	codec *Codec
}

// NewState parses text and returns its State. The canonical value may differ
// from text when records were out of order or malformed.
func NewState(text string, codec *Codec) *State {
	if codec == nil {
		codec = DefaultCodec()
	}
	cells := codec.Parse(text)
	return &State{cells: cells, value: codec.Stringify(cells), codec: codec}
}

// Value returns the canonical value.
func (s *State) Value() string {
	return s.value
}

// Cell returns the value at addr and whether the cell has one.
func (s *State) Cell(addr Address) (string, bool) {
	v, ok := s.cells[addr]
	return v, ok
}

// Len returns the number of cells that have a value.
func (s *State) Len() int {
	return len(s.cells)
}

// Cells returns a copy of the grid.
func (s *State) Cells() Grid {
	return s.cells.Clone()
}

// Codec returns the codec the state was built with.
func (s *State) Codec() *Codec {
	return s.codec
}

// =============================================================================
// ACTIONS
// =============================================================================

// Action is an edit applied by Reduce. The concrete types are ChangeCell and
// SetValue.
type Action interface {
	action()
}

// ChangeCell sets one cell. When Unset is true the cell loses its value and
// Value is ignored.
type ChangeCell struct {
	Address Address
	Value   string
	Unset   bool
}

// SetValue replaces the whole document with Text.
type SetValue struct {
	Text string
}

func (ChangeCell) action() {}
func (SetValue) action()   {}

// Set returns a ChangeCell storing value at (row, column).
func Set(row, column int, value string) ChangeCell {
	return ChangeCell{Address: At(row, column), Value: value}
}

// Unset returns a ChangeCell removing the value at (row, column).
func Unset(row, column int) ChangeCell {
	return ChangeCell{Address: At(row, column), Unset: true}
}

// =============================================================================
// REDUCER
// =============================================================================

// Reduce applies a to s and returns the resulting State. s is never modified.
// When the action cannot change the document, s itself is returned, so
// callers can detect changes by pointer comparison.
func Reduce(s *State, a Action) *State {
	switch a := a.(type) {
	case ChangeCell:
		return s.changeCell(a)
	case SetValue:
		return s.setValue(a)
	default:
		return s
	}
}

func (s *State) changeCell(a ChangeCell) *State {
	if !a.Address.Valid() {
		return s
	}
	current, ok := s.cells[a.Address]
	if a.Unset && !ok {
		return s
	}
	if !a.Unset && ok && current == a.Value {
		return s
	}

	cells := s.cells.Clone()
	if a.Unset {
		delete(cells, a.Address)
	} else {
		cells[a.Address] = a.Value
	}
	return &State{cells: cells, value: s.codec.Stringify(cells), codec: s.codec}
}

func (s *State) setValue(a SetValue) *State {
	if a.Text == s.value {
		return s
	}
	cells := s.codec.Parse(a.Text)
	return &State{cells: cells, value: s.codec.Stringify(cells), codec: s.codec}
}
