// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

// Editor is the edit surface handed to the interaction layer. These are the
// only two ways to mutate a document.
type Editor interface {
	ChangeCell(row, column int, value string)
	SetValue(text string)
}

// ChangeFunc receives the canonical value after it changes.
type ChangeFunc func(value string)

// Store owns the current State of one document and reports canonical value
// changes. It is not safe for concurrent use; callers funnel every edit
// through one goroutine (the UI update loop or the REPL).
type Store struct {
	state    *State
	onChange ChangeFunc
	mounted  bool
}

// NewStore creates a Store from an initial value.
func NewStore(initial string, codec *Codec, onChange ChangeFunc) *Store {
	return &Store{
		state:    NewState(initial, codec),
		onChange: onChange,
	}
}

// SetOnChange replaces the change callback.
func (s *Store) SetOnChange(fn ChangeFunc) {
	s.onChange = fn
}

// Mount reports the initial canonical value. Later calls do nothing.
func (s *Store) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.notify()
}

// State returns the current State.
func (s *Store) State() *State {
	return s.state
}

// Value returns the current canonical value.
func (s *Store) Value() string {
	return s.state.value
}

// Dispatch reduces a into the current State. The change callback runs when
// the canonical value changed. It returns the new State.
func (s *Store) Dispatch(a Action) *State {
	prev := s.state
	s.state = Reduce(prev, a)
	if s.state != prev && s.state.value != prev.value {
		s.notify()
	}
	return s.state
}

// ChangeCell stores value at (row, column). An empty value clears the cell,
// which is how the widget reports "no value" chosen by the user.
func (s *Store) ChangeCell(row, column int, value string) {
	if value == "" {
		s.Dispatch(Unset(row, column))
		return
	}
	s.Dispatch(Set(row, column, value))
}

// SetValue replaces the document. Passing the current canonical value is a
// no-op.
func (s *Store) SetValue(text string) {
	s.Dispatch(SetValue{Text: text})
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.state.value)
	}
}
