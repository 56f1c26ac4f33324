// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cell

import (
	"slices"
	"testing"
)

var (
	selecting = State{Active: true, Mode: ModeSelecting}
	freeText  = State{Active: true, Mode: ModeFreeText}
)

func TestTransition(t *testing.T) {
	withValue := Context{Value: "X", HasValue: true, AllowFreeText: true}
	empty := Context{AllowFreeText: true}
	noFree := Context{Value: "X", HasValue: true}

	tests := []struct {
		name    string
		from    State
		event   Event
		ctx     Context
		want    State
		effects Effects
	}{
		{"enter activates", Inactive, Event{Kind: EventActivate}, withValue, selecting, Effects{}},
		{"click activates", Inactive, Event{Kind: EventClick}, withValue, selecting, Effects{}},
		{"click keeps free text", freeText, Event{Kind: EventClick}, withValue, freeText, Effects{}},
		{"alt click enters free text", selecting, Event{Kind: EventAltClick}, withValue, freeText, Effects{}},
		{"alt click from inactive", Inactive, Event{Kind: EventAltClick}, withValue, freeText, Effects{}},
		{"alt click toggles back", freeText, Event{Kind: EventAltClick}, withValue, selecting, Effects{}},
		{"alt click without free text", Inactive, Event{Kind: EventAltClick}, noFree, selecting, Effects{}},
		{"escape deactivates", freeText, Event{Kind: EventEscape}, withValue, Inactive, Effects{}},
		{"blur deactivates", selecting, Event{Kind: EventBlur}, withValue, Inactive, Effects{}},
		{
			"blur commits free text", freeText, Event{Kind: EventBlur, Text: "t"}, withValue,
			Inactive, Effects{Edit: true, EditValue: "t"},
		},
		{"blur inactive", Inactive, Event{Kind: EventBlur, Text: "t"}, withValue, Inactive, Effects{}},
		{"escape discards free text", freeText, Event{Kind: EventEscape, Text: "t"}, withValue, Inactive, Effects{}},
		{
			"choose edits", selecting, Event{Kind: EventChoose, Text: "2,Two"}, withValue,
			Inactive, Effects{Edit: true, EditValue: "2,Two"},
		},
		{"choose ignored in free text", freeText, Event{Kind: EventChoose, Text: "a"}, withValue, freeText, Effects{}},
		{
			"commit edits", freeText, Event{Kind: EventCommit, Text: "typed"}, withValue,
			Inactive, Effects{Edit: true, EditValue: "typed"},
		},
		{"commit ignored while selecting", selecting, Event{Kind: EventCommit, Text: "a"}, withValue, selecting, Effects{}},
		{"delete clears", selecting, Event{Kind: EventDelete}, withValue, Inactive, Effects{Edit: true}},
		{"delete on focused inactive cell", Inactive, Event{Kind: EventDelete}, withValue, Inactive, Effects{Edit: true}},
		{"delete ignored in free text", freeText, Event{Kind: EventDelete}, withValue, freeText, Effects{}},
		{
			"cut copies and clears", selecting, Event{Kind: EventCut}, withValue,
			Inactive, Effects{Copy: true, CopyText: "X", Edit: true},
		},
		{"cut without value is a no-op", selecting, Event{Kind: EventCut}, empty, selecting, Effects{}},
		{"cut ignored in free text", freeText, Event{Kind: EventCut}, withValue, freeText, Effects{}},
		{"copy keeps state", selecting, Event{Kind: EventCopy}, withValue, selecting, Effects{Copy: true, CopyText: "X"}},
		{"copy without value", selecting, Event{Kind: EventCopy}, empty, selecting, Effects{}},
		{"copy empty string value", selecting, Event{Kind: EventCopy}, Context{HasValue: true}, selecting, Effects{Copy: true}},
		{"paste requests read", selecting, Event{Kind: EventPaste}, withValue, selecting, Effects{ReadClipboard: true}},
		{"paste ignored in free text", freeText, Event{Kind: EventPaste}, withValue, freeText, Effects{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effects := Transition(tt.from, tt.event, tt.ctx)
			if got != tt.want {
				t.Errorf("state = %v, want %v", got, tt.want)
			}
			if effects != tt.effects {
				t.Errorf("effects = %+v, want %+v", effects, tt.effects)
			}
		})
	}
}

func TestTransition_DeactivationResetsMode(t *testing.T) {
	s, _ := Transition(freeText, Event{Kind: EventEscape}, Context{AllowFreeText: true})
	s, _ = Transition(s, Event{Kind: EventActivate}, Context{AllowFreeText: true})
	if !s.Selecting() {
		t.Errorf("reactivated cell should be selecting, got %v", s)
	}
}

func TestState_String(t *testing.T) {
	if Inactive.String() != "inactive" {
		t.Errorf("Inactive.String() = %q", Inactive.String())
	}
	if freeText.String() != "active/text" {
		t.Errorf("freeText.String() = %q", freeText.String())
	}
	if !(Effects{}).None() {
		t.Error("zero Effects should be None")
	}
}

// =============================================================================
// OPTION LIST TESTS
// =============================================================================

func TestOptions(t *testing.T) {
	configured := []string{"1,One", "2,Two", "3,Three"}

	tests := []struct {
		name     string
		value    string
		hasValue bool
		want     []string
	}{
		{"no value", "", false, []string{"", "1,One", "2,Two", "3,Three"}},
		{"known value", "2,Two", true, []string{"", "1,One", "2,Two", "3,Three"}},
		{"unknown value is added", "4,Four", true, []string{"", "4,Four", "1,One", "2,Two", "3,Three"}},
		{"empty value", "", true, []string{"", "1,One", "2,Two", "3,Three"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Options(configured, tt.value, tt.hasValue)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Options() = %q, want %q", got, tt.want)
			}
		})
	}

	if len(configured) != 3 {
		t.Errorf("configured options were modified: %q", configured)
	}
}

func TestIndexOf(t *testing.T) {
	opts := []string{"", "a", "b"}
	if got := IndexOf(opts, "b"); got != 2 {
		t.Errorf("IndexOf(b) = %d, want 2", got)
	}
	if got := IndexOf(opts, "zzz"); got != 0 {
		t.Errorf("IndexOf(missing) = %d, want 0", got)
	}
}
