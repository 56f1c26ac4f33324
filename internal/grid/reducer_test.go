// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewState_Normalizes(t *testing.T) {
	s := NewState("3_1\t2,Two\n0_0\t1,One\nbogus", nil)

	require.Equal(t, "0_0\t1,One\n3_1\t2,Two", s.Value())
	require.Equal(t, 2, s.Len())

	v, ok := s.Cell(At(3, 1))
	require.True(t, ok)
	require.Equal(t, "2,Two", v)

	_, ok = s.Cell(At(5, 5))
	require.False(t, ok)
}

func TestReduce_ChangeCell(t *testing.T) {
	s0 := NewState("0_0\t1,One", DefaultCodec())

	s1 := Reduce(s0, Set(3, 1, "2,Two"))
	require.NotSame(t, s0, s1)
	require.Equal(t, "0_0\t1,One\n3_1\t2,Two", s1.Value())

	// The input state is untouched.
	require.Equal(t, "0_0\t1,One", s0.Value())
	_, ok := s0.Cell(At(3, 1))
	require.False(t, ok)
}

func TestReduce_ClearVersusUnset(t *testing.T) {
	s0 := NewState("", nil)

	cleared := Reduce(s0, Set(0, 0, ""))
	require.Equal(t, "0_0\t", cleared.Value())
	v, ok := cleared.Cell(At(0, 0))
	require.True(t, ok)
	require.Equal(t, "", v)

	unset := Reduce(cleared, Unset(0, 0))
	require.Equal(t, "", unset.Value())
	require.Equal(t, 0, unset.Len())
}

func TestReduce_NoOps(t *testing.T) {
	s := NewState("0_0\tA", nil)

	require.Same(t, s, Reduce(s, Set(0, 0, "A")), "same value")
	require.Same(t, s, Reduce(s, Unset(4, 4)), "unset of an absent cell")
	require.Same(t, s, Reduce(s, Set(-1, 0, "x")), "invalid address")
	require.Same(t, s, Reduce(s, SetValue{Text: "0_0\tA"}), "identical text")
}

func TestReduce_SetValue(t *testing.T) {
	s0 := NewState("0_0\tA", nil)

	s1 := Reduce(s0, SetValue{Text: "3_1\t2,Two\n0_0\t1,One"})
	require.NotSame(t, s0, s1)
	require.Equal(t, "0_0\t1,One\n3_1\t2,Two", s1.Value())

	// Non-canonical text that normalizes to the current value still yields
	// a fresh state, but with the same canonical value.
	s2 := Reduce(s1, SetValue{Text: "3_1\t2,Two\n0_0\t1,One"})
	require.Equal(t, s1.Value(), s2.Value())

	// Canonical text is a no-op.
	require.Same(t, s2, Reduce(s2, SetValue{Text: s2.Value()}))
}

func TestReduce_SetValueEmpty(t *testing.T) {
	s := Reduce(NewState("0_0\tA", nil), SetValue{Text: ""})
	require.Equal(t, "", s.Value())
	require.Equal(t, 0, s.Len())
}

func TestState_CellsIsACopy(t *testing.T) {
	s := NewState("0_0\tA", nil)
	cells := s.Cells()
	cells[At(9, 9)] = "mutated"

	_, ok := s.Cell(At(9, 9))
	require.False(t, ok)
}
