// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gridview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/gridinput/internal/clipboard"
	"github.com/jeranaias/gridinput/internal/grid"
	"github.com/jeranaias/gridinput/internal/ui/styles"
)

// =============================================================================
// HELPERS
// =============================================================================

type harness struct {
	m       Model
	store   *grid.Store
	clip    *clipboard.Memory
	changes []string
}

func newHarness(t *testing.T, initial string, opts Options) *harness {
	t.Helper()
	h := &harness{clip: clipboard.NewMemory()}
	h.store = grid.NewStore(initial, grid.DefaultCodec(), func(v string) {
		h.changes = append(h.changes, v)
	})
	if opts.Rows == 0 {
		opts.Rows = 4
	}
	if opts.Columns == 0 {
		opts.Columns = 3
	}
	opts.Clipboard = h.clip
	opts.Theme = styles.NewTheme(styles.ModeDark)
	h.m = New(h.store, opts)
	t.Cleanup(h.m.Close)
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) key(k tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: k})
}

func (h *harness) runes(s string) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) click(x, y int, alt bool) tea.Cmd {
	return h.send(tea.MouseMsg{
		X:      x,
		Y:      y,
		Alt:    alt,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
}

// run executes cmd and returns the messages it produced, flattening batches.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// =============================================================================
// NAVIGATION TESTS
// =============================================================================

func TestNavigation_Clamps(t *testing.T) {
	h := newHarness(t, "", Options{})

	h.key(tea.KeyUp)
	h.key(tea.KeyLeft)
	require.Equal(t, grid.At(0, 0), h.m.Focus())

	for i := 0; i < 5; i++ {
		h.key(tea.KeyRight)
		h.key(tea.KeyDown)
	}
	require.Equal(t, grid.At(3, 2), h.m.Focus())

	h.key(tea.KeyShiftTab)
	require.Equal(t, grid.At(3, 1), h.m.Focus())
}

func TestNavigation_BlursActiveCell(t *testing.T) {
	h := newHarness(t, "", Options{Choices: []string{"Yes"}})

	h.key(tea.KeyEnter)
	require.True(t, h.m.CellState().Selecting())

	h.key(tea.KeyRight)
	require.False(t, h.m.CellState().Active)
	require.Nil(t, h.m.Choices())
	require.Equal(t, grid.At(0, 1), h.m.Focus())
}

func TestNavigation_ScrollsToFocus(t *testing.T) {
	h := newHarness(t, "", Options{Rows: 20, Columns: 3})
	h.send(tea.WindowSizeMsg{Width: 40, Height: 10})

	// header, status bar and one line of help leave 7 rows
	require.Equal(t, 7, h.m.visibleRows())
	require.Equal(t, 2, h.m.visibleCols())

	for i := 0; i < 10; i++ {
		h.key(tea.KeyDown)
	}
	require.Equal(t, 4, h.m.top)

	h.key(tea.KeyRight)
	h.key(tea.KeyRight)
	require.Equal(t, 1, h.m.left)

	addr, ok := h.m.cellAt(3, 1)
	require.True(t, ok)
	require.Equal(t, grid.At(4, 1), addr)
}

// =============================================================================
// SELECTING TESTS
// =============================================================================

func TestActivate_OffersOptions(t *testing.T) {
	h := newHarness(t, "0_0\tMaybe", Options{Choices: []string{"Yes", "No"}})

	h.key(tea.KeyEnter)
	require.True(t, h.m.CellState().Selecting())
	require.Equal(t, []string{"", "Maybe", "Yes", "No"}, h.m.Choices())
	require.Equal(t, 1, h.m.highlight, "the current value is highlighted")
}

func TestChoose_SetsValue(t *testing.T) {
	h := newHarness(t, "0_0\tMaybe", Options{Choices: []string{"Yes", "No"}})

	h.key(tea.KeyEnter)
	h.key(tea.KeyDown)
	h.key(tea.KeyEnter)

	require.Equal(t, "0_0\tYes", h.store.Value())
	require.False(t, h.m.CellState().Active)
	require.Equal(t, []string{"0_0\tYes"}, h.changes)
}

func TestChoose_EmptyOptionClears(t *testing.T) {
	h := newHarness(t, "0_0\tYes\n1_0\tNo", Options{Choices: []string{"Yes", "No"}})

	h.key(tea.KeyEnter)
	h.key(tea.KeyUp)
	h.key(tea.KeyUp)
	h.key(tea.KeyEnter)

	require.Equal(t, "1_0\tNo", h.store.Value())
}

func TestEscape_LeavesValue(t *testing.T) {
	h := newHarness(t, "0_0\tA", Options{Choices: []string{"B"}})

	h.key(tea.KeyEnter)
	h.key(tea.KeyDown)
	h.key(tea.KeyEsc)

	require.False(t, h.m.CellState().Active)
	require.Equal(t, "0_0\tA", h.store.Value())
}

// =============================================================================
// EDITING TESTS
// =============================================================================

func TestDelete_Clears(t *testing.T) {
	h := newHarness(t, "0_0\tA\n0_1\tB", Options{})

	h.key(tea.KeyDelete)
	require.Equal(t, "0_1\tB", h.store.Value())
	require.Equal(t, "cleared A1", h.m.Status())
}

func TestFreeText_Commit(t *testing.T) {
	h := newHarness(t, "0_0\tA", Options{AllowFreeText: true})

	h.key(tea.KeyF2)
	require.True(t, h.m.CellState().FreeText())
	require.Equal(t, "A", h.m.input.Value(), "editing starts from the current value")

	h.key(tea.KeyBackspace)
	h.runes("hi")
	h.key(tea.KeyEnter)

	require.False(t, h.m.CellState().Active)
	require.Equal(t, "0_0\thi", h.store.Value())
}

func TestFreeText_ClickElsewhereCommits(t *testing.T) {
	h := newHarness(t, "", Options{AllowFreeText: true})

	h.key(tea.KeyF2)
	h.runes("hi")
	h.click(2+13+1, 1, false)

	require.Equal(t, grid.At(0, 1), h.m.Focus())
	require.True(t, h.m.CellState().Selecting())
	require.Equal(t, "0_0\thi", h.store.Value())
	require.Equal(t, "set A1", h.m.Status())
}

func TestFreeText_ClickOutsideCommits(t *testing.T) {
	h := newHarness(t, "0_0\tA", Options{AllowFreeText: true})

	h.key(tea.KeyF2)
	h.runes("B")
	h.click(0, 0, false)

	require.False(t, h.m.CellState().Active)
	require.Equal(t, "0_0\tAB", h.store.Value())
}

func TestFreeText_FocusMoveCommits(t *testing.T) {
	h := newHarness(t, "", Options{AllowFreeText: true})

	h.key(tea.KeyF2)
	h.runes("x")
	next, _ := h.m.moveFocus(1, 0)
	h.m = next.(Model)

	require.Equal(t, grid.At(1, 0), h.m.Focus())
	require.False(t, h.m.CellState().Active)
	require.Equal(t, "0_0\tx", h.store.Value())
}

func TestFreeText_BlurUnchangedIsQuiet(t *testing.T) {
	h := newHarness(t, "", Options{AllowFreeText: true})

	h.key(tea.KeyF2)
	h.click(0, 0, false)

	require.Empty(t, h.store.Value())
	require.Empty(t, h.changes)
	require.Empty(t, h.m.Status())
}

func TestFreeText_EscapeDiscards(t *testing.T) {
	h := newHarness(t, "0_0\tA", Options{AllowFreeText: true})

	h.key(tea.KeyF2)
	h.runes("B")
	h.key(tea.KeyEsc)
	h.click(2+13+1, 1, false)

	require.Equal(t, "0_0\tA", h.store.Value())
}

func TestFreeText_DeleteKeyEditsText(t *testing.T) {
	h := newHarness(t, "0_0\tAB", Options{AllowFreeText: true})

	h.key(tea.KeyF2)
	h.key(tea.KeyBackspace)
	require.Equal(t, "A", h.m.input.Value())
	require.Equal(t, "0_0\tAB", h.store.Value(), "nothing is stored before commit")
}

func TestFreeText_Disabled(t *testing.T) {
	h := newHarness(t, "", Options{AllowFreeText: false})

	h.key(tea.KeyF2)
	require.True(t, h.m.CellState().Selecting())
}

func TestEdit_WarnsOnSeparator(t *testing.T) {
	h := newHarness(t, "", Options{})
	require.NoError(t, h.clip.WriteText("a\tb"))

	cmd := h.key(tea.KeyCtrlV)
	for _, msg := range run(cmd) {
		h.send(msg)
	}

	require.Equal(t, statusWarn, h.m.statusKind)
	require.Contains(t, h.m.Status(), "A1")
}

// =============================================================================
// CLIPBOARD TESTS
// =============================================================================

func TestCut_CopiesAndClears(t *testing.T) {
	h := newHarness(t, "0_0\tA", Options{})

	h.key(tea.KeyCtrlX)

	text, err := h.clip.ReadText()
	require.NoError(t, err)
	require.Equal(t, "A", text)
	require.Equal(t, "", h.store.Value())
}

func TestCopy_KeepsValue(t *testing.T) {
	h := newHarness(t, "0_0\tA", Options{})

	h.key(tea.KeyCtrlC)

	text, err := h.clip.ReadText()
	require.NoError(t, err)
	require.Equal(t, "A", text)
	require.Equal(t, "0_0\tA", h.store.Value())
}

func TestCopy_EmptyCellDoesNothing(t *testing.T) {
	h := newHarness(t, "", Options{})

	h.key(tea.KeyCtrlC)

	_, err := h.clip.ReadText()
	require.ErrorIs(t, err, clipboard.ErrUnavailable)
}

func TestPaste_AppliesToCapturedCell(t *testing.T) {
	h := newHarness(t, "", Options{})
	require.NoError(t, h.clip.WriteText("P"))

	cmd := h.key(tea.KeyCtrlV)
	require.NotNil(t, cmd)

	// focus moves on before the read completes
	h.key(tea.KeyDown)
	h.key(tea.KeyRight)

	msgs := run(cmd)
	require.Len(t, msgs, 1)
	h.send(msgs[0])

	require.Equal(t, "0_0\tP", h.store.Value())
	require.Equal(t, grid.At(1, 1), h.m.Focus())
}

func TestPaste_DiscardedAfterClose(t *testing.T) {
	h := newHarness(t, "", Options{})
	require.NoError(t, h.clip.WriteText("P"))

	cmd := h.key(tea.KeyCtrlV)
	h.m.Close()

	require.Empty(t, run(cmd))

	h.send(PasteMsg{Address: grid.At(0, 0), Text: "late"})
	require.Equal(t, "", h.store.Value())
}

func TestPaste_ReadError(t *testing.T) {
	h := newHarness(t, "0_0\tA", Options{})

	h.send(PasteMsg{Address: grid.At(0, 0), Err: errors.New("no display")})

	require.Equal(t, "0_0\tA", h.store.Value())
	require.Equal(t, statusError, h.m.statusKind)
}

// =============================================================================
// MOUSE TESTS
// =============================================================================

func TestMouse_ClickFocusesAndActivates(t *testing.T) {
	h := newHarness(t, "", Options{Choices: []string{"Yes", "No"}})

	// gutter is 2 wide, each cell 13
	h.click(2+2*13+1, 2, false)

	require.Equal(t, grid.At(1, 2), h.m.Focus())
	require.True(t, h.m.CellState().Selecting())
}

func TestMouse_ClickOption(t *testing.T) {
	h := newHarness(t, "", Options{Choices: []string{"Yes", "No"}})
	h.click(2+2*13+1, 2, false)

	// four grid rows put the option box border on line 5
	h.click(3, 7, false)

	require.Equal(t, "1_2\tYes", h.store.Value())
	require.False(t, h.m.CellState().Active)
}

func TestMouse_AltClickTogglesMode(t *testing.T) {
	h := newHarness(t, "", Options{AllowFreeText: true})

	h.click(3, 1, true)
	require.True(t, h.m.CellState().FreeText())

	h.click(3, 1, true)
	require.True(t, h.m.CellState().Selecting())
}

func TestMouse_ClickOutsideBlurs(t *testing.T) {
	h := newHarness(t, "", Options{})
	h.key(tea.KeyEnter)

	h.click(0, 0, false)
	require.False(t, h.m.CellState().Active)
}

func TestCellAt(t *testing.T) {
	h := newHarness(t, "", Options{})

	_, ok := h.m.cellAt(1, 1)
	require.False(t, ok, "row gutter")

	_, ok = h.m.cellAt(2+12, 1)
	require.False(t, ok, "column gap")

	addr, ok := h.m.cellAt(2+13, 4)
	require.True(t, ok)
	require.Equal(t, grid.At(3, 1), addr)

	_, ok = h.m.cellAt(2, 5)
	require.False(t, ok, "below the grid")
}

// =============================================================================
// LIFECYCLE TESTS
// =============================================================================

func TestInit_Mounts(t *testing.T) {
	h := newHarness(t, "1_0\tB\n0_0\tA", Options{})

	h.m.Init()
	h.m.Init()

	require.Equal(t, []string{"0_0\tA\n1_0\tB"}, h.changes)
}

func TestExternalValue(t *testing.T) {
	h := newHarness(t, "0_0\tA", Options{})

	h.send(ExternalValueMsg{Value: "2_2\tZ"})

	require.Equal(t, "2_2\tZ", h.store.Value())
	require.Equal(t, "reloaded from disk", h.m.Status())

	h.send(ExternalValueMsg{Value: "2_2\tZ"})
	require.Equal(t, []string{"2_2\tZ"}, h.changes)
}

func TestSaveError(t *testing.T) {
	h := newHarness(t, "", Options{})

	h.send(SaveErrorMsg{Err: errors.New("disk full")})

	require.Equal(t, statusError, h.m.statusKind)
	require.Contains(t, h.m.Status(), "disk full")
}

func TestQuit(t *testing.T) {
	h := newHarness(t, "", Options{})

	cmd := h.runes("q")
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.Error(t, h.m.ctx.Err())
}

// =============================================================================
// VIEW TESTS
// =============================================================================

func TestView_ShowsCells(t *testing.T) {
	h := newHarness(t, "0_1\tApple\n1_0\tPear", Options{ShowValue: true})

	view := h.m.View()
	require.Contains(t, view, "Apple")
	require.Contains(t, view, "Pear")
	require.Contains(t, view, "NAV")
	require.Contains(t, view, "A1")
	require.Contains(t, view, "0_1→Apple")
}

func TestView_ShowsOptions(t *testing.T) {
	h := newHarness(t, "", Options{Choices: []string{"Yes", "No"}})
	h.key(tea.KeyEnter)

	view := h.m.View()
	require.Contains(t, view, "SELECT")
	require.Contains(t, view, "(empty)")
	require.Contains(t, view, "Yes")
}

func TestView_TruncatesLongValues(t *testing.T) {
	h := newHarness(t, "0_0\t"+strings.Repeat("x", 40), Options{CellWidth: 6})

	require.Contains(t, h.m.View(), "xxxxx…")
}
