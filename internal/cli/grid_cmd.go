// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// grid_cmd.go - One-shot cell commands.
//
// Examples:
//   gridinput get B3
//   gridinput get 2 1 --json
//   gridinput set B3 "two words"
//   printf 'line' | gridinput set B3 -
//   gridinput clear B3
//   gridinput show
//   gridinput cat > backup.txt
//   gridinput normalize < messy.txt

package cli

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeranaias/gridinput/internal/grid"
	"github.com/jeranaias/gridinput/internal/util"
)

// CellData is the JSON form of one cell.
type CellData struct {
	Cell   string `json:"cell"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Value  string `json:"value"`
	Set    bool   `json:"set"`
}

// =============================================================================
// GET / SET / CLEAR
// =============================================================================

// HandleGet prints one cell's value.
func HandleGet(ctx context.Context, env *Env) error {
	addr, _, err := ParseCellArgs(NewArgParser(env.Args.Raw).PositionalFrom(0))
	if err != nil {
		return err
	}

	s, err := OpenSession(ctx, env.Config)
	if err != nil {
		return err
	}
	defer s.Close()

	value, has := s.Store.State().Cell(addr)
	if env.Args.JSON {
		return WriteJSON(env.Stdout, NewJSONResponse("get", cellData(addr, value, has)))
	}
	if !has {
		return &NotFoundError{Resource: "cell", ID: addr.Name()}
	}
	fmt.Fprintln(env.Stdout, value)
	return nil
}

// HandleSet stores a value. The value "-" is read from stdin with one
// trailing newline removed.
func HandleSet(ctx context.Context, env *Env) error {
	addr, rest, err := ParseCellArgs(NewArgParser(env.Args.Raw).PositionalFrom(0))
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return ErrMissingArgument("value", `gridinput set B3 "some text"`)
	}

	value := strings.Join(rest, " ")
	if value == "-" {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		value = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	}

	return editCell(ctx, env, addr, value)
}

// HandleClear removes a cell's value.
func HandleClear(ctx context.Context, env *Env) error {
	addr, _, err := ParseCellArgs(NewArgParser(env.Args.Raw).PositionalFrom(0))
	if err != nil {
		return err
	}
	return editCell(ctx, env, addr, "")
}

func editCell(ctx context.Context, env *Env, addr grid.Address, value string) error {
	s, err := OpenSession(ctx, env.Config)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Store.State().Codec().Separators().CheckValue(value); err != nil {
		fmt.Fprintln(env.Stderr, WarningStyle.Render("warning: "+addr.Name()+": "+err.Error()))
	}

	before := s.Store.Value()
	s.Store.ChangeCell(addr.Row, addr.Column, value)
	if s.Store.Value() == before {
		env.infof("%s unchanged", addr.Name())
		return nil
	}
	if err := s.Save(ctx); err != nil {
		return err
	}

	if value == "" {
		env.infof("cleared %s", addr.Name())
	} else {
		env.infof("set %s", addr.Name())
	}
	return nil
}

// =============================================================================
// SHOW / CAT / NORMALIZE
// =============================================================================

// HandleShow prints the document as a table at least as large as the
// configured grid.
func HandleShow(ctx context.Context, env *Env) error {
	s, err := OpenSession(ctx, env.Config)
	if err != nil {
		return err
	}
	defer s.Close()

	state := s.Store.State()
	if env.Args.JSON {
		cells := make([]CellData, 0, state.Len())
		for _, addr := range sortedAddresses(state.Cells()) {
			value, _ := state.Cell(addr)
			cells = append(cells, cellData(addr, value, true))
		}
		return WriteJSON(env.Stdout, NewJSONResponse("show", cells))
	}

	fmt.Fprintln(env.Stdout, renderTable(state, env.Config.Grid.Rows, env.Config.Grid.Columns, env.Config.Grid.CellWidth))
	return nil
}

// HandleCat prints the canonical document.
func HandleCat(ctx context.Context, env *Env) error {
	s, err := OpenSession(ctx, env.Config)
	if err != nil {
		return err
	}
	defer s.Close()

	value := s.Store.Value()
	if env.Args.JSON {
		return WriteJSON(env.Stdout, NewJSONResponse("cat", map[string]string{"value": value}))
	}
	if value == "" {
		return nil
	}
	if env.colorOutput() {
		value = highlightDocument(value, s.Store.State().Codec().Separators())
	}
	fmt.Fprintln(env.Stdout, value)
	return nil
}

// HandleNormalize reads a document from stdin and writes its canonical form.
// Trailing line breaks of the input are not part of the document.
func HandleNormalize(_ context.Context, env *Env) error {
	codec, err := env.Config.Codec()
	if err != nil {
		return err
	}
	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	out := codec.Normalize(strings.TrimRight(string(data), "\r\n"))
	if out != "" {
		fmt.Fprintln(env.Stdout, out)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func cellData(addr grid.Address, value string, has bool) CellData {
	return CellData{
		Cell:   addr.Name(),
		Row:    addr.Row,
		Column: addr.Column,
		Value:  value,
		Set:    has,
	}
}

// sortedAddresses returns the keys of g in row-major order.
func sortedAddresses(g grid.Grid) []grid.Address {
	addrs := make([]grid.Address, 0, len(g))
	for addr := range g {
		addrs = append(addrs, addr)
	}
	slices.SortFunc(addrs, func(a, b grid.Address) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Column, b.Column)
	})
	return addrs
}

// renderTable draws the grid with lipgloss/table. The table grows past
// rows x columns to show every stored cell.
func renderTable(state *grid.State, rows, columns, cellWidth int) string {
	for addr := range state.Cells() {
		rows = max(rows, addr.Row+1)
		columns = max(columns, addr.Column+1)
	}

	headers := make([]string, 0, columns+1)
	headers = append(headers, "")
	for c := 0; c < columns; c++ {
		headers = append(headers, grid.ColumnName(c))
	}

	body := make([][]string, 0, rows)
	for r := 0; r < rows; r++ {
		line := make([]string, 0, columns+1)
		line = append(line, strconv.Itoa(r+1))
		for c := 0; c < columns; c++ {
			value, _ := state.Cell(grid.At(r, c))
			line = append(line, util.TruncateWidth(util.SingleLine(value), cellWidth))
		}
		body = append(body, line)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return DimStyle.Padding(0, 1)
			}
			return CellStyle
		}).
		Headers(headers...).
		Rows(body...).
		String()
}
