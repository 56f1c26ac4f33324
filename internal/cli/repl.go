// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-mode editor for gridinput.
//
// Command: repl
//
// Commands (inside the repl):
//   get CELL            Print a cell
//   set CELL VALUE      Set a cell; a "quoted" VALUE may use Go escapes
//   clear CELL          Remove a cell's value
//   show                Print the grid as a table
//   cat                 Print the canonical document
//   replace TEXT        Replace the whole document (Go escapes allowed)
//   reload              Re-read the document from storage
//   help                List commands
//   quit                Exit (also Ctrl+D)
//
// Every change is saved immediately. History is kept in
// ~/.gridinput/repl_history.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/gridinput/internal/config"
	"github.com/jeranaias/gridinput/internal/grid"
)

var replCommands = []string{"get", "set", "clear", "show", "cat", "replace", "reload", "help", "quit"}

const replHelp = `get CELL          print a cell
set CELL VALUE    set a cell ("quoted" values may use \t, \n ...)
clear CELL        remove a cell's value
show              print the grid as a table
cat               print the canonical document
replace TEXT      replace the whole document
reload            re-read the document from storage
quit              exit`

// =============================================================================
// LINE EDITOR
// =============================================================================

// lineEditor wraps liner with a persistent history file.
type lineEditor struct {
	line        *liner.State
	historyFile string
}

func newLineEditor() *lineEditor {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(in string) []string {
		var out []string
		for _, c := range replCommands {
			if strings.HasPrefix(c, strings.ToLower(in)) {
				out = append(out, c)
			}
		}
		return out
	})

	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	e := &lineEditor{line: line, historyFile: filepath.Join(dir, "repl_history")}

	if f, err := os.Open(e.historyFile); err == nil {
		e.line.ReadHistory(f)
		f.Close()
	}
	return e
}

func (e *lineEditor) prompt(p string) (string, error) {
	input, err := e.line.Prompt(p)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		e.line.AppendHistory(input)
	}
	return input, nil
}

// close saves history (0600) and restores the terminal.
func (e *lineEditor) close() {
	defer e.line.Close()

	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(e.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	e.line.WriteHistory(f)
}

// =============================================================================
// REPL
// =============================================================================

// REPL executes repl command lines against one session.
type REPL struct {
	session *Session
	env     *Env
}

// NewREPL returns a REPL editing s.
func NewREPL(s *Session, env *Env) *REPL {
	return &REPL{session: s, env: env}
}

// HandleRepl runs the interactive line editor.
func HandleRepl(ctx context.Context, env *Env) error {
	s, err := OpenSession(ctx, env.Config)
	if err != nil {
		return err
	}
	defer s.Close()

	r := NewREPL(s, env)
	editor := newLineEditor()
	defer editor.close()

	if !env.Args.Quiet {
		fmt.Fprintln(env.Stdout, TitleStyle.Render("gridinput repl")+DimStyle.Render(" type help, Ctrl+D to exit"))
	}

	for ctx.Err() == nil {
		input, err := editor.prompt("grid> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		quit, err := r.Exec(ctx, input)
		if err != nil {
			fmt.Fprintln(env.Stderr, ErrorStyle.Render("error: ")+err.Error())
		}
		if quit {
			break
		}
	}
	return nil
}

// Exec runs one command line. It reports whether the repl should exit.
func (r *REPL) Exec(ctx context.Context, input string) (bool, error) {
	cmd, rest := cutWord(input)
	store := r.session.Store
	out := r.env.Stdout

	switch strings.ToLower(cmd) {
	case "":
		return false, nil

	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		fmt.Fprintln(out, replHelp)
		return false, nil

	case "get":
		addr, _, err := r.cell(rest)
		if err != nil {
			return false, err
		}
		if value, ok := store.State().Cell(addr); ok {
			fmt.Fprintln(out, value)
		} else {
			fmt.Fprintln(out, DimStyle.Render("(no value)"))
		}
		return false, nil

	case "set":
		addr, value, err := r.cell(rest)
		if err != nil {
			return false, err
		}
		if value == "" {
			return false, ErrMissingArgument("value", "set B3 hello")
		}
		return false, r.change(ctx, addr, unquoteValue(value))

	case "clear":
		addr, _, err := r.cell(rest)
		if err != nil {
			return false, err
		}
		return false, r.change(ctx, addr, "")

	case "show":
		cfg := r.env.Config.Grid
		fmt.Fprintln(out, renderTable(store.State(), cfg.Rows, cfg.Columns, cfg.CellWidth))
		return false, nil

	case "cat":
		if v := store.Value(); v != "" {
			fmt.Fprintln(out, v)
		}
		return false, nil

	case "replace":
		before := store.Value()
		store.SetValue(unquoteValue(rest))
		return false, r.saveIfChanged(ctx, before, "document replaced")

	case "reload":
		text, err := r.session.Backend.Load(ctx)
		if err != nil {
			return false, err
		}
		store.SetValue(text)
		fmt.Fprintln(out, DimStyle.Render("reloaded"))
		return false, nil
	}

	return false, NewUsageError("unknown command %q (try help)", cmd)
}

// cell parses a cell reference at the start of s and returns the remainder.
func (r *REPL) cell(s string) (grid.Address, string, error) {
	first, rest := cutWord(s)
	if first == "" {
		return grid.Address{}, "", ErrMissingArgument("cell", "get B3")
	}
	if addr, err := grid.ParseName(first); err == nil {
		return addr, rest, nil
	}

	second, tail := cutWord(rest)
	row, rowErr := strconv.Atoi(first)
	col, colErr := strconv.Atoi(second)
	if rowErr != nil || colErr != nil || row < 0 || col < 0 {
		return grid.Address{}, "", NewUsageError("invalid cell %q", first)
	}
	return grid.At(row, col), tail, nil
}

func (r *REPL) change(ctx context.Context, addr grid.Address, value string) error {
	store := r.session.Store
	if err := store.State().Codec().Separators().CheckValue(value); err != nil {
		fmt.Fprintln(r.env.Stderr, WarningStyle.Render("warning: "+addr.Name()+": "+err.Error()))
	}

	before := store.Value()
	store.ChangeCell(addr.Row, addr.Column, value)
	if value == "" {
		return r.saveIfChanged(ctx, before, "cleared "+addr.Name())
	}
	return r.saveIfChanged(ctx, before, "set "+addr.Name())
}

func (r *REPL) saveIfChanged(ctx context.Context, before, msg string) error {
	if r.session.Store.Value() == before {
		return nil
	}
	if err := r.session.Save(ctx); err != nil {
		return err
	}
	if !r.env.Args.Quiet {
		fmt.Fprintln(r.env.Stdout, SuccessStyle.Render("✓ ")+msg)
	}
	return nil
}

// cutWord splits off the first space-delimited word of s. The remainder
// keeps its inner spacing.
func cutWord(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	word, rest, _ := strings.Cut(s, " ")
	return word, strings.TrimLeft(rest, " ")
}
