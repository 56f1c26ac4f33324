// gridinput - Edit a sparse grid of cells stored as delimited text.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/gridinput/internal/cli"
	"github.com/jeranaias/gridinput/internal/config"
	"github.com/jeranaias/gridinput/internal/ui/gridview"
	"github.com/jeranaias/gridinput/internal/ui/styles"
	"github.com/jeranaias/gridinput/internal/watch"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	// Commands that need no configuration.
	switch {
	case cmd == cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
		return
	case cmd == cli.CmdHelp && args.Unknown == "":
		env := cli.NewEnv(config.Default(), args)
		exit(args, cmd, cli.HandleHelp(context.Background(), env))
		return
	}

	cfg, err := loadConfig(args)
	if err != nil {
		exit(args, cmd, err)
		return
	}
	env := cli.NewEnv(cfg, args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case cli.CmdTUI:
		err = runTUI(ctx, env)
	case cli.CmdGet:
		err = cli.HandleGet(ctx, env)
	case cli.CmdSet:
		err = cli.HandleSet(ctx, env)
	case cli.CmdClear:
		err = cli.HandleClear(ctx, env)
	case cli.CmdShow:
		err = cli.HandleShow(ctx, env)
	case cli.CmdCat:
		err = cli.HandleCat(ctx, env)
	case cli.CmdNormalize:
		err = cli.HandleNormalize(ctx, env)
	case cli.CmdRepl:
		err = cli.HandleRepl(ctx, env)
	case cli.CmdDocs:
		err = cli.HandleDocs(ctx, env)
	case cli.CmdExport:
		err = cli.HandleExport(ctx, env)
	case cli.CmdConfig:
		err = cli.HandleConfig(ctx, env)
	case cli.CmdHelp:
		err = cli.HandleHelp(ctx, env)
	}

	stop()
	exit(args, cmd, err)
}

// loadConfig loads --config when given, otherwise the default config files.
// A broken default config file is reported and defaults are used.
func loadConfig(args cli.Args) (*config.Config, error) {
	if args.ConfigPath != "" {
		return config.LoadFromPath(config.ExpandHome(args.ConfigPath))
	}
	cfg, err := config.Load()
	if err != nil && !args.Quiet {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	return cfg, nil
}

// exit reports err and terminates with its exit code.
func exit(args cli.Args, cmd cli.Command, err error) {
	if err == nil {
		return
	}
	if args.JSON {
		resp := cli.NewJSONErrorResponse(cmd.String(), err)
		if encErr := cli.WriteJSON(os.Stdout, resp); encErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	} else {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())
	}
	os.Exit(cli.GetExitCode(err))
}

// =============================================================================
// TUI
// =============================================================================

// runTUI opens the configured document in the grid editor. Every change is
// saved as it happens; with the file backend, edits made to the file by
// other programs are loaded into the editor.
func runTUI(ctx context.Context, env *cli.Env) error {
	if err := cli.RequiresTTY("the grid editor"); err != nil {
		return err
	}
	cfg := env.Config

	if err := config.EnsureConfigDir(); err == nil {
		if logPath, err := config.LogPath(); err == nil {
			if f, err := tea.LogToFile(logPath, "gridinput"); err == nil {
				defer f.Close()
			}
		}
	}

	session, err := cli.OpenSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	var p *tea.Program
	var watcher *watch.Watcher

	session.Store.SetOnChange(func(value string) {
		if watcher != nil {
			watcher.Acknowledge(value)
		}
		if err := session.Backend.Save(ctx, value); err != nil {
			log.Printf("save failed: %v", err)
			// Send blocks until the event loop reads it, and this runs
			// inside Update.
			go p.Send(gridview.SaveErrorMsg{Err: err})
		}
	})

	m := gridview.New(session.Store, gridview.Options{
		Rows:          cfg.Grid.Rows,
		Columns:       cfg.Grid.Columns,
		Choices:       cfg.Grid.Options,
		AllowFreeText: cfg.Grid.AllowFreeText,
		CellWidth:     cfg.Grid.CellWidth,
		ShowValue:     cfg.UI.ShowValue,
		Theme:         styles.NewTheme(cfg.UI.Theme),
	})
	defer m.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p = tea.NewProgram(m, opts...)

	if session.Path != "" && cfg.Watch.Enabled {
		debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
		w, err := watch.New(session.Path, debounce, func(content string) {
			p.Send(gridview.ExternalValueMsg{Value: content})
		})
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else if err := w.Start(ctx); err != nil {
			log.Printf("watch disabled: %v", err)
			w.Close()
		} else {
			watcher = w
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}
