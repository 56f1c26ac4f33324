// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive
// commands of gridinput.
//
// # Key Types
//
//   - Command: the subcommand selected by Parse
//   - Args: global flags and the arguments after the command name
//   - Env: configuration plus the streams a handler reads and writes
//   - Session: one opened document with its store and backend
//   - REPL: the line-mode editor behind "gridinput repl"
//
// # Usage
//
//	cmd, args := cli.Parse(os.Args[1:])
//	env := cli.NewEnv(cfg, args)
//	switch cmd {
//	case cli.CmdGet:
//	    err = cli.HandleGet(ctx, env)
//	case cli.CmdSet:
//	    err = cli.HandleSet(ctx, env)
//	// ...
//	}
//	os.Exit(cli.GetExitCode(err))
//
// # Output
//
// Handlers write results to Env.Stdout and informational lines to
// Env.Stderr; --quiet drops the latter. With --json, results are wrapped
// in a JSONResponse.
//
// # Exit Codes
//
//   - 0: success
//   - 1: general error
//   - 2: usage error
//   - 3: invalid configuration
//   - 7: cell, document or revision not found
package cli
