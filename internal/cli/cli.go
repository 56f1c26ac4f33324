// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command line parsing for gridinput.

package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command is the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdGet
	CmdSet
	CmdClear
	CmdShow
	CmdCat
	CmdNormalize
	CmdRepl
	CmdDocs
	CmdExport
	CmdConfig
	CmdVersion
	CmdHelp
)

var commandNames = map[Command]string{
	CmdTUI:       "tui",
	CmdGet:       "get",
	CmdSet:       "set",
	CmdClear:     "clear",
	CmdShow:      "show",
	CmdCat:       "cat",
	CmdNormalize: "normalize",
	CmdRepl:      "repl",
	CmdDocs:      "docs",
	CmdExport:    "export",
	CmdConfig:    "config",
	CmdVersion:   "version",
	CmdHelp:      "help",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string // --config: load this file instead of ~/.gridinput
	Document   string // --doc: document name in the sqlite backend
	File       string // --file: document path, selects the file backend
	Backend    string // --backend: "file" or "sqlite"
	JSON       bool
	Quiet      bool

	// Raw holds the arguments after the command name.
	Raw []string

	// Unknown is an unrecognized command name; it is reported by help.
	Unknown string
}

const usageText = `gridinput - edit a sparse grid of cells stored as delimited text

Usage:
  gridinput [tui]                   Open the grid editor (default)
  gridinput get CELL                Print one cell's value
  gridinput set CELL VALUE          Set a cell ("-" reads VALUE from stdin)
  gridinput clear CELL              Remove a cell's value
  gridinput show                    Print the grid as a table
  gridinput cat                     Print the canonical document
  gridinput normalize               Canonicalize stdin to stdout
  gridinput repl                    Line-mode editor with history
  gridinput docs [list|rm|history|restore|diff]
                                    Documents in the sqlite backend
  gridinput export [markdown|html|json|csv] [--out DIR]
  gridinput config [show|get|set|path]
  gridinput version
  gridinput help

CELL is a name such as B3 or a zero-based "ROW COLUMN" pair.

Global flags:
  --config PATH     Use this config file
  --file, -f PATH   Edit this document file (file backend)
  --doc, -d NAME    Edit this document (sqlite backend)
  --backend NAME    file or sqlite
  --json            JSON output where supported
  -q, --quiet       Suppress informational output

Version: %s
`

// PrintUsage writes the usage text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion writes version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "gridinput version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "  Go:         %s\n", runtime.Version())
}

// Parse parses command line arguments (without the program name).
func Parse(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	name := strings.ToLower(remaining[0])
	args.Raw = remaining[1:]

	switch name {
	case "tui", "edit":
		return CmdTUI, args
	case "get":
		return CmdGet, args
	case "set", "put":
		return CmdSet, args
	case "clear", "unset":
		return CmdClear, args
	case "show", "table":
		return CmdShow, args
	case "cat", "value":
		return CmdCat, args
	case "normalize", "fmt":
		return CmdNormalize, args
	case "repl", "shell":
		return CmdRepl, args
	case "docs", "doc", "documents":
		return CmdDocs, args
	case "export":
		return CmdExport, args
	case "config":
		return CmdConfig, args
	case "version", "-v", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		args.Unknown = remaining[0]
		return CmdHelp, args
	}
}

// parseGlobalFlags extracts global flags from anywhere in argv.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var remaining []string
	var args Args

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		if arg == "--" {
			remaining = append(remaining, argv[i:]...)
			break
		}

		name, value, hasValue := strings.Cut(arg, "=")
		target := globalStringFlag(&args, name)
		if target != nil {
			switch {
			case hasValue:
				*target = value
			case i+1 < len(argv):
				i++
				*target = argv[i]
			}
			continue
		}

		switch arg {
		case "--json":
			args.JSON = true
		case "-q", "--quiet":
			args.Quiet = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, args
}

func globalStringFlag(args *Args, name string) *string {
	switch name {
	case "--config":
		return &args.ConfigPath
	case "--doc", "-d":
		return &args.Document
	case "--file", "-f":
		return &args.File
	case "--backend":
		return &args.Backend
	}
	return nil
}
