// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// help.go - Help output, rendered as markdown on a terminal.

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# gridinput

Edit a sparse grid of cells. The document is plain text: one record per
cell, each record an address and a value.

    0_0<TAB>Yes
    2_1<TAB>No

Records are kept sorted, so the same grid always produces the same text.

## Commands

| Command | Description |
|---|---|
| ` + "`gridinput`" + ` | Open the grid editor |
| ` + "`get CELL`" + ` | Print one cell's value |
| ` + "`set CELL VALUE`" + ` | Set a cell; ` + "`-`" + ` reads stdin |
| ` + "`clear CELL`" + ` | Remove a cell's value |
| ` + "`show`" + ` | Print the grid as a table |
| ` + "`cat`" + ` | Print the canonical document |
| ` + "`normalize`" + ` | Canonicalize stdin |
| ` + "`repl`" + ` | Line-mode editor |
| ` + "`docs`" + ` | List, remove, restore and diff sqlite documents |
| ` + "`export`" + ` | Write the grid as Markdown, HTML, JSON or CSV |
| ` + "`config`" + ` | Show and change settings |

CELL is a name such as ` + "`B3`" + ` or a zero-based ` + "`ROW COLUMN`" + ` pair.

## Editor keys

- **arrows / hjkl** move, **Enter** opens the option list
- **F2** or **Alt+Enter** switches to free text
- **Delete** clears, **Ctrl+X / C / V** cut, copy and paste
- **Alt+click** toggles free text, **?** shows all keys, **q** quits

## Files

- ` + "`~/.gridinput/config.toml`" + ` settings
- ` + "`~/.gridinput/grid.txt`" + ` default document
- ` + "`~/.gridinput/gridinput.db`" + ` sqlite documents
- ` + "`~/.gridinput/gridinput.log`" + ` editor log
`

// HandleHelp prints help. An unknown command name is a usage error.
func HandleHelp(_ context.Context, env *Env) error {
	if env.Args.Unknown != "" {
		PrintUsage(env.Stderr)
		return NewUsageError("unknown command: %s", env.Args.Unknown)
	}

	if !env.colorOutput() {
		PrintUsage(env.Stdout)
		return nil
	}
	fmt.Fprint(env.Stdout, renderMarkdown(helpMarkdown, GetTerminalWidth()))
	return nil
}

// renderMarkdown renders md for the terminal, falling back to the source
// when glamour fails.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(width, 100)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
