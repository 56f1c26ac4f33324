// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gridview provides the terminal grid editor for gridinput.
//
// The Model renders a rows x columns grid of cells, routes keyboard and
// mouse input through the cell state machine, and applies the resulting
// edits to a Document (normally a *grid.Store). It owns no document state of
// its own: every value it shows is read back from the Document.
//
// # Key Types
//
//   - Model: Bubble Tea model of the widget
//   - Options: Construction parameters (dimensions, choices, clipboard)
//   - KeyMap: Keyboard bindings with help text
//   - PasteMsg: Result of an asynchronous clipboard read
//   - ExternalValueMsg: Replacement value from outside (file watcher)
//
// # Usage
//
//	store := grid.NewStore(initial, codec, save)
//	m := gridview.New(store, gridview.Options{Rows: 4, Columns: 3})
//	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	_, err := p.Run()
package gridview
