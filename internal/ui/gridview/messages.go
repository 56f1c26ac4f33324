// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gridview

import "github.com/jeranaias/gridinput/internal/grid"

// PasteMsg carries the result of a clipboard read started by a paste. The
// text is applied to Address, the cell focused when the paste was issued,
// whatever happened to the widget in between.
type PasteMsg struct {
	Address grid.Address
	Text    string
	Err     error
}

// ExternalValueMsg replaces the whole document, as when the file changes on
// disk.
type ExternalValueMsg struct {
	Value string
}

// SaveErrorMsg reports a failed save so the status line can show it.
type SaveErrorMsg struct {
	Err error
}
