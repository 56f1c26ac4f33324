// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cell implements the interaction state machine of a single grid
// cell.
//
// A cell is Inactive, or Active in one of two modes: Selecting (choosing
// from the option list) or FreeText (typing arbitrary text, only when the
// grid allows it). Transition never performs side effects. It returns the
// next State plus the Effects the host must carry out: an edit to
// dispatch, text to copy, or a clipboard read whose result becomes an edit
// of the same address.
//
// # Transitions
//
//	Inactive          --Activate/Click-->   Active/Selecting
//	Active/Selecting  --AltClick-->         Active/FreeText (free text allowed)
//	Active/*          --Escape/Blur-->      Inactive
//	Active/Selecting  --Choose(v)-->        Inactive, Edit(v)
//	Active/FreeText   --Commit(v)-->        Inactive, Edit(v)
//	not FreeText      --Delete-->           Inactive, Edit("")
//	not FreeText      --Cut-->              Inactive, Copy(value), Edit("")
//	not FreeText      --Copy-->             Copy(value)
//	not FreeText      --Paste-->            ReadClipboard
package cell
