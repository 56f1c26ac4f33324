// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff compares two versions of a grid document cell by cell.
//
// # Key Types
//
//   - ChangeKind: added, removed or modified
//   - Change: one cell that differs, with its old and new values
//   - Diff: every change in row-major order plus counts
//
// # Usage
//
//	d := diff.Documents(codec, "budget", oldText, newText)
//	fmt.Print(d.Format(codec))
//	fmt.Println(d.Summary()) // "+1 -0 ~2"
package diff
