// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by gridinput packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// Display Width:
//   - StringWidth, TruncateWidth, FitWidth, CenterWidth: column-aware
//     layout built on go-runewidth
//   - SingleLine: render tabs and newlines as visible markers
//
// # Usage
//
//	// Write the canonical value without risking a torn file
//	err := util.AtomicWriteFile(path, []byte(value), 0644)
//
//	// Fit a cell's text to its column
//	text := util.FitWidth(value, 12)
package util
