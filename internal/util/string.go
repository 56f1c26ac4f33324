// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut by TruncateWidth.
const Ellipsis = "…"

// UNICODE: all widths are terminal display columns, so CJK and other wide
// characters count as two and combining marks as zero.

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth cuts s to at most maxWidth display columns, ending in an
// ellipsis when anything was removed.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return runewidth.Truncate(s, 1, "")
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// FitWidth truncates or right-pads s so it occupies exactly width columns.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = TruncateWidth(s, width)
	return runewidth.FillRight(s, width)
}

// CenterWidth centres s in width columns, truncating when it does not fit.
func CenterWidth(s string, width int) string {
	s = TruncateWidth(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// SingleLine replaces line breaks and tabs with visible markers so a value
// containing separator characters still renders on one row.
func SingleLine(s string) string {
	return singleLineReplacer.Replace(s)
}

var singleLineReplacer = strings.NewReplacer(
	"\r\n", "⏎",
	"\n", "⏎",
	"\r", "⏎",
	"\t", "→",
)
