// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the gridinput widget.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Cyan - Focused cell and brand accents
  - Purple - Active cell in selecting mode
  - Emerald - Free text editing
  - Amber - Values that contain separator text
  - Rose - Errors

Status helpers (RenderSuccess, RenderError, RenderWarning, RenderInfo) pair
each color with an ASCII indicator for colorblind users.

# Theme System (theme.go)

NewTheme detects the color profile with termenv and resolves the background
either from configuration ("dark", "light") or from the terminal ("auto"):

	theme := styles.NewTheme(cfg.UI.Theme)
	cell := theme.CellFocused.Render(text)
*/
package styles
