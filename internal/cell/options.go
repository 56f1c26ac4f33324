// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cell

import "slices"

// Options returns the choices shown while selecting: the empty choice
// first, then the cell's current value when it is not one of the configured
// options, then the configured options. configured is not modified.
func Options(configured []string, value string, hasValue bool) []string {
	out := make([]string, 0, len(configured)+2)
	out = append(out, "")
	if hasValue && value != "" && !slices.Contains(configured, value) {
		out = append(out, value)
	}
	for _, opt := range configured {
		if opt == "" {
			continue
		}
		out = append(out, opt)
	}
	return out
}

// IndexOf returns the position of value in options, or 0 (the empty choice)
// when it is absent.
func IndexOf(options []string, value string) int {
	if i := slices.Index(options, value); i >= 0 {
		return i
	}
	return 0
}
