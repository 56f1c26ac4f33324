// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jeranaias/gridinput/internal/grid"
)

// =============================================================================
// CHANGE TYPES
// =============================================================================

// ChangeKind is how one cell differs between two documents.
type ChangeKind int

const (
	// Added cells have a value only in the new document.
	Added ChangeKind = iota
	// Removed cells have a value only in the old document.
	Removed
	// Modified cells have different values in both.
	Modified
)

// String returns the string representation of a change kind.
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// Change is one differing cell.
type Change struct {
	Address grid.Address
	Kind    ChangeKind
	Old     string // "" when Added
	New     string // "" when Removed
}

// Stats counts changes by kind.
type Stats struct {
	Added    int
	Removed  int
	Modified int
}

// Diff is the cell-level difference between two documents.
type Diff struct {
	Name    string
	Changes []Change
	Stats   Stats
}

// =============================================================================
// COMPUTATION
// =============================================================================

// Compute compares two grids. Changes are ordered by row, then column.
func Compute(name string, oldCells, newCells grid.Grid) *Diff {
	d := &Diff{Name: name}

	addrs := make([]grid.Address, 0, len(oldCells)+len(newCells))
	for addr := range oldCells {
		addrs = append(addrs, addr)
	}
	for addr := range newCells {
		if _, ok := oldCells[addr]; !ok {
			addrs = append(addrs, addr)
		}
	}
	slices.SortFunc(addrs, func(a, b grid.Address) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Column, b.Column)
	})

	for _, addr := range addrs {
		oldValue, hadOld := oldCells[addr]
		newValue, hasNew := newCells[addr]
		switch {
		case !hadOld:
			d.Changes = append(d.Changes, Change{Address: addr, Kind: Added, New: newValue})
			d.Stats.Added++
		case !hasNew:
			d.Changes = append(d.Changes, Change{Address: addr, Kind: Removed, Old: oldValue})
			d.Stats.Removed++
		case oldValue != newValue:
			d.Changes = append(d.Changes, Change{Address: addr, Kind: Modified, Old: oldValue, New: newValue})
			d.Stats.Modified++
		}
	}
	return d
}

// Documents parses both texts with codec and compares them.
func Documents(codec *grid.Codec, name, oldText, newText string) *Diff {
	return Compute(name, codec.Parse(oldText), codec.Parse(newText))
}

// Empty reports whether the documents hold the same cells.
func (d *Diff) Empty() bool {
	return len(d.Changes) == 0
}

// =============================================================================
// FORMATTING
// =============================================================================

// Format renders the diff in unified style, one record per line, written
// with codec's separators. A modified cell is a removed record followed by
// an added one.
func (d *Diff) Format(codec *grid.Codec) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "--- a/%s\n", d.Name)
	fmt.Fprintf(&sb, "+++ b/%s\n", d.Name)

	for _, c := range d.Changes {
		if c.Kind != Added {
			sb.WriteString("-" + record(codec, c.Address, c.Old) + "\n")
		}
		if c.Kind != Removed {
			sb.WriteString("+" + record(codec, c.Address, c.New) + "\n")
		}
	}
	return sb.String()
}

func record(codec *grid.Codec, addr grid.Address, value string) string {
	return codec.Stringify(grid.Grid{addr: value})
}

// Summary returns counts such as "+1 -0 ~2", or "no changes".
func (d *Diff) Summary() string {
	if d.Empty() {
		return "no changes"
	}
	return fmt.Sprintf("+%d -%d ~%d", d.Stats.Added, d.Stats.Removed, d.Stats.Modified)
}
