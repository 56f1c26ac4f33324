// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders serialized records.
//
// Text is compared case-insensitively first. Ties are broken at the first
// rune that differs: an uppercase rune sorts before a non-uppercase one,
// whatever their width or other variant, as case is the leading part of
// a tertiary weight. Remaining ties go to the full collation, then to
// bytes, so the order is total.
//
// collate.Collator reuses internal buffers, so a Collator serializes access.
type Collator struct {
	mu   sync.Mutex
	tag  language.Tag
	fold *collate.Collator
	full *collate.Collator
}

// NewCollator returns a Collator for the given language.
func NewCollator(tag language.Tag) *Collator {
	return &Collator{
		tag:  tag,
		fold: collate.New(tag, collate.IgnoreCase),
		full: collate.New(tag),
	}
}

// Language returns the collation language.
func (c *Collator) Language() language.Tag {
	return c.tag
}

// Compare returns -1, 0 or 1. It returns 0 only for identical strings.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compare(a, b)
}

// Sort orders records in place.
func (c *Collator) Sort(records []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slices.SortFunc(records, c.compare)
}

func (c *Collator) compare(a, b string) int {
	if r := c.fold.CompareString(a, b); r != 0 {
		return r
	}
	if r := compareCase(a, b); r != 0 {
		return r
	}
	if r := c.full.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// compareCase looks at the first rune pair that differs and puts an
// uppercase rune first. It returns 0 when both or neither are uppercase.
func compareCase(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		a, b = a[na:], b[nb:]
		if ra == rb {
			continue
		}
		upperA, upperB := unicode.IsUpper(ra), unicode.IsUpper(rb)
		switch {
		case upperA && !upperB:
			return -1
		case upperB && !upperA:
			return 1
		}
		return 0
	}
	return 0
}
