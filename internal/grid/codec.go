// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// =============================================================================
// ADDRESS AND GRID
// =============================================================================

// Address identifies a cell. Valid addresses have non-negative coordinates.
type Address struct {
	Row    int
	Column int
}

// At is shorthand for Address{Row: row, Column: column}.
func At(row, column int) Address {
	return Address{Row: row, Column: column}
}

// Valid reports whether both coordinates are non-negative.
func (a Address) Valid() bool {
	return a.Row >= 0 && a.Column >= 0
}

func (a Address) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Column)
}

// Grid maps addresses to cell text. An absent key is a cell with no value;
// a present empty string is a cell explicitly set to "".
type Grid map[Address]string

// Clone returns a shallow copy of g.
func (g Grid) Clone() Grid {
	if g == nil {
		return Grid{}
	}
	return maps.Clone(g)
}

// =============================================================================
// CODEC
// =============================================================================

// Codec converts between a Grid and its canonical text. A Codec is safe for
// concurrent use.
type Codec struct {
	seps     Separators
	collator *Collator
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithLanguage selects the collation language used to sort records.
func WithLanguage(tag language.Tag) CodecOption {
	return func(c *Codec) {
		c.collator = NewCollator(tag)
	}
}

// NewCodec validates seps and returns a Codec. The root collation is used
// unless WithLanguage is given.
func NewCodec(seps Separators, opts ...CodecOption) (*Codec, error) {
	if err := seps.Validate(); err != nil {
		return nil, err
	}
	c := &Codec{seps: seps}
	for _, opt := range opts {
		opt(c)
	}
	if c.collator == nil {
		c.collator = NewCollator(language.Und)
	}
	return c, nil
}

// DefaultCodec returns a Codec with the default separators.
func DefaultCodec() *Codec {
	c, err := NewCodec(DefaultSeparators())
	if err != nil {
		panic(err) // defaults are constant
	}
	return c
}

// Separators returns the codec's separators.
func (c *Codec) Separators() Separators {
	return c.seps
}

// Collator returns the codec's record collator.
func (c *Codec) Collator() *Collator {
	return c.collator
}

// Parse decodes text into a Grid.
//
// Records whose address is not two decimal non-negative integers are
// dropped. A record without a field separator writes "no value" for its
// address, which removes any earlier record for the same cell. Only the
// first field after the address is kept. Later records win.
func (c *Codec) Parse(text string) Grid {
	g := make(Grid)
	if text == "" {
		return g
	}

	for _, record := range c.seps.Record.split(text) {
		fields := c.seps.Field.split(record)
		addr, ok := c.parseAddress(fields[0])
		if !ok {
			continue
		}
		if len(fields) < 2 {
			delete(g, addr)
			continue
		}
		g[addr] = fields[1]
	}
	return g
}

func (c *Codec) parseAddress(s string) (Address, bool) {
	if s == "" {
		return Address{}, false
	}
	tokens := c.seps.Index.split(s)
	if len(tokens) != 2 {
		return Address{}, false
	}
	row, ok := parseIndex(tokens[0])
	if !ok {
		return Address{}, false
	}
	col, ok := parseIndex(tokens[1])
	if !ok {
		return Address{}, false
	}
	return Address{Row: row, Column: col}, true
}

// parseIndex accepts only ASCII decimal digits; strconv.Atoi alone would
// also take signs.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Stringify encodes g in canonical form: one record per present cell,
// sorted by the codec's collation and joined by the record separator.
func (c *Codec) Stringify(g Grid) string {
	if len(g) == 0 {
		return ""
	}

	records := make([]string, 0, len(g))
	for addr, value := range g {
		if !addr.Valid() {
			continue
		}
		records = append(records, c.record(addr, value))
	}
	c.collator.Sort(records)
	return strings.Join(records, c.seps.Record.Text)
}

func (c *Codec) record(addr Address, value string) string {
	var b strings.Builder
	b.Grow(len(value) + 8)
	b.WriteString(strconv.Itoa(addr.Row))
	b.WriteString(c.seps.Index.Text)
	b.WriteString(strconv.Itoa(addr.Column))
	b.WriteString(c.seps.Field.Text)
	b.WriteString(value)
	return b.String()
}

// Normalize returns the canonical form of text.
func (c *Codec) Normalize(text string) string {
	return c.Stringify(c.Parse(text))
}

// =============================================================================
// PACKAGE-LEVEL HELPERS
// =============================================================================

// Parse decodes text with the given separators and the root collation.
// Invalid separators produce an empty grid.
func Parse(text string, seps Separators) Grid {
	c, err := NewCodec(seps)
	if err != nil {
		return Grid{}
	}
	return c.Parse(text)
}

// Stringify encodes g with the given separators and the root collation.
// Invalid separators produce "".
func Stringify(g Grid, seps Separators) string {
	c, err := NewCodec(seps)
	if err != nil {
		return ""
	}
	return c.Stringify(g)
}
