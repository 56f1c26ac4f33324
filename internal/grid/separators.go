// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Default separator text.
const (
	DefaultRecordSeparator = "\n"
	DefaultFieldSeparator  = "\t"
	DefaultIndexSeparator  = "_"
)

var (
	// ErrEmptySeparator is returned when a separator has no text.
	ErrEmptySeparator = errors.New("separator is empty")
	// ErrDigitSeparator is returned when a separator contains a decimal digit,
	// which would make addresses ambiguous.
	ErrDigitSeparator = errors.New("separator contains a digit")
	// ErrDuplicateSeparator is returned when two separators share the same text.
	ErrDuplicateSeparator = errors.New("separators must be distinct")
	// ErrSeparatorInValue is reported by CheckValue.
	ErrSeparatorInValue = errors.New("value contains a separator")
)

// Separator splits and joins one level of the document.
//
// Text is always used when joining. When Pattern is set it is used instead
// of Text for splitting, which lets a document accept several spellings of
// the same separator (for example "\r?\n" for records).
type Separator struct {
	Text    string
	Pattern *regexp.Regexp
}

// Literal returns a separator that splits and joins on s.
func Literal(s string) Separator {
	return Separator{Text: s}
}

// Pattern returns a separator that splits on the regular expression expr and
// joins with text.
func Pattern(expr, text string) (Separator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Separator{}, fmt.Errorf("invalid separator pattern %q: %w", expr, err)
	}
	return Separator{Text: text, Pattern: re}, nil
}

func (s Separator) split(v string) []string {
	if s.Pattern != nil {
		return s.Pattern.Split(v, -1)
	}
	return strings.Split(v, s.Text)
}

func (s Separator) String() string {
	if s.Pattern != nil {
		return s.Pattern.String()
	}
	return s.Text
}

// Separators holds the three separators of a document. A Separators value
// is fixed for the lifetime of a document.
type Separators struct {
	Record Separator
	Field  Separator
	Index  Separator
}

// DefaultSeparators returns newline, tab and underscore.
func DefaultSeparators() Separators {
	return Separators{
		Record: Literal(DefaultRecordSeparator),
		Field:  Literal(DefaultFieldSeparator),
		Index:  Literal(DefaultIndexSeparator),
	}
}

// Validate checks that the separators can encode every address without
// collisions: each must be non-empty, free of decimal digits, and distinct
// from the others.
func (s Separators) Validate() error {
	named := []struct {
		name string
		sep  Separator
	}{
		{"record", s.Record},
		{"field", s.Field},
		{"index", s.Index},
	}
	for _, n := range named {
		if n.sep.Text == "" {
			return fmt.Errorf("%s %w", n.name, ErrEmptySeparator)
		}
		if strings.ContainsAny(n.sep.Text, "0123456789") {
			return fmt.Errorf("%s %w", n.name, ErrDigitSeparator)
		}
	}
	if s.Record.Text == s.Field.Text || s.Record.Text == s.Index.Text || s.Field.Text == s.Index.Text {
		return ErrDuplicateSeparator
	}
	return nil
}

// CheckValue reports whether value contains separator text that would
// corrupt the document on the next Parse. The value is still stored as-is;
// the format has no escaping.
func (s Separators) CheckValue(value string) error {
	if strings.Contains(value, s.Record.Text) || (s.Record.Pattern != nil && s.Record.Pattern.MatchString(value)) {
		return fmt.Errorf("%w: record separator %q", ErrSeparatorInValue, s.Record.String())
	}
	if strings.Contains(value, s.Field.Text) || (s.Field.Pattern != nil && s.Field.Pattern.MatchString(value)) {
		return fmt.Errorf("%w: field separator %q", ErrSeparatorInValue, s.Field.String())
	}
	return nil
}
