// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// highlight.go - Colored document output for "cat" on a terminal.

package cli

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/gridinput/internal/grid"
)

// documentLexer tokenizes canonical documents written with seps: addresses
// as numbers, separators as punctuation and values as strings.
func documentLexer(seps grid.Separators) (chroma.Lexer, error) {
	record := regexp.QuoteMeta(seps.Record.Text)
	field := regexp.QuoteMeta(seps.Field.Text)
	index := regexp.QuoteMeta(seps.Index.Text)

	lexer, err := chroma.NewLexer(&chroma.Config{Name: "gridinput"}, func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `(\d+)(` + index + `)(\d+)`, Type: chroma.ByGroups(chroma.LiteralNumber, chroma.Punctuation, chroma.LiteralNumber)},
				{Pattern: field, Type: chroma.Punctuation, Mutator: chroma.Push("value")},
				{Pattern: record, Type: chroma.Text},
				{Pattern: `[\s\S]`, Type: chroma.Comment},
			},
			"value": {
				{Pattern: record, Type: chroma.Text, Mutator: chroma.Pop(1)},
				{Pattern: `(?:(?!` + record + `)[\s\S])+`, Type: chroma.LiteralString},
			},
		}
	})
	if err != nil {
		return nil, err
	}
	return chroma.Coalesce(lexer), nil
}

// highlightDocument colors value for a 256-color terminal. On any failure
// the plain value is returned.
func highlightDocument(value string, seps grid.Separators) string {
	lexer, err := documentLexer(seps)
	if err != nil {
		return value
	}

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, value)
	if err != nil {
		return value
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return value
	}
	return buf.String()
}
