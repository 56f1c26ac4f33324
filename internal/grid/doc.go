// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package grid implements the sparse cell grid behind gridinput and its
// flat text encoding.
//
// A document is a single string made of records. Each record holds a cell
// address and a value:
//
//	0_0<TAB>1,One
//	3_1<TAB>2,Two
//
// Records are joined by the record separator, the address and the value by
// the field separator, and row and column by the index separator.
//
// # Key Types
//
//   - Address: a (row, column) pair of non-negative integers
//   - Grid: sparse mapping from Address to cell text
//   - Separators: the three separators of a document
//   - Codec: Parse and Stringify bound to one set of separators and a collation
//   - State: immutable grid + canonical value
//   - Store: single owner of the current State; the only mutation entry point
//
// # Canonical Form
//
// Stringify sorts the serialized records with a locale-aware collation
// (uppercase before lowercase for otherwise equal text), so two equal grids
// always produce byte-identical output and a canonical string is a fixed
// point of Parse followed by Stringify.
//
// # Usage
//
//	codec := grid.DefaultCodec()
//	store := grid.NewStore("0_0\t1,One", codec, func(v string) {
//	    fmt.Println(v)
//	})
//	store.Mount()
//	store.ChangeCell(3, 1, "2,Two")
package grid
