// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadName is returned by ParseName for text that is not a cell name.
var ErrBadName = errors.New("invalid cell name")

// ColumnName returns the spreadsheet letters of column c: A..Z, AA, AB...
func ColumnName(c int) string {
	if c < 0 {
		return ""
	}
	var b []byte
	for c >= 0 {
		b = append([]byte{byte('A' + c%26)}, b...)
		c = c/26 - 1
	}
	return string(b)
}

// Name returns the spreadsheet name of a, such as "B3" for At(2, 1). Rows
// are numbered from one.
func (a Address) Name() string {
	return ColumnName(a.Column) + strconv.Itoa(a.Row+1)
}

// ParseName is the inverse of Address.Name. Letters are case-insensitive.
func ParseName(s string) (Address, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	i := 0
	column := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		column = column*26 + int(s[i]-'A') + 1
		if column > 1<<24 {
			return Address{}, fmt.Errorf("%w: %q", ErrBadName, s)
		}
		i++
	}
	if i == 0 || i == len(s) {
		return Address{}, fmt.Errorf("%w: %q", ErrBadName, s)
	}

	row, err := strconv.Atoi(s[i:])
	if err != nil || row < 1 || s[i] == '+' {
		return Address{}, fmt.Errorf("%w: %q", ErrBadName, s)
	}
	return At(row-1, column-1), nil
}
