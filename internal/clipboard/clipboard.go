// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clipboard adapts the system clipboard for cell cut, copy and
// paste.
//
// Clipboard failures (no clipboard utility, headless session, permission
// denied) are returned to the caller; the grid widget logs them and moves
// on without editing anything.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no system clipboard can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// System is the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard, or a Memory clipboard when the
// platform has no clipboard support (for example a Linux host without
// xclip, xsel or wl-clipboard).
func NewSystem() Clipboard {
	if clipboard.Unsupported {
		return NewMemory()
	}
	return System{}
}

// ReadText returns the clipboard contents.
func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// WriteText replaces the clipboard contents.
func (System) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(s)
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemory returns an empty Memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadText returns the last written text. An empty Memory clipboard reads
// as ErrUnavailable so paste does not clear cells.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrUnavailable
	}
	return m.text, nil
}

// WriteText stores s.
func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	m.set = true
	return nil
}
