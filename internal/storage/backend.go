// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jeranaias/gridinput/internal/util"
)

// ErrNotFound is returned when a named document does not exist.
var ErrNotFound = errors.New("document not found")

// Backend loads and saves the canonical value of one document. Loading a
// document that was never saved returns "" and no error.
type Backend interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, value string) error
}

// =============================================================================
// FILE BACKEND
// =============================================================================

// FileBackend keeps a document in a text file.
type FileBackend struct {
	path string
	perm os.FileMode
}

// NewFileBackend returns a backend for the file at path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path, perm: 0644}
}

// Path returns the document file path.
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads the document. A missing file is an empty document.
func (b *FileBackend) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", b.path, err)
	}
	return string(data), nil
}

// Save replaces the document.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func (b *FileBackend) Save(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := util.AtomicWriteFile(b.path, []byte(value), b.perm); err != nil {
		return fmt.Errorf("failed to save %s: %w", b.path, err)
	}
	return nil
}
