// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session.go - Opening the configured document for a command.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jeranaias/gridinput/internal/config"
	"github.com/jeranaias/gridinput/internal/grid"
	"github.com/jeranaias/gridinput/internal/storage"
)

// =============================================================================
// ENVIRONMENT
// =============================================================================

// Env is what every command handler runs against.
type Env struct {
	Config *config.Config
	Args   Args

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEnv returns an Env on the process's standard streams with args applied
// to cfg.
func NewEnv(cfg *config.Config, args Args) *Env {
	ApplyArgs(cfg, args)
	return &Env{
		Config: cfg,
		Args:   args,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ApplyArgs lets global flags override the storage settings of cfg.
func ApplyArgs(cfg *config.Config, args Args) {
	if args.Backend != "" {
		cfg.Storage.Backend = args.Backend
	}
	if args.File != "" {
		cfg.Storage.Backend = config.BackendFile
		cfg.Storage.Path = args.File
	}
	if args.Document != "" {
		if args.Backend == "" && args.File == "" {
			cfg.Storage.Backend = config.BackendSQLite
		}
		cfg.Storage.Document = args.Document
	}
	// Normalizes backend aliases given on the command line.
	_ = cfg.Migrate()
}

// infof prints an informational line to stderr unless --quiet.
func (e *Env) infof(format string, args ...any) {
	if e.Args.Quiet {
		return
	}
	fmt.Fprintf(e.Stderr, format+"\n", args...)
}

// colorOutput reports whether Stdout is the process's terminal with color
// enabled.
func (e *Env) colorOutput() bool {
	return e.Stdout == os.Stdout && IsStdoutTTY() && ColorsEnabled()
}

// =============================================================================
// SESSION
// =============================================================================

// Session is one opened document: its store, the backend it persists to,
// and, for the sqlite backend, the database behind it.
type Session struct {
	Store   *grid.Store
	Backend storage.Backend

	// Path is the document file for the file backend and "" otherwise.
	Path string

	docs *storage.DocumentStore
}

// OpenSession loads the document selected by cfg.
func OpenSession(ctx context.Context, cfg *config.Config) (*Session, error) {
	codec, err := cfg.Codec()
	if err != nil {
		return nil, err
	}

	s := &Session{}
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		docs, err := openDocuments(cfg)
		if err != nil {
			return nil, err
		}
		s.docs = docs
		s.Backend = docs.Backend(cfg.Storage.Document)
	default:
		path, err := cfg.DocumentPath()
		if err != nil {
			return nil, err
		}
		s.Path = path
		s.Backend = storage.NewFileBackend(path)
	}

	initial, err := s.Backend.Load(ctx)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	s.Store = grid.NewStore(initial, codec, nil)
	return s, nil
}

// openDocuments opens the sqlite document database named by cfg.
func openDocuments(cfg *config.Config) (*storage.DocumentStore, error) {
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	interval := time.Duration(cfg.Storage.RevisionIntervalSecs) * time.Second
	return storage.OpenDocumentStore(path, interval)
}

// Save writes the current canonical value through the backend.
func (s *Session) Save(ctx context.Context) error {
	if err := s.Backend.Save(ctx, s.Store.Value()); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Close releases the database, if any.
func (s *Session) Close() error {
	if s.docs != nil {
		return s.docs.Close()
	}
	return nil
}
