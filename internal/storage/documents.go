// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// TYPES
// =============================================================================

// Document is one named grid value.
type Document struct {
	ID        string
	Name      string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Revision is a stored snapshot of a document's value.
type Revision struct {
	ID        int64
	Value     string
	CreatedAt time.Time
}

// =============================================================================
// DOCUMENT STORE
// =============================================================================

// DocumentStore keeps named documents and their revision history in sqlite.
// It is safe for concurrent use.
type DocumentStore struct {
	db *sql.DB

	// Each interval gets a leading revision, and throttled writes share one
	// trailing revision holding the latest value.
	interval time.Duration
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	trailing map[string]int64 // document id -> trailing revision id

	now func() time.Time
}

// OpenDocumentStore opens (creating if needed) the database at path.
// revisionInterval throttles revision snapshots; zero records every change.
func OpenDocumentStore(path string, revisionInterval time.Duration) (*DocumentStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DocumentStore{
		db:       db,
		interval: revisionInterval,
		limiters: make(map[string]*rate.Limiter),
		trailing: make(map[string]int64),
		now:      time.Now,
	}, nil
}

// Close closes the database.
func (s *DocumentStore) Close() error {
	return s.db.Close()
}

// Put stores value under name, creating the document if needed. A changed
// value is also recorded as a revision. Within one revision interval the
// first change gets its own revision and later changes overwrite a single
// trailing revision, so the latest value is always in the history.
func (s *DocumentStore) Put(ctx context.Context, name, value string) (*Document, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := s.now()
	doc, err := getDocument(ctx, tx, name)
	switch {
	case errors.Is(err, ErrNotFound):
		doc = &Document{
			ID:        uuid.New().String(),
			Name:      name,
			Value:     value,
			CreatedAt: now,
			UpdatedAt: now,
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO documents (id, name, value, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			doc.ID, doc.Name, doc.Value, now.UnixNano(), now.UnixNano())
		if err != nil {
			return nil, fmt.Errorf("failed to insert document %q: %w", name, err)
		}
	case err != nil:
		return nil, err
	case doc.Value == value:
		return doc, nil
	default:
		doc.Value = value
		doc.UpdatedAt = now
		_, err = tx.ExecContext(ctx,
			"UPDATE documents SET value = ?, updated_at = ? WHERE id = ?",
			value, now.UnixNano(), doc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update document %q: %w", name, err)
		}
	}

	leading := s.limiter(doc.ID).AllowN(now, 1)
	revID, err := s.recordRevision(ctx, tx, doc.ID, value, now, leading)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	s.mu.Lock()
	if leading {
		delete(s.trailing, doc.ID)
	} else {
		s.trailing[doc.ID] = revID
	}
	s.mu.Unlock()
	return doc, nil
}

// recordRevision inserts a revision, or for a throttled write overwrites the
// interval's trailing revision when there is one. It returns the revision id.
func (s *DocumentStore) recordRevision(ctx context.Context, tx *sql.Tx, docID, value string, now time.Time, leading bool) (int64, error) {
	if !leading {
		s.mu.Lock()
		id, ok := s.trailing[docID]
		s.mu.Unlock()
		if ok {
			res, err := tx.ExecContext(ctx,
				"UPDATE revisions SET value = ?, created_at = ? WHERE id = ? AND document_id = ?",
				value, now.UnixNano(), id, docID)
			if err != nil {
				return 0, fmt.Errorf("failed to update revision: %w", err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 1 {
				return id, nil
			}
		}
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO revisions (document_id, value, created_at) VALUES (?, ?, ?)",
		docID, value, now.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to record revision: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to record revision: %w", err)
	}
	return id, nil
}

// Get returns the named document or ErrNotFound.
func (s *DocumentStore) Get(ctx context.Context, name string) (*Document, error) {
	return getDocument(ctx, s.db, name)
}

// List returns all documents ordered by name.
func (s *DocumentStore) List(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, value, created_at, updated_at FROM documents ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var created, updated int64
		if err := rows.Scan(&d.ID, &d.Name, &d.Value, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		d.CreatedAt = time.Unix(0, created)
		d.UpdatedAt = time.Unix(0, updated)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Delete removes the named document and its revisions.
func (s *DocumentStore) Delete(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// foreign_keys is per connection; clear revisions explicitly.
	_, err = tx.ExecContext(ctx,
		"DELETE FROM revisions WHERE document_id IN (SELECT id FROM documents WHERE name = ?)", name)
	if err != nil {
		return fmt.Errorf("failed to delete revisions of %q: %w", name, err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete document %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete document %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return tx.Commit()
}

// Revisions returns up to limit revisions of the named document, newest
// first. A limit of zero or less returns all of them.
func (s *DocumentStore) Revisions(ctx context.Context, name string, limit int) ([]Revision, error) {
	doc, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, value, created_at FROM revisions WHERE document_id = ? ORDER BY id DESC LIMIT ?",
		doc.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}
	defer rows.Close()

	var revs []Revision
	for rows.Next() {
		var r Revision
		var created int64
		if err := rows.Scan(&r.ID, &r.Value, &created); err != nil {
			return nil, fmt.Errorf("failed to scan revision: %w", err)
		}
		r.CreatedAt = time.Unix(0, created)
		revs = append(revs, r)
	}
	return revs, rows.Err()
}

// Backend adapts the named document to the Backend interface.
func (s *DocumentStore) Backend(name string) Backend {
	return &documentBackend{store: s, name: name}
}

func (s *DocumentStore) limiter(id string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[id]
	if !ok {
		l = rate.NewLimiter(rate.Every(s.interval), 1)
		s.limiters[id] = l
	}
	return l
}

// =============================================================================
// HELPERS
// =============================================================================

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getDocument(ctx context.Context, q queryer, name string) (*Document, error) {
	var d Document
	var created, updated int64
	err := q.QueryRowContext(ctx,
		"SELECT id, name, value, created_at, updated_at FROM documents WHERE name = ?", name).
		Scan(&d.ID, &d.Name, &d.Value, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document %q: %w", name, err)
	}
	d.CreatedAt = time.Unix(0, created)
	d.UpdatedAt = time.Unix(0, updated)
	return &d, nil
}

// documentBackend is one document of a DocumentStore seen as a Backend.
type documentBackend struct {
	store *DocumentStore
	name  string
}

func (b *documentBackend) Load(ctx context.Context) (string, error) {
	doc, err := b.store.Get(ctx, b.name)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.Value, nil
}

func (b *documentBackend) Save(ctx context.Context, value string) error {
	_, err := b.store.Put(ctx, b.name, value)
	return err
}
