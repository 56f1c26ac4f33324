// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// FILE BACKEND TESTS
// =============================================================================

func TestFileBackend_MissingFileIsEmpty(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "grid.txt"))

	value, err := b.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "", value)
}

func TestFileBackend_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "grid.txt")
	b := NewFileBackend(path)
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, "0_0\tA\n1_0\tB"))

	value, err := b.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "0_0\tA\n1_0\tB", value)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0_0\tA\n1_0\tB", string(data))
	require.Equal(t, path, b.Path())
}

func TestFileBackend_CancelledContext(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "grid.txt"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, b.Save(ctx, "x"), context.Canceled)
	_, err := b.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// =============================================================================
// DOCUMENT STORE TESTS
// =============================================================================

func openTestStore(t *testing.T, interval time.Duration) *DocumentStore {
	t.Helper()
	s, err := OpenDocumentStore(filepath.Join(t.TempDir(), "docs", "gridinput.db"), interval)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDocumentStore_PutGet(t *testing.T) {
	s := openTestStore(t, 0)
	ctx := context.Background()

	created, err := s.Put(ctx, "budget", "0_0\t1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "budget", created.Name)

	got, err := s.Get(ctx, "budget")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "0_0\t1", got.Value)

	updated, err := s.Put(ctx, "budget", "0_0\t2")
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID, "updating keeps the document id")

	got, err = s.Get(ctx, "budget")
	require.NoError(t, err)
	require.Equal(t, "0_0\t2", got.Value)
}

func TestDocumentStore_GetMissing(t *testing.T) {
	s := openTestStore(t, 0)

	_, err := s.Get(context.Background(), "nope")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestDocumentStore_ListAndDelete(t *testing.T) {
	s := openTestStore(t, 0)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := s.Put(ctx, name, "0_0\t"+name)
		require.NoError(t, err)
	}

	docs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, "alpha", docs[0].Name)
	require.Equal(t, "zeta", docs[2].Name)

	require.NoError(t, s.Delete(ctx, "mid"))
	require.ErrorIs(t, s.Delete(ctx, "mid"), ErrNotFound)

	docs, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestDocumentStore_RevisionsEveryChange(t *testing.T) {
	s := openTestStore(t, 0)
	ctx := context.Background()

	for _, v := range []string{"0_0\ta", "0_0\tb", "0_0\tb", "0_0\tc"} {
		_, err := s.Put(ctx, "doc", v)
		require.NoError(t, err)
	}

	revs, err := s.Revisions(ctx, "doc", 0)
	require.NoError(t, err)
	require.Len(t, revs, 3, "an unchanged value is not a revision")
	require.Equal(t, "0_0\tc", revs[0].Value, "newest first")
	require.Equal(t, "0_0\ta", revs[2].Value)

	limited, err := s.Revisions(ctx, "doc", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestDocumentStore_RevisionsThrottled(t *testing.T) {
	s := openTestStore(t, time.Minute)
	ctx := context.Background()

	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	put := func(v string) {
		t.Helper()
		_, err := s.Put(ctx, "doc", v)
		require.NoError(t, err)
	}
	values := func() []string {
		t.Helper()
		revs, err := s.Revisions(ctx, "doc", 0)
		require.NoError(t, err)
		var out []string
		for _, r := range revs {
			out = append(out, r.Value)
		}
		return out
	}

	put("0_0\ta")
	clock = clock.Add(10 * time.Second)
	put("0_0\tb")
	clock = clock.Add(10 * time.Second)
	put("0_0\tc")
	require.Equal(t, []string{"0_0\tc", "0_0\ta"}, values(), "the burst ends in one trailing revision")

	clock = clock.Add(2 * time.Minute)
	put("0_0\td")
	require.Equal(t, []string{"0_0\td", "0_0\tc", "0_0\ta"}, values())

	clock = clock.Add(time.Second)
	put("0_0\te")
	require.Equal(t, []string{"0_0\te", "0_0\td", "0_0\tc", "0_0\ta"}, values())

	got, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	require.Equal(t, "0_0\te", got.Value, "the document itself is never throttled")
}

func TestDocumentStore_TrailingRevisionAfterDelete(t *testing.T) {
	s := openTestStore(t, time.Minute)
	ctx := context.Background()

	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	_, err := s.Put(ctx, "doc", "0_0\ta")
	require.NoError(t, err)
	_, err = s.Put(ctx, "doc", "0_0\tb")
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "doc"))

	_, err = s.Put(ctx, "doc", "0_0\tc")
	require.NoError(t, err)

	revs, err := s.Revisions(ctx, "doc", 0)
	require.NoError(t, err)
	require.Len(t, revs, 1)
	require.Equal(t, "0_0\tc", revs[0].Value)
}

func TestDocumentStore_DeleteRemovesRevisions(t *testing.T) {
	s := openTestStore(t, 0)
	ctx := context.Background()

	_, err := s.Put(ctx, "doc", "0_0\ta")
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "doc"))

	_, err = s.Revisions(ctx, "doc", 0)
	require.ErrorIs(t, err, ErrNotFound)

	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM revisions").Scan(&n))
	require.Zero(t, n)
}

func TestDocumentStore_Backend(t *testing.T) {
	s := openTestStore(t, 0)
	ctx := context.Background()
	b := s.Backend("grid")

	value, err := b.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "", value, "a new document loads empty")

	require.NoError(t, b.Save(ctx, "2_1\tx"))

	value, err = b.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "2_1\tx", value)
}

func TestDocumentStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridinput.db")
	ctx := context.Background()

	s, err := OpenDocumentStore(path, 0)
	require.NoError(t, err)
	_, err = s.Put(ctx, "doc", "0_0\tkept")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenDocumentStore(path, 0)
	require.NoError(t, err)
	defer s.Close()

	doc, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	require.Equal(t, "0_0\tkept", doc.Value)
}
