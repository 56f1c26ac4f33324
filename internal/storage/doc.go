// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists grid documents.
//
// A document is the canonical text of one grid. It can live in a plain text
// file or in a sqlite database that also keeps a revision history.
//
// # Key Types
//
//   - Backend: Load and Save one document
//   - FileBackend: Document stored in a text file, written atomically
//   - DocumentStore: Named documents with revisions in sqlite
//
// # Usage
//
//	store, err := storage.OpenDocumentStore(path, 30*time.Second)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	backend := store.Backend("budget")
//	text, err := backend.Load(ctx)
package storage
