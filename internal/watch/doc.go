// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch reports changes made to a document file by other programs.
//
// The file's directory is watched rather than the file itself, so editors
// and atomic writers that replace the file by rename are still seen. Bursts
// of events are debounced and each settled change is reported once with the
// file's content.
//
// # Usage
//
//	w, err := watch.New(path, 200*time.Millisecond, func(content string) {
//	    program.Send(gridview.ExternalValueMsg{Value: content})
//	})
//	if err != nil {
//	    return err
//	}
//	if err := w.Start(ctx); err != nil {
//	    return err
//	}
//	defer w.Close()
package watch
