// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// docs_cmd.go - Documents kept in the sqlite backend.
//
// Command: docs [subcommand]
//
// Subcommands:
//   list (default)          List documents
//   rm NAME                 Delete a document and its revisions
//   history NAME [--limit N]  Show revisions, newest first
//   restore NAME ID         Make revision ID the current value
//   diff NAME ID [ID2]      Compare revision ID with ID2 or the current value
//
// Examples:
//   gridinput docs
//   gridinput docs history budget --limit 5
//   gridinput docs restore budget 12
//   gridinput docs diff budget 12

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeranaias/gridinput/internal/diff"
	"github.com/jeranaias/gridinput/internal/storage"
	"github.com/jeranaias/gridinput/internal/util"
)

// DocumentData is the JSON form of a document listing entry.
type DocumentData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cells     int       `json:"cells"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChangeData is the JSON form of one changed cell.
type ChangeData struct {
	Cell   string `json:"cell"`
	Change string `json:"change"`
	Old    string `json:"old,omitempty"`
	New    string `json:"new,omitempty"`
}

// RevisionData is the JSON form of a revision.
type RevisionData struct {
	ID        int64     `json:"id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

const defaultHistoryLimit = 20

// HandleDocs dispatches the docs subcommands.
func HandleDocs(ctx context.Context, env *Env) error {
	args := NewArgParser(env.Args.Raw)

	docs, err := openDocuments(env.Config)
	if err != nil {
		return err
	}
	defer docs.Close()

	switch sub := args.Subcommand(); sub {
	case "", "list", "ls":
		return docsList(ctx, env, docs)
	case "rm", "delete":
		name := args.Positional(1)
		if name == "" {
			return ErrMissingArgument("name", "gridinput docs rm budget")
		}
		return docsRemove(ctx, env, docs, name)
	case "history", "log":
		name := args.Positional(1)
		if name == "" {
			return ErrMissingArgument("name", "gridinput docs history budget")
		}
		return docsHistory(ctx, env, docs, name, args.FlagIntOrDefault("limit", defaultHistoryLimit))
	case "restore":
		name := args.Positional(1)
		id, err := strconv.ParseInt(args.Positional(2), 10, 64)
		if name == "" || err != nil {
			return ErrMissingArgument("name and revision id", "gridinput docs restore budget 12")
		}
		return docsRestore(ctx, env, docs, name, id)
	case "diff":
		name := args.Positional(1)
		from, err := strconv.ParseInt(args.Positional(2), 10, 64)
		if name == "" || err != nil {
			return ErrMissingArgument("name and revision id", "gridinput docs diff budget 12")
		}
		to := int64(-1)
		if args.PositionalCount() > 3 {
			if to, err = strconv.ParseInt(args.Positional(3), 10, 64); err != nil {
				return NewUsageError("invalid revision id: %s", args.Positional(3))
			}
		}
		return docsDiff(ctx, env, docs, name, from, to)
	default:
		return NewUsageError("unknown docs subcommand: %s", sub)
	}
}

func docsList(ctx context.Context, env *Env, docs *storage.DocumentStore) error {
	list, err := docs.List(ctx)
	if err != nil {
		return err
	}

	codec, err := env.Config.Codec()
	if err != nil {
		return err
	}

	data := make([]DocumentData, 0, len(list))
	for _, d := range list {
		data = append(data, DocumentData{
			ID:        d.ID,
			Name:      d.Name,
			Cells:     len(codec.Parse(d.Value)),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}

	if env.Args.JSON {
		return WriteJSON(env.Stdout, NewJSONResponse("docs list", data))
	}
	if len(data) == 0 {
		fmt.Fprintln(env.Stdout, DimStyle.Render("no documents"))
		return nil
	}

	rows := make([][]string, 0, len(data))
	for _, d := range data {
		name := d.Name
		if d.Name == env.Config.Storage.Document {
			name += " *"
		}
		rows = append(rows, []string{name, strconv.Itoa(d.Cells), d.UpdatedAt.Local().Format(time.DateTime)})
	}
	fmt.Fprintln(env.Stdout, simpleTable([]string{"NAME", "CELLS", "UPDATED"}, rows))
	return nil
}

func docsRemove(ctx context.Context, env *Env, docs *storage.DocumentStore, name string) error {
	if err := docs.Delete(ctx, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &NotFoundError{Resource: "document", ID: name}
		}
		return err
	}
	env.infof("deleted %s", name)
	return nil
}

func docsHistory(ctx context.Context, env *Env, docs *storage.DocumentStore, name string, limit int) error {
	revs, err := docs.Revisions(ctx, name, limit)
	if errors.Is(err, storage.ErrNotFound) {
		return &NotFoundError{Resource: "document", ID: name}
	}
	if err != nil {
		return err
	}

	if env.Args.JSON {
		data := make([]RevisionData, 0, len(revs))
		for _, r := range revs {
			data = append(data, RevisionData(r))
		}
		return WriteJSON(env.Stdout, NewJSONResponse("docs history", data))
	}

	rows := make([][]string, 0, len(revs))
	for _, r := range revs {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.Local().Format(time.DateTime),
			util.TruncateWidth(util.SingleLine(r.Value), 48),
		})
	}
	fmt.Fprintln(env.Stdout, simpleTable([]string{"ID", "SAVED", "VALUE"}, rows))
	return nil
}

func docsRestore(ctx context.Context, env *Env, docs *storage.DocumentStore, name string, id int64) error {
	revs, err := docs.Revisions(ctx, name, 0)
	if errors.Is(err, storage.ErrNotFound) {
		return &NotFoundError{Resource: "document", ID: name}
	}
	if err != nil {
		return err
	}

	value, ok := revisionValue(revs, id)
	if !ok {
		return &NotFoundError{Resource: "revision", ID: strconv.FormatInt(id, 10)}
	}
	if _, err := docs.Put(ctx, name, value); err != nil {
		return err
	}
	env.infof("restored %s to revision %d", name, id)
	return nil
}

// docsDiff compares revision from with revision to, or with the current
// value when to is negative.
func docsDiff(ctx context.Context, env *Env, docs *storage.DocumentStore, name string, from, to int64) error {
	doc, err := docs.Get(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return &NotFoundError{Resource: "document", ID: name}
	}
	if err != nil {
		return err
	}
	revs, err := docs.Revisions(ctx, name, 0)
	if err != nil {
		return err
	}

	oldText, ok := revisionValue(revs, from)
	if !ok {
		return &NotFoundError{Resource: "revision", ID: strconv.FormatInt(from, 10)}
	}
	newText := doc.Value
	if to >= 0 {
		if newText, ok = revisionValue(revs, to); !ok {
			return &NotFoundError{Resource: "revision", ID: strconv.FormatInt(to, 10)}
		}
	}

	codec, err := env.Config.Codec()
	if err != nil {
		return err
	}
	d := diff.Documents(codec, name, oldText, newText)

	if env.Args.JSON {
		data := make([]ChangeData, 0, len(d.Changes))
		for _, c := range d.Changes {
			data = append(data, ChangeData{Cell: c.Address.Name(), Change: c.Kind.String(), Old: c.Old, New: c.New})
		}
		return WriteJSON(env.Stdout, NewJSONResponse("docs diff", data))
	}

	if !d.Empty() {
		out := d.Format(codec)
		if env.colorOutput() {
			out = colorDiff(out)
		}
		fmt.Fprint(env.Stdout, out)
	}
	env.infof("%s", d.Summary())
	return nil
}

func revisionValue(revs []storage.Revision, id int64) (string, bool) {
	for _, r := range revs {
		if r.ID == id {
			return r.Value, true
		}
	}
	return "", false
}

func colorDiff(out string) string {
	lines := strings.SplitAfter(out, "\n")
	for i, line := range lines {
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			text = DimStyle.Render(text)
		case strings.HasPrefix(line, "+"):
			text = SuccessStyle.Render(text)
		case strings.HasPrefix(line, "-"):
			text = ErrorStyle.Render(text)
		}
		if strings.HasSuffix(line, "\n") {
			text += "\n"
		}
		lines[i] = text
	}
	return strings.Join(lines, "")
}

func simpleTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
