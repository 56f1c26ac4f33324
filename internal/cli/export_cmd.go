// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Export the document to other formats.
//
// Command: export [FORMAT] [flags]
//
// Formats: markdown (default), html, json, csv
//
// Flags:
//   --out DIR       Write a timestamped file into DIR instead of stdout
//   --open          Open the written file
//   --theme NAME    HTML theme: dark or light
//   --no-meta       Leave out title and export time
//
// Examples:
//   gridinput export
//   gridinput export csv > grid.csv
//   gridinput export html --out ~/exports --open

package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/jeranaias/gridinput/internal/config"
	"github.com/jeranaias/gridinput/internal/export"
)

// HandleExport writes the document in another format.
func HandleExport(ctx context.Context, env *Env) error {
	args := NewArgParser(env.Args.Raw, "open", "no-meta")

	opts := export.DefaultOptions()
	opts.IncludeMetadata = !args.BoolFlag("no-meta")
	opts.OpenAfterExport = args.BoolFlag("open")
	opts.Theme = args.FlagOrDefault("theme", themeForExport(env.Config.UI.Theme))

	exporter, err := export.New(args.FlagOrDefault("format", firstNonEmpty(args.Subcommand(), "markdown")), opts)
	if err != nil {
		return &UsageError{Message: err.Error(), Example: "gridinput export html --out ."}
	}

	s, err := OpenSession(ctx, env.Config)
	if err != nil {
		return err
	}
	defer s.Close()

	table := export.NewTable(documentName(env.Config, s), s.Store.State(), env.Config.Grid.Rows, env.Config.Grid.Columns)

	out := args.Flag("out")
	if out == "" {
		data, err := exporter.Export(table)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	opts.OutputDir = config.ExpandHome(out)
	path, err := export.ExportToFile(table, exporter, opts)
	if errors.Is(err, export.ErrOpenFailed) {
		env.infof("%s", WarningStyle.Render("warning: "+err.Error()))
		err = nil
	}
	if err != nil {
		return err
	}
	env.infof("exported %s", path)
	return nil
}

// documentName is the sqlite document name or the file's base name.
func documentName(cfg *config.Config, s *Session) string {
	if s.Path == "" {
		return cfg.Storage.Document
	}
	return strings.TrimSuffix(filepath.Base(s.Path), filepath.Ext(s.Path))
}

func themeForExport(theme string) string {
	if theme == "light" {
		return "light"
	}
	return "dark"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
