// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - View and modify configuration.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)     Display every key
//   get KEY            Print one key
//   set KEY VALUE      Change a key and save the config file
//   path               Print the config file path
//
// Examples:
//   gridinput config set grid.rows 10
//   gridinput config set grid.options "Yes,No,Maybe"
//   gridinput config set storage.backend sqlite
//   gridinput config get format.field_separator

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/jeranaias/gridinput/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(_ context.Context, env *Env) error {
	args := NewArgParser(env.Args.Raw)

	switch sub := args.Subcommand(); sub {
	case "", "show", "list":
		return configShow(env)
	case "get":
		key := args.Positional(1)
		if key == "" {
			return ErrMissingArgument("key", "gridinput config get grid.rows")
		}
		return configGet(env, key)
	case "set":
		key := args.Positional(1)
		if key == "" || args.PositionalCount() < 3 {
			return ErrMissingArgument("key and value", "gridinput config set grid.rows 10")
		}
		return configSet(env, key, strings.Join(args.PositionalFrom(2), " "))
	case "path":
		path, err := configPath(env)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, path)
		return nil
	default:
		return NewUsageError("unknown config subcommand: %s", sub)
	}
}

func configShow(env *Env) error {
	if env.Args.JSON {
		return WriteJSON(env.Stdout, NewJSONResponse("config show", env.Config))
	}

	fmt.Fprintln(env.Stdout, TitleStyle.Render("gridinput configuration"))
	for _, key := range config.GetAllKeys() {
		value, err := env.Config.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, LabelStyle.Render(key)+ValueStyle.Render(formatConfigValue(value)))
	}
	return nil
}

func configGet(env *Env, key string) error {
	value, err := env.Config.Get(key)
	if err != nil {
		return &UsageError{Message: err.Error(), Example: "gridinput config show"}
	}
	if env.Args.JSON {
		return WriteJSON(env.Stdout, NewJSONResponse("config get", map[string]any{key: value}))
	}
	fmt.Fprintln(env.Stdout, formatConfigValue(value))
	return nil
}

// configSet changes one key in the config file. The file is read without
// environment overrides so they are not persisted.
func configSet(env *Env, key, value string) error {
	path, err := configPath(env)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if err := loadFileOver(cfg, path); err != nil {
		return err
	}

	if err := cfg.Set(key, unquoteValue(value)); err != nil {
		return &UsageError{Message: err.Error(), Example: "gridinput config set grid.rows 10"}
	}
	if err := cfg.Migrate(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if strings.HasSuffix(path, ".json") {
		err = config.SaveJSON(cfg, path)
	} else {
		err = config.SaveTOML(cfg, path)
	}
	if err != nil {
		return err
	}
	env.infof("%s = %s", key, formatConfigValue(mustGet(cfg, key)))
	return nil
}

// configPath returns the file "config set" writes: --config when given,
// otherwise the TOML file in the config directory.
func configPath(env *Env) (string, error) {
	if env.Args.ConfigPath != "" {
		return config.ExpandHome(env.Args.ConfigPath), nil
	}
	return config.ConfigPathTOML()
}

func loadFileOver(cfg *config.Config, path string) error {
	var err error
	if strings.HasSuffix(path, ".json") {
		err = config.LoadJSON(cfg, path)
	} else {
		err = config.LoadTOML(cfg, path)
	}
	if err != nil && !isNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

// unquoteValue turns a Go-quoted argument such as "\t" into its text so
// control-character separators can be set from a shell.
func unquoteValue(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		if s, err := strconv.Unquote(v); err == nil {
			return s
		}
	}
	return v
}

func formatConfigValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return `""`
		}
		if strings.ContainsAny(val, "\t\n\r") {
			return strconv.Quote(val)
		}
		return val
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(val)
	}
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func mustGet(cfg *config.Config, key string) any {
	v, _ := cfg.Get(key)
	return v
}
