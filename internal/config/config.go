// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/jeranaias/gridinput/internal/grid"
	"github.com/jeranaias/gridinput/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete gridinput configuration.
type Config struct {
	// Version of the configuration format.
	Version string `toml:"version" json:"version"`

	Grid    GridConfig    `toml:"grid" json:"grid"`
	Format  FormatConfig  `toml:"format" json:"format"`
	Storage StorageConfig `toml:"storage" json:"storage"`
	Watch   WatchConfig   `toml:"watch" json:"watch"`
	UI      UIConfig      `toml:"ui" json:"ui"`
}

// GridConfig describes the editable grid.
type GridConfig struct {
	// Rows and Columns bound the rendered grid. Stored cells outside the
	// bounds are kept in the value but not shown.
	Rows    int `toml:"rows" json:"rows"`
	Columns int `toml:"columns" json:"columns"`

	// Options is the list offered in selecting mode. Empty means free text only.
	Options []string `toml:"options" json:"options"`

	// AllowFreeText lets a cell switch into text entry.
	AllowFreeText bool `toml:"allow_free_text" json:"allow_free_text"`

	// CellWidth is the display width of one cell in terminal columns.
	CellWidth int `toml:"cell_width" json:"cell_width"`
}

// FormatConfig describes the canonical text format.
type FormatConfig struct {
	RecordSeparator string `toml:"record_separator" json:"record_separator"`
	FieldSeparator  string `toml:"field_separator" json:"field_separator"`
	IndexSeparator  string `toml:"index_separator" json:"index_separator"`

	// RecordPattern, when set, is a regular expression used to split records
	// on input. RecordSeparator is still used on output.
	RecordPattern string `toml:"record_pattern" json:"record_pattern"`

	// Language is a BCP 47 tag selecting the collation used to order records.
	Language string `toml:"language" json:"language"`
}

// StorageConfig selects where the document lives.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `toml:"backend" json:"backend"`

	// Path is the text document used by the file backend.
	Path string `toml:"path" json:"path"`

	// Database is the sqlite database used by the sqlite backend.
	Database string `toml:"database" json:"database"`

	// Document is the document name inside the database.
	Document string `toml:"document" json:"document"`

	// RevisionIntervalSecs is the minimum spacing between stored revisions.
	RevisionIntervalSecs int `toml:"revision_interval_secs" json:"revision_interval_secs"`
}

// WatchConfig controls reloading the document when it changes on disk.
type WatchConfig struct {
	Enabled    bool `toml:"enabled" json:"enabled"`
	DebounceMs int  `toml:"debounce_ms" json:"debounce_ms"`
}

// UIConfig contains terminal UI preferences.
type UIConfig struct {
	// Theme is "auto", "dark" or "light".
	Theme string `toml:"theme" json:"theme"`

	// ShowValue shows the canonical value pane under the grid.
	ShowValue bool `toml:"show_value" json:"show_value"`

	// Mouse enables click and alt-click on cells.
	Mouse bool `toml:"mouse" json:"mouse"`
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1",

		Grid: GridConfig{
			Rows:          4,
			Columns:       3,
			Options:       nil,
			AllowFreeText: true,
			CellWidth:     12,
		},

		Format: FormatConfig{
			RecordSeparator: grid.DefaultRecordSeparator,
			FieldSeparator:  grid.DefaultFieldSeparator,
			IndexSeparator:  grid.DefaultIndexSeparator,
			RecordPattern:   "",
			Language:        "und",
		},

		Storage: StorageConfig{
			Backend:              BackendFile,
			Path:                 "",
			Database:             "",
			Document:             "default",
			RevisionIntervalSecs: 30,
		},

		Watch: WatchConfig{
			Enabled:    true,
			DebounceMs: 200,
		},

		UI: UIConfig{
			Theme:     "auto",
			ShowValue: true,
			Mouse:     true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the gridinput configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".gridinput"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the file the TUI logs to.
func LogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gridinput.log"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// DocumentPath returns the file backend's document path, defaulting to
// grid.txt in the config directory.
func (c *Config) DocumentPath() (string, error) {
	if c.Storage.Path != "" {
		return ExpandHome(c.Storage.Path), nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "grid.txt"), nil
}

// DatabasePath returns the sqlite database path, defaulting to gridinput.db
// in the config directory.
func (c *Config) DatabasePath() (string, error) {
	if c.Storage.Database != "" {
		return ExpandHome(c.Storage.Database), nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gridinput.db"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	var loadErr error

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			cfg := Default()
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			cfg := Default()
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	cfg, err := finish(Default())
	if err != nil {
		return nil, err
	}
	// Defaults, with any load error for informational purposes.
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// finish applies environment overrides, migration, defaults and validation.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Migrate(); err != nil {
		return nil, fmt.Errorf("config migration failed: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Keys absent from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf strings.Builder
	buf.WriteString("# gridinput configuration file\n")
	buf.WriteString("# Generated by gridinput - edit with care\n")
	buf.WriteString("\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(path, []byte(buf.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// maxDimension caps rows and columns to keep rendering bounded.
const maxDimension = 1000

// Validate validates the configuration and returns ValidateErrors when
// anything is wrong.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// ==========================================================================
	// Grid
	// ==========================================================================

	if c.Grid.Rows < 1 || c.Grid.Rows > maxDimension {
		errs = append(errs, ValidationError{
			Field:   "grid.rows",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", maxDimension, c.Grid.Rows),
		})
	}
	if c.Grid.Columns < 1 || c.Grid.Columns > maxDimension {
		errs = append(errs, ValidationError{
			Field:   "grid.columns",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", maxDimension, c.Grid.Columns),
		})
	}
	if c.Grid.CellWidth < 3 {
		errs = append(errs, ValidationError{
			Field:   "grid.cell_width",
			Message: fmt.Sprintf("must be at least 3, got %d", c.Grid.CellWidth),
		})
	}
	if len(c.Grid.Options) == 0 && !c.Grid.AllowFreeText {
		errs = append(errs, ValidationError{
			Field:   "grid.options",
			Message: "no options and free text disabled: cells could never hold a value",
		})
	}

	// ==========================================================================
	// Format
	// ==========================================================================

	seps, err := c.Format.separators()
	if err != nil {
		errs = append(errs, ValidationError{Field: "format.record_pattern", Message: err.Error()})
	} else if err := seps.Validate(); err != nil {
		errs = append(errs, ValidationError{Field: "format", Message: err.Error()})
	}
	if _, err := language.Parse(c.Format.Language); err != nil {
		errs = append(errs, ValidationError{
			Field:   "format.language",
			Message: fmt.Sprintf("invalid language tag '%s': %v", c.Format.Language, err),
		})
	}

	// ==========================================================================
	// Storage
	// ==========================================================================

	switch c.Storage.Backend {
	case BackendFile:
	case BackendSQLite:
		if c.Storage.Document == "" {
			errs = append(errs, ValidationError{
				Field:   "storage.document",
				Message: "required for the sqlite backend",
			})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "storage.backend",
			Message: fmt.Sprintf("invalid backend '%s', must be one of: file, sqlite", c.Storage.Backend),
		})
	}
	if c.Storage.RevisionIntervalSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "storage.revision_interval_secs",
			Message: "must not be negative",
		})
	}

	// ==========================================================================
	// Watch / UI
	// ==========================================================================

	if c.Watch.DebounceMs < 0 || c.Watch.DebounceMs > 60000 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce_ms",
			Message: fmt.Sprintf("must be between 0 and 60000, got %d", c.Watch.DebounceMs),
		})
	}

	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[c.UI.Theme] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero-valued fields that have no meaningful zero.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Grid.Rows == 0 {
		c.Grid.Rows = defaults.Grid.Rows
	}
	if c.Grid.Columns == 0 {
		c.Grid.Columns = defaults.Grid.Columns
	}
	if c.Grid.CellWidth == 0 {
		c.Grid.CellWidth = defaults.Grid.CellWidth
	}
	if c.Format.RecordSeparator == "" {
		c.Format.RecordSeparator = defaults.Format.RecordSeparator
	}
	if c.Format.FieldSeparator == "" {
		c.Format.FieldSeparator = defaults.Format.FieldSeparator
	}
	if c.Format.IndexSeparator == "" {
		c.Format.IndexSeparator = defaults.Format.IndexSeparator
	}
	if c.Format.Language == "" {
		c.Format.Language = defaults.Format.Language
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Document == "" {
		c.Storage.Document = defaults.Storage.Document
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// Migrate normalizes spellings accepted by earlier releases.
func (c *Config) Migrate() error {
	switch strings.ToLower(c.Storage.Backend) {
	case "text", "txt", "file":
		c.Storage.Backend = BackendFile
	case "sqlite3", "db", "sqlite":
		c.Storage.Backend = BackendSQLite
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	return nil
}

// =============================================================================
// CODEC
// =============================================================================

func (f FormatConfig) separators() (grid.Separators, error) {
	seps := grid.Separators{
		Record: grid.Literal(f.RecordSeparator),
		Field:  grid.Literal(f.FieldSeparator),
		Index:  grid.Literal(f.IndexSeparator),
	}
	if f.RecordPattern != "" {
		rec, err := grid.Pattern(f.RecordPattern, f.RecordSeparator)
		if err != nil {
			return grid.Separators{}, err
		}
		seps.Record = rec
	}
	return seps, nil
}

// Codec builds the grid codec described by the format section.
func (c *Config) Codec() (*grid.Codec, error) {
	seps, err := c.Format.separators()
	if err != nil {
		return nil, err
	}
	tag, err := language.Parse(c.Format.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid language tag '%s': %w", c.Format.Language, err)
	}
	return grid.NewCodec(seps, grid.WithLanguage(tag))
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - GRIDINPUT_ROWS, GRIDINPUT_COLUMNS: override grid dimensions
//   - GRIDINPUT_OPTIONS: comma-separated option list
//   - GRIDINPUT_FREE_TEXT: "1"/"true" enables free text entry
//   - GRIDINPUT_LANGUAGE: overrides format.language
//   - GRIDINPUT_BACKEND: overrides storage.backend
//   - GRIDINPUT_PATH: overrides storage.path
//   - GRIDINPUT_DATABASE: overrides storage.database
//   - GRIDINPUT_DOCUMENT: overrides storage.document
//   - GRIDINPUT_WATCH: "1"/"true" enables the file watcher
//   - GRIDINPUT_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GRIDINPUT_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Grid.Rows = n
		}
	}
	if v := os.Getenv("GRIDINPUT_COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Grid.Columns = n
		}
	}
	if v, ok := os.LookupEnv("GRIDINPUT_OPTIONS"); ok {
		c.Grid.Options = splitList(v)
	}
	if v := os.Getenv("GRIDINPUT_FREE_TEXT"); v != "" {
		c.Grid.AllowFreeText = parseBool(v)
	}
	if v := os.Getenv("GRIDINPUT_LANGUAGE"); v != "" {
		c.Format.Language = v
	}
	if v := os.Getenv("GRIDINPUT_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("GRIDINPUT_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("GRIDINPUT_DATABASE"); v != "" {
		c.Storage.Database = v
	}
	if v := os.Getenv("GRIDINPUT_DOCUMENT"); v != "" {
		c.Storage.Document = v
	}
	if v := os.Getenv("GRIDINPUT_WATCH"); v != "" {
		c.Watch.Enabled = parseBool(v)
	}
	if v := os.Getenv("GRIDINPUT_THEME"); v != "" {
		c.UI.Theme = v
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes"
}

// splitList splits a comma-separated list, trimming blanks and dropping empties.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "grid.rows").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "grid.rows").
// String values are converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			field.SetBool(parseBool(strVal))
			return nil
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				field.Set(reflect.ValueOf(splitList(strVal)))
				return nil
			}
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"grid.rows",
		"grid.columns",
		"grid.options",
		"grid.allow_free_text",
		"grid.cell_width",
		"format.record_separator",
		"format.field_separator",
		"format.index_separator",
		"format.record_pattern",
		"format.language",
		"storage.backend",
		"storage.path",
		"storage.database",
		"storage.document",
		"storage.revision_interval_secs",
		"watch.enabled",
		"watch.debounce_ms",
		"ui.theme",
		"ui.show_value",
		"ui.mouse",
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Grid.Options != nil {
		clone.Grid.Options = append([]string(nil), c.Grid.Options...)
	}
	return &clone
}

// String returns the configuration as indented JSON for display.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
