// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for gridinput.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - GridConfig: Grid dimensions, option list and free text switch
//   - FormatConfig: Separators and collation language of the canonical text
//   - StorageConfig: File or sqlite document storage
//   - ValidateErrors: Every problem found by Validate
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (GRIDINPUT_*)
//   - ~/.gridinput/config.toml
//   - ~/.gridinput/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Build the codec for the configured format:
//
//	codec, err := cfg.Codec()
package config
