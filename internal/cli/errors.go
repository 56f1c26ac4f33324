// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for gridinput commands.
//
// Commands always return errors; main decides how to show them and which
// exit code to use.

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/gridinput/internal/config"
	"github.com/jeranaias/gridinput/internal/storage"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
	// ExitNotFound is also returned by "get" for a cell with no value.
	ExitNotFound = 7
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError is a malformed command line.
type UsageError struct {
	Message string
	Example string
}

func (e *UsageError) Error() string {
	if e.Example != "" {
		return fmt.Sprintf("%s\nExample: %s", e.Message, e.Example)
	}
	return e.Message
}

// NotFoundError is a missing cell or document.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// NewUsageError returns a UsageError without example.
func NewUsageError(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ErrMissingArgument reports a required argument that was not given.
func ErrMissingArgument(name, usage string) error {
	return &UsageError{
		Message: fmt.Sprintf("missing argument: %s", name),
		Example: usage,
	}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode maps err to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	var notFound *NotFoundError
	var validateErrs config.ValidateErrors
	var validateErr config.ValidationError
	switch {
	case errors.As(err, &usageErr):
		return ExitUsageError
	case errors.As(err, &notFound), errors.Is(err, storage.ErrNotFound):
		return ExitNotFound
	case errors.As(err, &validateErrs), errors.As(err, &validateErr):
		return ExitConfigError
	}
	return ExitGeneralError
}
