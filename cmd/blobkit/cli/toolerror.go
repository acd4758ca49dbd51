// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/blobkit/lib/fault"
)

// ErrorCategory classifies command errors so that scripts can tell bad
// input from missing data from real failures by exit code alone.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required arguments, unparseable values, a malformed
	// payload. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// an unknown blob reference or a missing file.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryCancelled indicates the user dismissed an interactive
	// prompt or selected nothing.
	CategoryCancelled ErrorCategory = "cancelled"

	// CategoryInternal indicates an unexpected error: I/O failures,
	// store corruption, bugs.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. It wraps
// an inner error, preserving the full chain for errors.Is and
// errors.As. Use the category-specific constructors rather than
// constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is optional recovery guidance appended to the message.
	Hint string
}

// Error returns the underlying message, followed by the hint when set.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// ExitCode maps the category to a process exit code: 2 for
// validation, 3 for not found, 4 for cancelled, 1 otherwise.
func (e *ToolError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 3
	case CategoryCancelled:
		return 4
	default:
		return 1
	}
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Cancelled creates a cancelled error: the user backed out.
func Cancelled(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryCancelled, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// FromFault categorizes err by its fault kind. Input-shaped kinds
// (decode, format, encoding, algorithm, JSON syntax) become
// validation errors and selection outcomes become cancelled errors.
// A nil err stays nil and an existing ToolError is returned as is.
func FromFault(err error) error {
	if err == nil {
		return nil
	}
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return err
	}
	switch fault.KindOf(err) {
	case fault.KindDecode, fault.KindFormat, fault.KindUnsupportedEncoding,
		fault.KindUnsupportedAlgorithm, fault.KindJSONSyntax, fault.KindInvalidElement:
		return &ToolError{Category: CategoryValidation, Err: err}
	case fault.KindSelectionCancelled, fault.KindNoFileSelected:
		return &ToolError{Category: CategoryCancelled, Err: err}
	default:
		return &ToolError{Category: CategoryInternal, Err: err}
	}
}
