// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fault defines the error kinds shared by the blobkit
// libraries. Every failure surfaced by lib/payload, lib/digest, and
// lib/upload carries exactly one [Kind], so callers can branch on the
// kind with errors.Is without parsing message text:
//
//	if errors.Is(err, fault.KindSelectionCancelled) {
//	    return nil // user closed the picker
//	}
//
// This package has no blobkit dependencies.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Kind implements error so that a bare
// kind can be the target of errors.Is.
type Kind string

const (
	// KindDecode: encoded text (Base64) is syntactically malformed.
	KindDecode Kind = "decode"

	// KindFormat: a structured string such as a Data URL does not
	// have the expected shape.
	KindFormat Kind = "format"

	// KindUnsupportedEncoding: the format was recognized but uses a
	// sub-variant that is not handled (a Data URL without ;base64).
	KindUnsupportedEncoding Kind = "unsupported_encoding"

	// KindUnsupportedAlgorithm: the digest algorithm is not one of
	// SHA-256, SHA-1, SHA-384, SHA-512.
	KindUnsupportedAlgorithm Kind = "unsupported_algorithm"

	// KindEnvironment: a required host capability (the digest
	// primitive) is absent.
	KindEnvironment Kind = "environment"

	// KindRead: the underlying read or character decoding failed.
	KindRead Kind = "read"

	// KindJSONSyntax: the bytes were read but are not valid JSON.
	KindJSONSyntax Kind = "json_syntax"

	// KindInvalidElement: the element passed to an attach call is nil
	// or of the wrong kind.
	KindInvalidElement Kind = "invalid_element"

	// KindSelectionCancelled: the user dismissed the file picker.
	KindSelectionCancelled Kind = "selection_cancelled"

	// KindNoFileSelected: the picker reported a selection with no
	// files in it.
	KindNoFileSelected Kind = "no_file_selected"
)

// Error returns the kind name.
func (k Kind) Error() string { return string(k) }

// Error is a kind-tagged failure from a named operation.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Op names the operation that failed (e.g., "payload.ParseDataURL").
	Op string

	// Err is the underlying cause with the human-readable detail.
	Err error
}

// Error formats as "op: detail".
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + string(e.Kind)
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is this error's Kind.
func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

// New creates an Error with a formatted message.
func New(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap creates an Error around an existing cause. Returns nil when err
// is nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or ""
// if the chain carries no kind.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	var kind Kind
	if errors.As(err, &kind) {
		return kind
	}
	return ""
}
