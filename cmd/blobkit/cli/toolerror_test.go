// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/bureau-foundation/blobkit/lib/fault"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("missing file argument")
	if err.Error() != "missing file argument" {
		t.Errorf("Error() = %q, want %q", err.Error(), "missing file argument")
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := NotFound("blob %s not found", "blob-0123").WithHint("Run 'blobkit store list' to see stored blobs.")

	want := "blob blob-0123 not found\n\nRun 'blobkit store list' to see stored blobs."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Category != CategoryNotFound {
		t.Errorf("Category = %q, want not_found", err.Category)
	}
}

func TestToolError_Unwrap(t *testing.T) {
	err := Internal("reading store: %w", os.ErrPermission)
	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is did not see through ToolError")
	}
}

func TestToolError_ExitCode(t *testing.T) {
	tests := []struct {
		err  *ToolError
		want int
	}{
		{Validation("x"), 2},
		{NotFound("x"), 3},
		{Cancelled("x"), 4},
		{Internal("x"), 1},
	}
	for _, test := range tests {
		if got := test.err.ExitCode(); got != test.want {
			t.Errorf("%s ExitCode() = %d, want %d", test.err.Category, got, test.want)
		}
	}
}

func TestFromFault(t *testing.T) {
	tests := []struct {
		kind fault.Kind
		want ErrorCategory
	}{
		{fault.KindDecode, CategoryValidation},
		{fault.KindFormat, CategoryValidation},
		{fault.KindUnsupportedEncoding, CategoryValidation},
		{fault.KindUnsupportedAlgorithm, CategoryValidation},
		{fault.KindJSONSyntax, CategoryValidation},
		{fault.KindSelectionCancelled, CategoryCancelled},
		{fault.KindNoFileSelected, CategoryCancelled},
		{fault.KindRead, CategoryInternal},
		{fault.KindEnvironment, CategoryInternal},
	}
	for _, test := range tests {
		t.Run(string(test.kind), func(t *testing.T) {
			err := FromFault(fmt.Errorf("context: %w", fault.New(test.kind, "test", "failed")))
			var toolError *ToolError
			if !errors.As(err, &toolError) {
				t.Fatalf("FromFault returned %T, want *ToolError", err)
			}
			if toolError.Category != test.want {
				t.Errorf("Category = %q, want %q", toolError.Category, test.want)
			}
			if !errors.Is(err, test.kind) {
				t.Error("fault kind lost from the chain")
			}
		})
	}

	if FromFault(nil) != nil {
		t.Error("FromFault(nil) != nil")
	}
	original := NotFound("gone")
	if FromFault(original) != error(original) {
		t.Error("FromFault rewrapped an existing ToolError")
	}
}
