// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui renders blobkit's human-readable terminal output: a
// titled block of label/value fields for one payload and a table for
// listings.
//
// Both renderers have a plain mode for pipes and files (aligned text,
// no escape sequences) and a styled mode for terminals that uses the
// lipgloss colors of a [Theme]. Callers pick the mode, typically with
// cli.IsTerminal on the output stream.
package tui
