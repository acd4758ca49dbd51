// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the blobkit CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a Params struct whose tagged
// fields become pflag flags (see [BindFlags]), and a Run function.
// Commands are assembled into a tree in cmd/blobkit/commands and
// dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Commands never touch os.Stdin or os.Stdout directly. They read and
// write through the [Streams] handed to their constructor, which lets
// tests drive the whole tree with in-memory buffers.
//
// Errors returned by Run are categorized with [ToolError] (validation,
// not found, internal). [ExitError] signals a non-zero exit after the
// command has written its own output.
package cli
