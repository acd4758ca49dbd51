// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package convert implements the payload conversion commands: encode
// and decode for Base64, the dataurl group, text for charset-aware
// decoding, and json for validating and pretty-printing JSON or JSONC.
//
// Every command reads its input from a trailing file argument or from
// stdin (see [cli.ReadInput]) and writes to the command tree's stdout.
package convert
