// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package inspect implements the commands that describe payloads
// without transforming them: mime and ext for filename lookups, size
// for human-readable byte counts, hash for digests, and inspect for a
// full summary of one payload.
package inspect
