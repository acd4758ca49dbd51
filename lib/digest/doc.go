// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes hex-encoded cryptographic digests of
// payloads under one of four named algorithms: SHA-256, SHA-1,
// SHA-384, and SHA-512.
//
// The hash primitive is an injected capability, a [Provider], rather
// than a hard dependency. [Standard] returns the provider backed by
// the Go crypto packages. A nil provider, or one that lacks the
// requested primitive, fails with [fault.KindEnvironment]; an
// algorithm name outside the fixed set fails with
// [fault.KindUnsupportedAlgorithm] before the provider is consulted.
//
// Digests are computed in chunks so that long inputs honor context
// cancellation. Output is always lowercase hex, and the same bytes
// under the same algorithm always produce the same string.
//
// This package depends only on lib/fault and lib/payload.
package digest
