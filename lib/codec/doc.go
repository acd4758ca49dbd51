// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the module's CBOR configuration.
//
// JSON is the external format: CLI --json output and the upload
// service's HTTP responses. CBOR is the on-disk format for blob store
// metadata sidecars. Encoding uses Core Deterministic Encoding
// (RFC 8949 §4.2), so the same metadata always produces identical
// bytes and sidecars can be compared byte for byte.
//
// Types serialized only as CBOR carry `cbor` struct tags. Types that
// also appear in JSON output carry `json` tags, which fxamacker/cbor
// reads as a fallback. Never put both on one field.
package codec
