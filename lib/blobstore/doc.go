// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package blobstore is a content-addressed store for payloads on the
// local filesystem.
//
// Every payload is addressed by the BLAKE3 keyed hash of its
// plaintext bytes under a fixed file-domain key. The short reference
// "blob-" followed by the first 12 hex characters of that hash is the
// form shown to users. [Store.Resolve] accepts the short form, a bare
// hex prefix of at least four characters, or the full 64-character
// hash.
//
// Bodies are compressed before they are written. Text-like content
// types (see mimetype.IsTextual) go straight to zstd; everything else
// is probed, and data that does not shrink is stored as-is. When the
// store is configured with age recipients, the compressed body is
// encrypted to them and reading requires a matching identity. Hashes
// always cover plaintext, so the same content has the same reference
// whether or not the store encrypts.
//
// On-disk layout, with two-level sharding on the hex hash:
//
//	<root>/blobs/<hex[:2]>/<hex[2:4]>/<hex>.bin
//	<root>/metadata/<hex[:2]>/<hex[2:4]>/<hex>.cbor
//	<root>/tmp/
//
// Body and metadata writes are atomic (temp file in tmp/, then
// rename), and the body lands before its metadata, so any blob whose
// metadata is visible is complete. Storing the same content twice
// returns the metadata of the first store.
package blobstore
