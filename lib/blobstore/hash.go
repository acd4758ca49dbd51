// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobstore

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest of a blob's plaintext.
type Hash [32]byte

// RefPrefix starts every short blob reference.
const RefPrefix = "blob-"

// fileDomainKey keys the content hash. The bytes are ASCII, zero
// padded to the 32 bytes BLAKE3 keyed mode requires. Changing it
// changes every reference.
var fileDomainKey = [32]byte{
	'b', 'l', 'o', 'b', 'k', 'i', 't', '.', 'b', 'l', 'o', 'b', 's', 't', 'o', 'r',
	'e', '.', 'f', 'i', 'l', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// HashContent returns the file-domain hash of data.
func HashContent(data []byte) Hash {
	hasher, err := blake3.NewKeyed(fileDomainKey[:])
	if err != nil {
		panic("blobstore: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// String returns the lowercase hex form.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// Ref returns the short reference.
func (h Hash) Ref() string { return RefPrefix + hex.EncodeToString(h[:6]) }

// MarshalText encodes the hash as hex, so JSON output carries a string
// rather than an array of numbers.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText parses a 64-character hex string.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHash parses a 64-character hex string.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing blob hash: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("blob hash is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}
