// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"strings"

	"github.com/bureau-foundation/blobkit/lib/fault"
	"github.com/bureau-foundation/blobkit/lib/payload"
)

// Algorithm names a supported digest algorithm. The string values are
// the canonical spellings used in output and configuration.
type Algorithm string

const (
	SHA256 Algorithm = "SHA-256"
	SHA1   Algorithm = "SHA-1"
	SHA384 Algorithm = "SHA-384"
	SHA512 Algorithm = "SHA-512"
)

// Algorithms lists the supported algorithms in display order.
var Algorithms = []Algorithm{SHA256, SHA1, SHA384, SHA512}

// chunkSize is the number of bytes hashed between cancellation checks.
const chunkSize = 256 * 1024

// ParseAlgorithm resolves a user-supplied name to an Algorithm.
// Matching ignores case and an optional hyphen, so "sha256",
// "SHA-256" and "Sha256" are equivalent. Any other name fails with
// [fault.KindUnsupportedAlgorithm].
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	for _, algorithm := range Algorithms {
		if strings.ReplaceAll(string(algorithm), "-", "") == normalized {
			return algorithm, nil
		}
	}
	return "", fault.New(fault.KindUnsupportedAlgorithm, "digest.ParseAlgorithm",
		"unsupported algorithm %q (supported: SHA-256, SHA-1, SHA-384, SHA-512)", name)
}

// Provider supplies hash primitives. New returns a fresh hash for the
// algorithm, or false if the primitive is unavailable in this
// environment.
type Provider interface {
	New(algorithm Algorithm) (hash.Hash, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(Algorithm) (hash.Hash, bool)

// New calls f.
func (f ProviderFunc) New(algorithm Algorithm) (hash.Hash, bool) { return f(algorithm) }

// Standard returns the provider backed by crypto/sha1, crypto/sha256
// and crypto/sha512.
func Standard() Provider {
	return ProviderFunc(func(algorithm Algorithm) (hash.Hash, bool) {
		switch algorithm {
		case SHA256:
			return sha256.New(), true
		case SHA1:
			return sha1.New(), true
		case SHA384:
			return sha512.New384(), true
		case SHA512:
			return sha512.New(), true
		}
		return nil, false
	})
}

// Compute returns the lowercase hex digest of p's bytes.
func Compute(ctx context.Context, provider Provider, algorithm string, p payload.Payload) (string, error) {
	hasher, err := newHasher(provider, algorithm)
	if err != nil {
		return "", err
	}
	data := p.Data
	for len(data) > 0 {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n := min(chunkSize, len(data))
		hasher.Write(data[:n])
		data = data[n:]
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// ComputeReader streams r through the digest. Read failures fail with
// [fault.KindRead].
func ComputeReader(ctx context.Context, provider Provider, algorithm string, r io.Reader) (string, error) {
	hasher, err := newHasher(provider, algorithm)
	if err != nil {
		return "", err
	}
	buffer := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, readErr := r.Read(buffer)
		hasher.Write(buffer[:n])
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return "", fault.Wrap(fault.KindRead, "digest.ComputeReader", readErr)
		}
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// newHasher validates the algorithm name first, then asks the
// provider for the primitive.
func newHasher(provider Provider, name string) (hash.Hash, error) {
	algorithm, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fault.New(fault.KindEnvironment, "digest.Compute", "no hash provider available")
	}
	hasher, ok := provider.New(algorithm)
	if !ok || hasher == nil {
		return nil, fault.New(fault.KindEnvironment, "digest.Compute",
			"%s is not available in this environment", algorithm)
	}
	return hasher, nil
}
