// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobstore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"filippo.io/age"

	"github.com/bureau-foundation/blobkit/lib/atomicfile"
	"github.com/bureau-foundation/blobkit/lib/clock"
	"github.com/bureau-foundation/blobkit/lib/payload"
)

const (
	blobsDir    = "blobs"
	metadataDir = "metadata"
	tmpDir      = "tmp"

	// minPrefixLength is the shortest hex prefix Resolve searches for.
	minPrefixLength = 4
)

// ErrIdentityRequired is returned by Get for an encrypted blob when no
// identities are supplied.
var ErrIdentityRequired = errors.New("blob is encrypted; an age identity is required to read it")

// ErrInvalidRef and ErrAmbiguousRef are wrapped by Resolve for a
// malformed reference and for a prefix matching several blobs.
var (
	ErrInvalidRef   = errors.New("invalid blob reference")
	ErrAmbiguousRef = errors.New("ambiguous blob reference")
)

// Options configures a Store.
type Options struct {
	// Root is the store directory. Created if missing.
	Root string

	// Compression is the policy: auto (default), none, lz4, or zstd.
	Compression Compression

	// Recipients, when non-empty, are the age public keys bodies are
	// encrypted to.
	Recipients []string

	// Clock stamps StoredAt. Defaults to clock.Real().
	Clock clock.Clock

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Store is safe for concurrent use.
type Store struct {
	root        string
	compression Compression
	recipients  []age.Recipient
	clock       clock.Clock
	logger      *slog.Logger

	// writeMu serializes Put so that two stores of the same content
	// do not both write.
	writeMu sync.Mutex
}

// Open prepares the store directories and validates options.
func Open(options Options) (*Store, error) {
	if options.Root == "" {
		return nil, errors.New("blobstore: root directory is required")
	}
	compression, err := ParseCompression(string(options.Compression))
	if err != nil {
		return nil, err
	}
	recipients, err := ParseRecipients(options.Recipients)
	if err != nil {
		return nil, err
	}
	for _, directory := range []string{blobsDir, metadataDir, tmpDir} {
		if err := os.MkdirAll(filepath.Join(options.Root, directory), 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return &Store{
		root:        options.Root,
		compression: compression,
		recipients:  recipients,
		clock:       options.Clock,
		logger:      options.Logger,
	}, nil
}

// Encrypted reports whether new blobs are encrypted.
func (s *Store) Encrypted() bool { return len(s.recipients) > 0 }

// Put stores p and returns its metadata. When the content is already
// present, the existing metadata is returned and nothing is written;
// the first stored name and content type are kept.
func (s *Store) Put(p payload.Payload) (*Metadata, error) {
	hash := HashContent(p.Data)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	existing, err := readMetadata(s.metadataRoot(), hash)
	if err == nil {
		s.logger.Debug("blob already stored", "ref", existing.Ref, "name", p.Name)
		return existing, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	body, compression, err := compress(p.Data, p.ContentType, s.compression)
	if err != nil {
		return nil, fmt.Errorf("compressing %s: %w", hash.Ref(), err)
	}
	if s.Encrypted() {
		body, err = seal(body, s.recipients)
		if err != nil {
			return nil, err
		}
	}

	if err := atomicfile.Write(s.stagingDir(), "blob-*.bin", shardedPath(s.bodyRoot(), hash, ".bin"), body, 0o644); err != nil {
		return nil, fmt.Errorf("writing body for %s: %w", hash.Ref(), err)
	}

	meta := &Metadata{
		Hash:        hash,
		Ref:         hash.Ref(),
		Name:        p.Name,
		ContentType: p.ContentType,
		Size:        p.Size(),
		StoredSize:  int64(len(body)),
		Compression: compression,
		Encrypted:   s.Encrypted(),
		StoredAt:    s.clock.Now().UTC(),
	}
	if err := writeMetadata(s.metadataRoot(), s.stagingDir(), meta); err != nil {
		return nil, err
	}

	s.logger.Info("blob stored",
		"ref", meta.Ref,
		"name", meta.Name,
		"content_type", meta.ContentType,
		"size", meta.Size,
		"stored_size", meta.StoredSize,
		"compression", meta.Compression,
		"encrypted", meta.Encrypted,
	)
	return meta, nil
}

// Stat returns the metadata for ref.
func (s *Store) Stat(ref string) (*Metadata, error) {
	hash, err := s.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return readMetadata(s.metadataRoot(), hash)
}

// RawMetadata returns the encoded CBOR sidecar for ref, for
// diagnostic display.
func (s *Store) RawMetadata(ref string) ([]byte, error) {
	hash, err := s.Resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(shardedPath(s.metadataRoot(), hash, ".cbor"))
	if err != nil {
		return nil, fmt.Errorf("reading metadata for %s: %w", hash.Ref(), err)
	}
	return data, nil
}

// Get reads, decrypts, and decompresses the blob for ref and verifies
// its hash. Identities are only consulted for encrypted blobs.
func (s *Store) Get(ref string, identities []age.Identity) (payload.Payload, *Metadata, error) {
	meta, err := s.Stat(ref)
	if err != nil {
		return payload.Payload{}, nil, err
	}

	body, err := os.ReadFile(shardedPath(s.bodyRoot(), meta.Hash, ".bin"))
	if err != nil {
		return payload.Payload{}, nil, fmt.Errorf("reading body for %s: %w", meta.Ref, err)
	}
	if meta.Encrypted {
		if len(identities) == 0 {
			return payload.Payload{}, nil, fmt.Errorf("%s: %w", meta.Ref, ErrIdentityRequired)
		}
		body, err = unseal(body, identities)
		if err != nil {
			return payload.Payload{}, nil, fmt.Errorf("%s: %w", meta.Ref, err)
		}
	}

	data, err := decompress(body, meta.Compression, meta.Size)
	if err != nil {
		return payload.Payload{}, nil, fmt.Errorf("%s: %w", meta.Ref, err)
	}
	if actual := HashContent(data); actual != meta.Hash {
		return payload.Payload{}, nil, fmt.Errorf("%s: integrity check failed: content hashes to %s", meta.Ref, actual)
	}
	return payload.Payload{Data: data, ContentType: meta.ContentType, Name: meta.Name}, meta, nil
}

// List returns the metadata of every blob, oldest first. Ties are
// broken by hash so the order is stable.
func (s *Store) List() ([]*Metadata, error) {
	hashes, err := scanHashes(s.metadataRoot())
	if err != nil {
		return nil, err
	}
	entries := make([]*Metadata, 0, len(hashes))
	for _, hash := range hashes {
		meta, err := readMetadata(s.metadataRoot(), hash)
		if err != nil {
			return nil, err
		}
		entries = append(entries, meta)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].StoredAt.Equal(entries[j].StoredAt) {
			return entries[i].StoredAt.Before(entries[j].StoredAt)
		}
		return entries[i].Hash.String() < entries[j].Hash.String()
	})
	return entries, nil
}

// Resolve maps a reference to a full hash. Accepted forms: the short
// "blob-<hex>" reference, a bare hex prefix of at least four
// characters, or the full hash. A reference matching nothing wraps
// os.ErrNotExist; one matching several blobs is an error that lists
// them.
func (s *Store) Resolve(ref string) (Hash, error) {
	prefix := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ref), RefPrefix))
	if len(prefix) == 64 {
		hash, err := ParseHash(prefix)
		if err != nil {
			return Hash{}, fmt.Errorf("%w %q: %w", ErrInvalidRef, ref, err)
		}
		if _, err := os.Stat(shardedPath(s.metadataRoot(), hash, ".cbor")); err != nil {
			return Hash{}, fmt.Errorf("blob %s: %w", hash.Ref(), os.ErrNotExist)
		}
		return hash, nil
	}
	if len(prefix) < minPrefixLength || strings.Trim(prefix, "0123456789abcdef") != "" {
		return Hash{}, fmt.Errorf("%w %q: want %s<hex> with at least %d hex characters", ErrInvalidRef, ref, RefPrefix, minPrefixLength)
	}

	hashes, err := scanHashes(s.metadataRoot())
	if err != nil {
		return Hash{}, err
	}
	var matches []Hash
	for _, hash := range hashes {
		if strings.HasPrefix(hash.String(), prefix) {
			matches = append(matches, hash)
		}
	}
	switch len(matches) {
	case 0:
		return Hash{}, fmt.Errorf("blob %s: %w", ref, os.ErrNotExist)
	case 1:
		return matches[0], nil
	}
	candidates := make([]string, len(matches))
	for i, hash := range matches {
		candidates[i] = hash.String()
	}
	sort.Strings(candidates)
	return Hash{}, fmt.Errorf("%w %q: matches %s", ErrAmbiguousRef, ref, strings.Join(candidates, ", "))
}

func (s *Store) bodyRoot() string     { return filepath.Join(s.root, blobsDir) }
func (s *Store) metadataRoot() string { return filepath.Join(s.root, metadataDir) }
func (s *Store) stagingDir() string   { return filepath.Join(s.root, tmpDir) }
