// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobstore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bureau-foundation/blobkit/lib/atomicfile"
	"github.com/bureau-foundation/blobkit/lib/codec"
)

// Metadata describes one stored blob. It is persisted as a CBOR
// sidecar and also appears in CLI --json output and HTTP responses,
// hence the json tags.
type Metadata struct {
	Hash        Hash        `json:"hash"`
	Ref         string      `json:"ref"`
	Name        string      `json:"name,omitempty"`
	ContentType string      `json:"content_type"`
	Size        int64       `json:"size"`
	StoredSize  int64       `json:"stored_size"`
	Compression Compression `json:"compression"`
	Encrypted   bool        `json:"encrypted,omitempty"`
	StoredAt    time.Time   `json:"stored_at"`
}

// shardedPath returns <root>/<hex[:2]>/<hex[2:4]>/<hex><extension>.
func shardedPath(root string, hash Hash, extension string) string {
	hexHash := hash.String()
	return filepath.Join(root, hexHash[:2], hexHash[2:4], hexHash+extension)
}

func writeMetadata(metadataRoot, stagingDir string, meta *Metadata) error {
	data, err := codec.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshaling blob metadata: %w", err)
	}
	if err := atomicfile.Write(stagingDir, "metadata-*.cbor", shardedPath(metadataRoot, meta.Hash, ".cbor"), data, 0o644); err != nil {
		return fmt.Errorf("writing metadata for %s: %w", meta.Ref, err)
	}
	return nil
}

// readMetadata returns an error wrapping os.ErrNotExist when no
// sidecar exists for hash.
func readMetadata(metadataRoot string, hash Hash) (*Metadata, error) {
	data, err := os.ReadFile(shardedPath(metadataRoot, hash, ".cbor"))
	if err != nil {
		return nil, fmt.Errorf("reading metadata for %s: %w", hash.Ref(), err)
	}
	var meta Metadata
	if err := codec.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decoding metadata for %s: %w", hash.Ref(), err)
	}
	return &meta, nil
}

// scanHashes lists every hash with a sidecar, reading only directory
// entries. Files whose names are not a hash are ignored.
func scanHashes(metadataRoot string) ([]Hash, error) {
	var hashes []Hash
	err := filepath.WalkDir(metadataRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		name, ok := strings.CutSuffix(entry.Name(), ".cbor")
		if !ok {
			return nil
		}
		hash, parseErr := ParseHash(name)
		if parseErr != nil {
			return nil
		}
		hashes = append(hashes, hash)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning metadata directory: %w", err)
	}
	return hashes, nil
}
