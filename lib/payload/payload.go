// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/blobkit/lib/mimetype"
)

// Payload is an in-memory binary object with a content type. Data is
// owned by the Payload and must be treated as read-only once the
// Payload has been handed to another component.
type Payload struct {
	// Data is the raw content. A nil or empty slice is a valid
	// zero-length payload.
	Data []byte

	// ContentType is the MIME type tag, possibly with parameters
	// (e.g., "text/plain;charset=utf-8"). May be empty.
	ContentType string

	// Name is the optional filename the payload was acquired under.
	Name string
}

// New creates a Payload. When contentType is empty and name is not,
// the type is inferred from the name's extension.
func New(data []byte, contentType, name string) Payload {
	if contentType == "" && name != "" {
		contentType = mimetype.FromFilename(name)
	}
	return Payload{Data: data, ContentType: contentType, Name: name}
}

// Size returns the payload length in bytes.
func (p Payload) Size() int64 {
	return int64(len(p.Data))
}

// Equal reports whether two payloads carry identical bytes, type and
// name.
func (p Payload) Equal(other Payload) bool {
	return p.ContentType == other.ContentType &&
		p.Name == other.Name &&
		string(p.Data) == string(other.Data)
}

// FromFile reads the file at path into a Payload named after the
// file's base name, with the content type inferred from its extension.
func FromFile(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, fmt.Errorf("reading payload from %s: %w", path, err)
	}
	name := filepath.Base(path)
	return Payload{Data: data, ContentType: mimetype.FromFilename(name), Name: name}, nil
}
