// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/jsonc"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/bureau-foundation/blobkit/lib/fault"
	"github.com/bureau-foundation/blobkit/lib/mimetype"
)

// readChunkSize is the read granularity of ReadAll. Cancellation is
// checked between chunks.
const readChunkSize = 64 * 1024

// ReadAll reads r to EOF and returns the bytes as a Payload. When
// contentType is empty it is inferred from name. Read failures and
// context cancellation fail with [fault.KindRead]; the context error
// stays in the chain for errors.Is.
func ReadAll(ctx context.Context, r io.Reader, name, contentType string) (Payload, error) {
	const op = "payload.ReadAll"

	var buffer bytes.Buffer
	chunk := make([]byte, readChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return Payload{}, fault.Wrap(fault.KindRead, op, err)
		}
		n, err := r.Read(chunk)
		buffer.Write(chunk[:n])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Payload{}, fault.Wrap(fault.KindRead, op, err)
		}
	}

	if contentType == "" && name != "" {
		contentType = mimetype.FromFilename(name)
	}
	return Payload{Data: buffer.Bytes(), ContentType: contentType, Name: name}, nil
}

// Text decodes the payload's bytes as a string under the given WHATWG
// charset label ("utf-8", "latin1", "shift_jis", ...). An empty label
// means UTF-8. Invalid byte sequences decode to U+FFFD; an unknown label
// fails with [fault.KindRead].
func Text(ctx context.Context, p Payload, charset string) (string, error) {
	const op = "payload.Text"

	if err := ctx.Err(); err != nil {
		return "", fault.Wrap(fault.KindRead, op, err)
	}
	if charset == "" {
		charset = "utf-8"
	}
	encoding, err := htmlindex.Get(strings.TrimSpace(charset))
	if err != nil {
		return "", fault.New(fault.KindRead, op, "unknown charset %q: %v", charset, err)
	}
	decoded, err := encoding.NewDecoder().Bytes(p.Data)
	if err != nil {
		return "", fault.Wrap(fault.KindRead, op, fmt.Errorf("decoding %s text: %w", charset, err))
	}
	return string(decoded), nil
}

// ParseJSON decodes the payload as UTF-8 JSON into a value of type T.
// Syntax and type errors fail with [fault.KindJSONSyntax].
func ParseJSON[T any](ctx context.Context, p Payload) (T, error) {
	var value T
	text, err := Text(ctx, p, "")
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return value, fault.Wrap(fault.KindJSONSyntax, "payload.ParseJSON", err)
	}
	return value, nil
}

// ParseJSONC is ParseJSON for JSONC input: line and block comments and
// trailing commas are stripped before decoding.
func ParseJSONC[T any](ctx context.Context, p Payload) (T, error) {
	var value T
	text, err := Text(ctx, p, "")
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(jsonc.ToJSON([]byte(text)), &value); err != nil {
		return value, fault.Wrap(fault.KindJSONSyntax, "payload.ParseJSONC", err)
	}
	return value, nil
}
