// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"strings"

	"github.com/bureau-foundation/blobkit/lib/fault"
)

const (
	dataURLScheme = "data:"
	base64Marker  = ";base64"
)

// EncodeDataURL returns "data:<content type>;base64,<data>". The
// content type is emitted verbatim, including parameters; an empty
// type yields "data:;base64,...".
func EncodeDataURL(p Payload) string {
	var builder strings.Builder
	builder.Grow(len(dataURLScheme) + len(p.ContentType) + len(base64Marker) + 1 + (len(p.Data)+2)/3*4)
	builder.WriteString(dataURLScheme)
	builder.WriteString(p.ContentType)
	builder.WriteString(base64Marker)
	builder.WriteByte(',')
	builder.WriteString(EncodeBase64(p))
	return builder.String()
}

// ParseDataURL decodes a Base64 data URL into a Payload whose
// content type is the URL's media type (everything between "data:"
// and ";base64").
//
// The URL must split on commas into exactly two parts, a header and
// the data; anything else fails with [fault.KindFormat]. A header
// without the ;base64 marker fails with
// [fault.KindUnsupportedEncoding]. Malformed Base64 in the data part
// fails with [fault.KindDecode].
func ParseDataURL(url string) (Payload, error) {
	const op = "payload.ParseDataURL"

	parts := strings.Split(url, ",")
	if len(parts) != 2 {
		return Payload{}, fault.New(fault.KindFormat, op,
			"data URL has %d comma-separated parts, want 2", len(parts))
	}
	header, data := parts[0], parts[1]

	if !strings.HasPrefix(header, dataURLScheme) {
		return Payload{}, fault.New(fault.KindFormat, op, "missing %q scheme", dataURLScheme)
	}
	header = strings.TrimPrefix(header, dataURLScheme)

	contentType, isBase64 := strings.CutSuffix(header, base64Marker)
	if !isBase64 {
		return Payload{}, fault.New(fault.KindUnsupportedEncoding, op,
			"only base64 data URLs are supported (header %q)", header)
	}

	decoded, err := DecodeBase64(data, contentType)
	if err != nil {
		return Payload{}, fault.Wrap(fault.KindDecode, op, err)
	}
	return decoded, nil
}
