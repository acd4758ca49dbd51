// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"encoding/base64"

	"github.com/bureau-foundation/blobkit/lib/fault"
)

// EncodeBase64 returns the standard padded Base64 encoding of the
// payload's bytes with no line breaks. Zero-length payloads encode to
// the empty string.
func EncodeBase64(p Payload) string {
	return base64.StdEncoding.EncodeToString(p.Data)
}

// DecodeBase64 decodes standard padded Base64 into a Payload tagged
// with contentType. Malformed input fails with [fault.KindDecode].
func DecodeBase64(text, contentType string) (Payload, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return Payload{}, fault.Wrap(fault.KindDecode, "payload.DecodeBase64", err)
	}
	return Payload{Data: data, ContentType: contentType}, nil
}
