// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload converts in-memory binary payloads to and from their
// textual encodings and decodes their content as text or JSON.
//
// A [Payload] is a byte slice tagged with a MIME content type and an
// optional name. It is what the upload coordinator emits, what the
// blob store persists, and what the encoders consume.
//
// Encodings:
//
//   - Base64: [EncodeBase64] / [DecodeBase64] use standard padded
//     Base64 with no line breaks. Round-tripping goes through the raw
//     byte buffer, so payloads containing NUL bytes or invalid UTF-8
//     survive unchanged.
//   - Data URL: [EncodeDataURL] / [ParseDataURL] handle the
//     "data:<mime>;base64,<data>" form only. Percent-encoded data URLs
//     are rejected with [fault.KindUnsupportedEncoding].
//
// Content decoding:
//
//   - [ReadAll] reads an io.Reader into a Payload, honoring context
//     cancellation between chunks.
//   - [Text] decodes bytes under a WHATWG charset label (UTF-8 when
//     empty).
//   - [ParseJSON] and [ParseJSONC] decode into a caller-chosen type.
//     Malformed JSON is reported as [fault.KindJSONSyntax], distinct
//     from read failures.
package payload
