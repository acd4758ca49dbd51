// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package uploadservice is the HTTP front end of the blob store.
//
// Every upload request is turned into a host event and runs through a
// fresh upload.Coordinator: a multipart form posted to /input becomes a
// change event on an element.Input, and a raw body posted to /drop
// becomes a drop event on an element.Zone. The Coordinator's callback
// stores the files and the handler answers with the resulting
// references, so HTTP uploads and interactive uploads share one code
// path.
//
// Routes:
//
//	POST /input         multipart form, one or more "file" fields
//	POST /drop          raw body; name from X-Filename or ?filename=
//	POST /dataurl       JSON {"data_url": "...", "name": "..."}
//	GET  /blobs         metadata of every stored blob
//	GET  /blobs/{ref}   the blob as an attachment download
//
// Errors are JSON objects {"error": "...", "kind": "..."}, where kind
// is the fault kind when one applies. An empty selection is 400, a
// body over the size limit is 413, a file outside the accept filter is
// 415, and an unknown reference is 404.
package uploadservice
