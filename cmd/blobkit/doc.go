// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Blobkit is the command-line front end for the blobkit libraries. It
// provides payload conversion (encode, decode, dataurl, text, json),
// inspection (mime, ext, size, hash, inspect), interactive selection
// (select), the content-addressed blob store (store), and the HTTP
// upload service (serve).
package main
