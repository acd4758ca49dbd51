// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the build version of blobkit binaries.
//
// Release builds inject the fields via -ldflags:
//
//	go build -ldflags "-X github.com/bureau-foundation/blobkit/lib/version.Version=0.2.0" ./cmd/blobkit
//
// Development builds fall back to the VCS stamp the Go toolchain
// embeds in the binary.
package version
