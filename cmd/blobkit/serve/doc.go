// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package serve implements "blobkit serve", which runs the HTTP upload
// service over the configured blob store until interrupted.
package serve
