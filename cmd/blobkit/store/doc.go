// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package store implements the "blobkit store" command group: put,
// get, show, list, and keygen over the content-addressed blob store
// configured in blobkit.yaml.
package store
