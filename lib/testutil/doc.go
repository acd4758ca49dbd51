// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireReceive] and [RequireClosed] wrap the select-with-timeout
// pattern so that individual tests never call time.After directly.
// They are the only place in the test suite where wall-clock timeouts
// appear; everything else runs on lib/clock's fake clock.
//
// [UniqueID] produces distinct identifiers for names that must not
// collide across parallel tests. [WriteFile] drops a fixture into a
// test-scoped temporary directory.
//
// All helpers call t.Fatalf on failure rather than returning errors.
package testutil
