// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// The upload coordinator measures a grace delay between a window
// regaining focus and deciding that a file picker was dismissed. That
// delay runs through a Clock so tests can drive it deterministically:
// production code uses Real(), tests use Fake() and call Advance.
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	coordinator := upload.New(upload.Options{Clock: c})
//	// ... trigger a selection and a focus event ...
//	c.WaitForTimers(1)
//	c.Advance(upload.DefaultGraceDelay)
package clock
