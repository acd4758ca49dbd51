// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package selection implements "blobkit select", the terminal front
// end for interactive file selection. It drives an upload.Coordinator
// with the line-oriented path dialog, so dismissal, empty selections,
// and the accept filter behave as they do in a graphical picker.
package selection
