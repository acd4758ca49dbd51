// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package upload unifies two file-acquisition surfaces, a file input
// and a drag-and-drop zone, into one callback surface.
//
// The host environment is modeled by small interfaces: a [Target]
// delivers [Event] values to registered handlers, a [FileInput] is a
// Target of kind "file" whose value can be cleared, and a [DropZone]
// is any Target that emits drop and drag events. Package
// lib/upload/element provides in-memory implementations used by the
// HTTP upload service and by tests.
//
// A [Coordinator] holds at most one bound input and one bound zone.
// Attaching a second element of the same role detaches the first, so
// listeners never accumulate. [Coordinator.Destroy] detaches
// everything, empties every callback slot, and leaves the Coordinator
// ready to be attached again.
//
// Each callback slot holds one function. Registering a new one
// replaces the old one; registering nil clears the slot. Callbacks run
// without the Coordinator's lock held, so they may call back into the
// Coordinator.
//
// Interactive selection ([SelectFiles]) presents a [Dialog] and waits
// for exactly one outcome on the [Sink] it hands out. A native
// dismissal resolves immediately. A focus signal starts a grace timer
// on the injected clock; if nothing else resolves the selection
// before it fires, the user is assumed to have dismissed the picker.
// This focus heuristic is an approximation and can misfire when the
// picker reports its result late.
package upload
