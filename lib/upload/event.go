// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package upload

import "github.com/bureau-foundation/blobkit/lib/payload"

// EventType names an event delivered by a Target.
type EventType string

const (
	// EventChange fires on a file input when its selection changes.
	EventChange EventType = "change"

	// EventDrop fires on a drop zone when files are dropped on it.
	EventDrop EventType = "drop"

	// EventDragOver fires repeatedly while a drag hovers the zone.
	EventDragOver EventType = "dragover"

	// EventDragLeave fires when a drag leaves the zone.
	EventDragLeave EventType = "dragleave"
)

// KindFile is the kind a FileInput must report to be attachable.
const KindFile = "file"

// Event is one occurrence on a Target. Files is the live file
// collection carried by change and drop events, in selection or drop
// order; it is empty for drag events.
type Event struct {
	Type  EventType
	Files []payload.Payload

	defaultPrevented bool
}

// PreventDefault suppresses the host's native handling of the event
// (for a drop, opening the file in place of the page).
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether any handler called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Handler receives events from a Target.
type Handler func(event *Event)

// Target is an event source. Listen registers handler for events of
// the given type and returns a function that removes the registration.
// Calling the returned function more than once is a no-op.
type Target interface {
	Listen(eventType EventType, handler Handler) (remove func())
}

// FileInput is a file-selection element.
type FileInput interface {
	Target

	// Kind returns the element kind. Only KindFile is attachable.
	Kind() string

	// ClearValue empties the element's current selection, so that
	// choosing the same file again fires another change event.
	ClearValue()
}

// DropZone is a drag-and-drop target.
type DropZone interface {
	Target
}
