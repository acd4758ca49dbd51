// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package element provides in-memory host elements for the upload
// coordinator: a file [Input], a drop [Zone], and a scriptable
// [Picker] dialog. Events dispatch synchronously on the caller's
// goroutine, in listener registration order.
//
// The HTTP upload service drives a Coordinator through these types,
// turning each request into a change or drop event. Tests use them to
// simulate user interaction.
package element

import (
	"sync"

	"github.com/bureau-foundation/blobkit/lib/payload"
	"github.com/bureau-foundation/blobkit/lib/upload"
)

// listeners is the registration table shared by Input and Zone.
type listeners struct {
	mu      sync.Mutex
	nextID  uint64
	entries map[upload.EventType][]listenerEntry
}

type listenerEntry struct {
	id      uint64
	handler upload.Handler
}

func (l *listeners) Listen(eventType upload.EventType, handler upload.Handler) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.entries == nil {
		l.entries = make(map[upload.EventType][]listenerEntry)
	}
	l.nextID++
	id := l.nextID
	l.entries[eventType] = append(l.entries[eventType], listenerEntry{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(eventType, id) })
	}
}

func (l *listeners) remove(eventType upload.EventType, id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := l.entries[eventType]
	for i, entry := range entries {
		if entry.id == id {
			l.entries[eventType] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of handlers registered for
// eventType.
func (l *listeners) ListenerCount(eventType upload.EventType) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries[eventType])
}

// dispatch delivers event to a snapshot of the handlers, so handlers
// may add or remove registrations while running.
func (l *listeners) dispatch(event *upload.Event) {
	l.mu.Lock()
	snapshot := append([]listenerEntry(nil), l.entries[event.Type]...)
	l.mu.Unlock()

	for _, entry := range snapshot {
		entry.handler(event)
	}
}

// Input is an in-memory file input.
type Input struct {
	listeners

	kind string

	valueMu sync.Mutex
	value   []payload.Payload
}

// NewInput returns a file input.
func NewInput() *Input {
	return &Input{kind: upload.KindFile}
}

// NewInputOfKind returns an input that reports kind. Inputs of any
// kind other than upload.KindFile are rejected by the Coordinator.
func NewInputOfKind(kind string) *Input {
	return &Input{kind: kind}
}

// Kind returns the input's kind.
func (i *Input) Kind() string { return i.kind }

// Value returns the current selection.
func (i *Input) Value() []payload.Payload {
	i.valueMu.Lock()
	defer i.valueMu.Unlock()
	return append([]payload.Payload(nil), i.value...)
}

// ClearValue empties the current selection.
func (i *Input) ClearValue() {
	i.valueMu.Lock()
	defer i.valueMu.Unlock()
	i.value = nil
}

// Select sets the selection to files and fires a change event.
func (i *Input) Select(files ...payload.Payload) {
	i.valueMu.Lock()
	i.value = append([]payload.Payload(nil), files...)
	i.valueMu.Unlock()

	i.dispatch(&upload.Event{Type: upload.EventChange, Files: files})
}

// Zone is an in-memory drop zone. Each method fires one event and
// reports whether a handler prevented its default handling.
type Zone struct {
	listeners
}

// NewZone returns a drop zone.
func NewZone() *Zone { return &Zone{} }

// Drop fires a drop event carrying files.
func (z *Zone) Drop(files ...payload.Payload) bool {
	return z.fire(upload.EventDrop, files)
}

// DragOver fires a drag-over event.
func (z *Zone) DragOver() bool { return z.fire(upload.EventDragOver, nil) }

// DragLeave fires a drag-leave event.
func (z *Zone) DragLeave() bool { return z.fire(upload.EventDragLeave, nil) }

func (z *Zone) fire(eventType upload.EventType, files []payload.Payload) bool {
	event := &upload.Event{Type: eventType, Files: files}
	z.dispatch(event)
	return event.DefaultPrevented()
}

var (
	_ upload.FileInput = (*Input)(nil)
	_ upload.DropZone  = (*Zone)(nil)
)
