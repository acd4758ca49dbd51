// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/bureau-foundation/blobkit/lib/clock"
	"github.com/bureau-foundation/blobkit/lib/fault"
	"github.com/bureau-foundation/blobkit/lib/payload"
)

// Options configures a Coordinator.
type Options struct {
	// Clock drives the grace timer of OpenFileSelectionDialog when
	// SelectOptions.Clock is unset. Defaults to clock.Real().
	Clock clock.Clock

	// Logger receives debug records for attach, detach, and routed
	// failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Coordinator binds a file input and a drop zone to one set of
// callback slots. The zero value is not usable; call New.
type Coordinator struct {
	clock  clock.Clock
	logger *slog.Logger

	mu sync.Mutex

	input       FileInput
	inputRemove func()

	zone       DropZone
	zoneRemove []func()

	onChange    func(files []payload.Payload)
	onDrop      func(files []payload.Payload)
	onDragOver  func(event *Event)
	onDragLeave func(event *Event)
	onCancel    func()
	onError     func(err error)
}

// New creates an unbound Coordinator.
func New(options Options) *Coordinator {
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return &Coordinator{clock: options.Clock, logger: options.Logger}
}

// OnChange sets the callback for files chosen through the bound input
// or through OpenFileSelectionDialog. Nil clears the slot.
func (c *Coordinator) OnChange(callback func(files []payload.Payload)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = callback
}

// OnDrop sets the callback for files dropped on the bound zone. It
// fires only for drops carrying at least one file.
func (c *Coordinator) OnDrop(callback func(files []payload.Payload)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDrop = callback
}

// OnDragOver sets the callback for drag-over events on the bound zone.
func (c *Coordinator) OnDragOver(callback func(event *Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDragOver = callback
}

// OnDragLeave sets the callback for drag-leave events on the bound
// zone.
func (c *Coordinator) OnDragLeave(callback func(event *Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDragLeave = callback
}

// OnCancel sets the callback for a dismissed selection dialog.
func (c *Coordinator) OnCancel(callback func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onCancel = callback
}

// OnError sets the callback for selection failures, and for
// cancellations when no OnCancel callback is set.
func (c *Coordinator) OnError(callback func(err error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onError = callback
}

// AttachFileInput binds input, replacing any previously bound input.
// Fails with fault.KindInvalidElement when input is nil or is not a
// file input; the existing binding is left untouched in that case.
func (c *Coordinator) AttachFileInput(input FileInput) error {
	if input == nil {
		return fault.New(fault.KindInvalidElement, "upload.AttachFileInput", "file input is nil")
	}
	if kind := input.Kind(); kind != KindFile {
		return fault.New(fault.KindInvalidElement, "upload.AttachFileInput",
			"element kind is %q, want %q", kind, KindFile)
	}

	c.mu.Lock()
	previous := c.inputRemove
	c.input = input
	c.inputRemove = input.Listen(EventChange, c.changeHandler(input))
	c.mu.Unlock()

	if previous != nil {
		previous()
		c.logger.Debug("replaced bound file input")
	} else {
		c.logger.Debug("attached file input")
	}
	return nil
}

// DetachFileInput removes the input binding, if any.
func (c *Coordinator) DetachFileInput() {
	c.mu.Lock()
	remove := c.inputRemove
	c.input, c.inputRemove = nil, nil
	c.mu.Unlock()

	if remove != nil {
		remove()
	}
}

// AttachDropZone binds zone, replacing any previously bound zone. When
// preventDefaults is true, drop, drag-over, and drag-leave events have
// their native handling suppressed. Callbacks fire either way.
func (c *Coordinator) AttachDropZone(zone DropZone, preventDefaults bool) error {
	if zone == nil {
		return fault.New(fault.KindInvalidElement, "upload.AttachDropZone", "drop zone is nil")
	}

	removals := []func(){
		zone.Listen(EventDragOver, c.dragHandler(preventDefaults, func() func(*Event) { return c.onDragOver })),
		zone.Listen(EventDragLeave, c.dragHandler(preventDefaults, func() func(*Event) { return c.onDragLeave })),
		zone.Listen(EventDrop, c.dropHandler(preventDefaults)),
	}

	c.mu.Lock()
	previous := c.zoneRemove
	c.zone = zone
	c.zoneRemove = removals
	c.mu.Unlock()

	for _, remove := range previous {
		remove()
	}
	c.logger.Debug("attached drop zone",
		"prevent_defaults", preventDefaults,
		"replaced", previous != nil,
	)
	return nil
}

// DetachDropZone removes the zone binding, if any.
func (c *Coordinator) DetachDropZone() {
	c.mu.Lock()
	removals := c.zoneRemove
	c.zone, c.zoneRemove = nil, nil
	c.mu.Unlock()

	for _, remove := range removals {
		remove()
	}
}

// Destroy detaches every listener, clears the bound input's value, and
// empties every callback slot. The Coordinator returns to the unbound
// state and may be attached again.
func (c *Coordinator) Destroy() {
	c.mu.Lock()
	input := c.input
	removals := c.zoneRemove
	if c.inputRemove != nil {
		removals = append(removals, c.inputRemove)
	}
	c.input, c.inputRemove = nil, nil
	c.zone, c.zoneRemove = nil, nil
	c.onChange, c.onDrop = nil, nil
	c.onDragOver, c.onDragLeave = nil, nil
	c.onCancel, c.onError = nil, nil
	c.mu.Unlock()

	for _, remove := range removals {
		remove()
	}
	if input != nil {
		input.ClearValue()
	}
	c.logger.Debug("coordinator destroyed", "listeners_removed", len(removals))
}

// OpenFileSelectionDialog runs SelectFiles and routes its outcome
// through the callback slots: files go to OnChange; a cancellation
// goes to OnCancel, or to OnError when OnCancel is unset; any other
// failure goes to OnError. The outcome is also returned.
func (c *Coordinator) OpenFileSelectionDialog(ctx context.Context, dialog Dialog, options SelectOptions) ([]payload.Payload, error) {
	if options.Clock == nil {
		options.Clock = c.clock
	}
	files, err := SelectFiles(ctx, dialog, options)

	c.mu.Lock()
	onChange, onCancel, onError := c.onChange, c.onCancel, c.onError
	c.mu.Unlock()

	switch {
	case err == nil:
		if onChange != nil {
			onChange(files)
		}
	case errors.Is(err, fault.KindSelectionCancelled) && onCancel != nil:
		onCancel()
	default:
		c.logger.Debug("file selection failed", "kind", fault.KindOf(err), "error", err)
		if onError != nil {
			onError(err)
		}
	}
	return files, err
}

func (c *Coordinator) changeHandler(input FileInput) Handler {
	return func(event *Event) {
		c.mu.Lock()
		callback := c.onChange
		c.mu.Unlock()

		if len(event.Files) > 0 && callback != nil {
			callback(cloneFiles(event.Files))
		}
		input.ClearValue()
	}
}

func (c *Coordinator) dropHandler(preventDefaults bool) Handler {
	return func(event *Event) {
		if preventDefaults {
			event.PreventDefault()
		}
		c.mu.Lock()
		callback := c.onDrop
		c.mu.Unlock()

		if len(event.Files) > 0 && callback != nil {
			callback(cloneFiles(event.Files))
		}
	}
}

// dragHandler reads its slot through slot so that the current callback
// is used at dispatch time, not the one set at attach time.
func (c *Coordinator) dragHandler(preventDefaults bool, slot func() func(*Event)) Handler {
	return func(event *Event) {
		if preventDefaults {
			event.PreventDefault()
		}
		c.mu.Lock()
		callback := slot()
		c.mu.Unlock()

		if callback != nil {
			callback(event)
		}
	}
}

// cloneFiles detaches the slice handed to callbacks from the event's
// live collection, which the input clears after dispatch.
func cloneFiles(files []payload.Payload) []payload.Payload {
	return append([]payload.Payload(nil), files...)
}
