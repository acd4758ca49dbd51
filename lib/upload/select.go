// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bureau-foundation/blobkit/lib/clock"
	"github.com/bureau-foundation/blobkit/lib/fault"
	"github.com/bureau-foundation/blobkit/lib/payload"
)

// DefaultGraceDelay is how long a selection waits after the host
// regains focus before treating the picker as dismissed.
const DefaultGraceDelay = 300 * time.Millisecond

// SelectOptions configures one interactive selection.
type SelectOptions struct {
	// Accept is an HTML-style filter: extensions (".png"), exact
	// types ("image/png"), and wildcards ("image/*"), comma
	// separated. Empty accepts everything. Dialogs apply it.
	Accept string

	// Multiple allows more than one file. When false, only the first
	// selected file is returned.
	Multiple bool

	// GraceDelay overrides DefaultGraceDelay when positive.
	GraceDelay time.Duration

	// Clock runs the grace timer. Defaults to clock.Real().
	Clock clock.Clock
}

// Dialog presents a file picker. Present must eventually report to
// sink, or never report if the user walks away; SelectFiles then
// waits for context cancellation. Present is called on its own
// goroutine, so it may block.
type Dialog interface {
	Present(options SelectOptions, sink Sink)
}

// Sink receives the outcome of one presentation. Only the first
// resolving call has an effect; everything after it is ignored. It is
// safe to call from any goroutine.
type Sink interface {
	// Selected reports the chosen files. An empty selection resolves
	// as fault.KindNoFileSelected.
	Selected(files []payload.Payload)

	// Dismissed reports that the picker was closed without a choice.
	Dismissed()

	// Focused reports that the host window regained focus. It does
	// not resolve the selection by itself; it starts the grace timer.
	Focused()

	// Failed reports that the picker could not produce files.
	Failed(err error)
}

// SelectFiles presents dialog and waits for its outcome. It returns at
// least one payload on success. Failures:
//
//   - fault.KindSelectionCancelled: Dismissed, or Focused followed by
//     the grace delay with no other outcome.
//   - fault.KindNoFileSelected: Selected with no files.
//   - fault.KindRead: Failed.
//   - fault.KindEnvironment: dialog is nil.
//   - ctx.Err() when ctx ends first.
func SelectFiles(ctx context.Context, dialog Dialog, options SelectOptions) ([]payload.Payload, error) {
	if dialog == nil {
		return nil, fault.New(fault.KindEnvironment, "upload.SelectFiles", "no file dialog available")
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.GraceDelay <= 0 {
		options.GraceDelay = DefaultGraceDelay
	}

	pending := newSelection(options)
	go dialog.Present(options, pending)

	select {
	case result := <-pending.done:
		return result.files, result.err
	case <-ctx.Done():
		pending.resolve(nil, ctx.Err())
		result := <-pending.done
		return result.files, result.err
	}
}

type selectionResult struct {
	files []payload.Payload
	err   error
}

// selection is the Sink handed to a Dialog. done has capacity one and
// receives exactly one result.
type selection struct {
	options SelectOptions
	done    chan selectionResult
	once    sync.Once

	mu           sync.Mutex
	graceStarted bool
	grace        *clock.Timer
}

func newSelection(options SelectOptions) *selection {
	return &selection{options: options, done: make(chan selectionResult, 1)}
}

func (s *selection) resolve(files []payload.Payload, err error) {
	s.once.Do(func() {
		s.mu.Lock()
		if s.grace != nil {
			s.grace.Stop()
		}
		s.mu.Unlock()
		s.done <- selectionResult{files: files, err: err}
	})
}

func (s *selection) Selected(files []payload.Payload) {
	if len(files) == 0 {
		s.resolve(nil, fault.New(fault.KindNoFileSelected, "upload.SelectFiles", "selection contained no files"))
		return
	}
	if !s.options.Multiple {
		files = files[:1]
	}
	s.resolve(cloneFiles(files), nil)
}

func (s *selection) Dismissed() {
	s.resolve(nil, fault.New(fault.KindSelectionCancelled, "upload.SelectFiles", "file picker dismissed"))
}

func (s *selection) Focused() {
	s.mu.Lock()
	if s.graceStarted {
		s.mu.Unlock()
		return
	}
	s.graceStarted = true
	s.mu.Unlock()

	timer := s.options.Clock.AfterFunc(s.options.GraceDelay, func() {
		s.resolve(nil, fault.New(fault.KindSelectionCancelled, "upload.SelectFiles",
			"window regained focus with no selection after %v", s.options.GraceDelay))
	})

	s.mu.Lock()
	s.grace = timer
	s.mu.Unlock()
}

func (s *selection) Failed(err error) {
	if err == nil {
		err = errors.New("file picker failed")
	}
	s.resolve(nil, fault.Wrap(fault.KindRead, "upload.SelectFiles", err))
}
