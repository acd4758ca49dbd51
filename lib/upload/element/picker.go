// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package element

import "github.com/bureau-foundation/blobkit/lib/upload"

// Presentation is one call to Picker.Present.
type Presentation struct {
	Options upload.SelectOptions
	Sink    upload.Sink
}

// Picker is a Dialog whose outcome is supplied by the caller. Each
// Present call is published on Presented; the receiver then reports
// through the Sink.
type Picker struct {
	presented chan Presentation
}

// NewPicker returns a Picker that buffers up to 16 pending
// presentations.
func NewPicker() *Picker {
	return &Picker{presented: make(chan Presentation, 16)}
}

// Present publishes the presentation.
func (p *Picker) Present(options upload.SelectOptions, sink upload.Sink) {
	p.presented <- Presentation{Options: options, Sink: sink}
}

// Presented delivers presentations in call order.
func (p *Picker) Presented() <-chan Presentation { return p.presented }

var _ upload.Dialog = (*Picker)(nil)
