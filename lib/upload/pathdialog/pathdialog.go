// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pathdialog implements a terminal file picker: it prompts
// once and reads a single line of whitespace-separated file paths.
//
// End of input before a line is read counts as dismissing the picker.
// An empty line is an empty selection. Files that do not pass the
// accept filter are skipped, the way a graphical picker greys them
// out.
package pathdialog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/blobkit/lib/mimetype"
	"github.com/bureau-foundation/blobkit/lib/payload"
	"github.com/bureau-foundation/blobkit/lib/upload"
)

// Dialog reads selections from an input stream.
type Dialog struct {
	reader *bufio.Reader
	prompt io.Writer
	logger *slog.Logger

	// open loads one path. Replaced in tests.
	open func(path string) (payload.Payload, error)
}

// New creates a Dialog reading from input. The prompt is written to
// prompt when it is non-nil.
func New(input io.Reader, prompt io.Writer, logger *slog.Logger) *Dialog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dialog{
		reader: bufio.NewReader(input),
		prompt: prompt,
		logger: logger,
		open:   payload.FromFile,
	}
}

// Present prompts, reads one line, and reports to sink.
func (d *Dialog) Present(options upload.SelectOptions, sink upload.Sink) {
	if d.prompt != nil {
		fmt.Fprint(d.prompt, promptText(options))
	}

	line, err := d.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		sink.Failed(fmt.Errorf("reading selection: %w", err))
		return
	}
	if errors.Is(err, io.EOF) && line == "" {
		sink.Dismissed()
		return
	}

	var files []payload.Payload
	for _, path := range strings.Fields(line) {
		file, openErr := d.open(path)
		if openErr != nil {
			sink.Failed(openErr)
			return
		}
		if !mimetype.Matches(options.Accept, file.Name, file.ContentType) {
			d.logger.Info("skipping file outside accept filter",
				"path", path,
				"content_type", file.ContentType,
				"accept", options.Accept,
			)
			continue
		}
		files = append(files, file)
		if !options.Multiple {
			break
		}
	}
	sink.Selected(files)
}

func promptText(options upload.SelectOptions) string {
	var hints []string
	if options.Accept != "" {
		hints = append(hints, "accept "+options.Accept)
	}
	if options.Multiple {
		hints = append(hints, "space-separated")
	}
	if len(hints) == 0 {
		return "file path: "
	}
	return "file path (" + strings.Join(hints, ", ") + "): "
}

var _ upload.Dialog = (*Dialog)(nil)
