// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete blobkit command tree. main
// wires it to the process streams; tests build it over buffers.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/cmd/blobkit/convert"
	"github.com/bureau-foundation/blobkit/cmd/blobkit/inspect"
	"github.com/bureau-foundation/blobkit/cmd/blobkit/selection"
	"github.com/bureau-foundation/blobkit/cmd/blobkit/serve"
	"github.com/bureau-foundation/blobkit/cmd/blobkit/store"
	"github.com/bureau-foundation/blobkit/lib/version"
)

// Root builds the blobkit command tree over streams.
func Root(streams cli.Streams) *cli.Command {
	return &cli.Command{
		Name: "blobkit",
		Description: `blobkit: file and blob plumbing.

Convert payloads between bytes, Base64, data URLs, and text; inspect
names, sizes, and digests; pick files interactively; and keep blobs in
a content-addressed store served over HTTP.

Input is read from a file argument or stdin ("-"). Commands with
structured output accept --json.`,
		Subcommands: []*cli.Command{
			convert.EncodeCommand(streams),
			convert.DecodeCommand(streams),
			convert.DataURLCommand(streams),
			convert.TextCommand(streams),
			convert.JSONCommand(streams),
			inspect.MimeCommand(streams),
			inspect.ExtCommand(streams),
			inspect.SizeCommand(streams),
			inspect.HashCommand(streams),
			inspect.InspectCommand(streams),
			selection.Command(streams),
			store.Command(streams),
			serve.Command(streams),
			versionCommand(streams),
		},
		Examples: []cli.Example{
			{Description: "Base64-encode a file", Command: "blobkit encode photo.png"},
			{Description: "Turn a data URL back into a file", Command: "blobkit dataurl parse -o out.png 'data:image/png;base64,...'"},
			{Description: "Summarize a file", Command: "blobkit inspect report.pdf"},
			{Description: "Store a file and list the store", Command: "blobkit store put notes.md && blobkit store list"},
			{Description: "Run the upload service", Command: "blobkit serve --address 127.0.0.1:8470"},
		},
	}
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand(streams cli.Streams) *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if err := cli.ExpectArgs(args, 0, 0, "blobkit version [flags]"); err != nil {
				return err
			}
			build := version.Current()
			if done, err := params.EmitJSON(streams.Out, build); done {
				return err
			}
			_, err := fmt.Fprintf(streams.Out, "blobkit %s\n", build.Full())
			return err
		},
	}
}
