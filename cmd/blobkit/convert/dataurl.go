// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/bytesize"
	"github.com/bureau-foundation/blobkit/lib/payload"
)

// DataURLCommand returns the "dataurl" command group.
func DataURLCommand(streams cli.Streams) *cli.Command {
	return &cli.Command{
		Name:    "dataurl",
		Summary: "Produce and parse data: URLs",
		Description: `Convert between bytes and "data:<type>;base64,<data>" URLs.

Only Base64 data URLs are supported. A URL without the ";base64" marker
is rejected as an unsupported encoding rather than percent-decoded.`,
		Subcommands: []*cli.Command{
			dataURLEncodeCommand(streams),
			dataURLParseCommand(streams),
		},
	}
}

type dataURLEncodeParams struct {
	ContentType string `json:"content_type" flag:"type,t" desc:"media type for the URL (default: inferred from the file name)"`
}

func dataURLEncodeCommand(streams cli.Streams) *cli.Command {
	var params dataURLEncodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode bytes as a data URL",
		Usage:   "blobkit dataurl encode [flags] [file]",
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{Description: "Inline an icon", Command: "blobkit dataurl encode icon.svg"},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			input, remaining, err := cli.ReadInput(streams, args)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return cli.Validation("dataurl encode takes at most one file argument, got %q", remaining[0])
			}
			p := payload.New(input.Data, params.ContentType, input.Name)
			_, err = fmt.Fprintln(streams.Out, payload.EncodeDataURL(p))
			return err
		},
	}
}

type dataURLParseParams struct {
	cli.JSONOutput
	Output string `json:"output" flag:"output,o" desc:"write the decoded bytes to this path"`
}

type dataURLInfo struct {
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	HumanSize   string `json:"human_size"`
	Output      string `json:"output,omitempty"`
}

func dataURLParseCommand(streams cli.Streams) *cli.Command {
	var params dataURLParseParams

	return &cli.Command{
		Name:    "parse",
		Summary: "Decode a data URL",
		Description: `Decode a data URL given as the argument, in a file, or on stdin.

Without flags the decoded bytes go to stdout. With --json, a summary
(content type and size) is printed instead; combine with --output to
save the bytes at the same time.`,
		Usage:  "blobkit dataurl parse [flags] [url|file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Show what a URL contains", Command: "blobkit dataurl parse --json 'data:text/plain;base64,YWJj'"},
			{Description: "Save the payload", Command: "blobkit dataurl parse -o icon.svg url.txt"},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			text, err := textArgument(streams, args)
			if err != nil {
				return err
			}
			p, err := payload.ParseDataURL(trimLine(text))
			if err != nil {
				return cli.FromFault(err)
			}
			if params.OutputJSON {
				if params.Output != "" {
					if err := writePayload(streams, p, params.Output, logger); err != nil {
						return err
					}
				}
				_, err := params.EmitJSON(streams.Out, dataURLInfo{
					ContentType: p.ContentType,
					Size:        p.Size(),
					HumanSize:   bytesize.Format(p.Size(), false, 2),
					Output:      params.Output,
				})
				return err
			}
			return writePayload(streams, p, params.Output, logger)
		},
	}
}
