// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/payload"
)

type textParams struct {
	Charset string `json:"charset" flag:"charset,c" desc:"source character set as a WHATWG label (utf-8, latin1, shift_jis, ...)" default:"utf-8"`
}

// TextCommand returns the "text" command.
func TextCommand(streams cli.Streams) *cli.Command {
	var params textParams

	return &cli.Command{
		Name:    "text",
		Summary: "Decode bytes as text",
		Description: `Decode the input in the given character set and write it to stdout as
UTF-8. Invalid sequences become U+FFFD.`,
		Usage:  "blobkit text [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Convert a Latin-1 file", Command: "blobkit text --charset latin1 legacy.txt"},
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			input, remaining, err := cli.ReadInput(streams, args)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return cli.Validation("text takes at most one file argument, got %q", remaining[0])
			}
			text, err := payload.Text(ctx, payload.New(input.Data, "", input.Name), params.Charset)
			if err != nil {
				return cli.FromFault(err)
			}
			_, err = fmt.Fprint(streams.Out, text)
			return err
		},
	}
}

// trimLine drops surrounding whitespace, including the trailing
// newline of piped input.
func trimLine(text string) string {
	return strings.TrimSpace(text)
}
