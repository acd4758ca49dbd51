// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/payload"
)

type jsonParams struct {
	JSONC   bool `json:"jsonc"   flag:"jsonc"     desc:"accept comments and trailing commas"`
	Compact bool `json:"compact" flag:"compact,c" desc:"compact output (no indentation)"`
}

// JSONCommand returns the "json" command.
func JSONCommand(streams cli.Streams) *cli.Command {
	var params jsonParams

	return &cli.Command{
		Name:    "json",
		Summary: "Validate and pretty-print JSON",
		Description: `Parse the input as JSON and write it back indented (or compact with
-c). Numbers are passed through verbatim, so large integers keep their
precision.

With --jsonc the input may contain // and /* */ comments and trailing
commas; the output is plain JSON.

Syntax errors exit with a validation error that names the offset.`,
		Usage:  "blobkit json [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Pretty-print", Command: `echo '{"a":[1,2]}' | blobkit json`},
			{Description: "Strip comments from a config", Command: "blobkit json --jsonc settings.jsonc"},
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			input, remaining, err := cli.ReadInput(streams, args)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return cli.Validation("json takes at most one file argument, got %q", remaining[0])
			}
			p := payload.New(input.Data, "application/json", input.Name)

			var raw json.RawMessage
			if params.JSONC {
				raw, err = payload.ParseJSONC[json.RawMessage](ctx, p)
			} else {
				raw, err = payload.ParseJSON[json.RawMessage](ctx, p)
			}
			if err != nil {
				return cli.FromFault(err)
			}
			return formatJSON(streams, raw, params.Compact)
		},
	}
}

func formatJSON(streams cli.Streams, raw json.RawMessage, compact bool) error {
	var formatted bytes.Buffer
	var err error
	if compact {
		err = json.Compact(&formatted, raw)
	} else {
		err = json.Indent(&formatted, raw, "", "  ")
	}
	if err != nil {
		return cli.Internal("formatting JSON: %w", err)
	}
	formatted.WriteByte('\n')
	_, err = streams.Out.Write(formatted.Bytes())
	return err
}
