// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/download"
	"github.com/bureau-foundation/blobkit/lib/payload"
)

type encodeParams struct {
	cli.JSONOutput
	ContentType string `json:"content_type" flag:"type,t" desc:"content type to report (default: inferred from the file name)"`
}

type encodeResult struct {
	Name        string `json:"name,omitempty"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Base64      string `json:"base64"`
}

// EncodeCommand returns the "encode" command.
func EncodeCommand(streams cli.Streams) *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode bytes as Base64",
		Description: `Read bytes from a file argument or stdin and write their standard
Base64 encoding (RFC 4648, padded, no line breaks) to stdout.

Empty input encodes to an empty line.`,
		Usage:  "blobkit encode [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Encode a file", Command: "blobkit encode photo.png"},
			{Description: "Encode stdin", Command: "printf abc | blobkit encode"},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			input, remaining, err := cli.ReadInput(streams, args)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return cli.Validation("encode takes at most one file argument, got %q", remaining[0])
			}
			p := payload.New(input.Data, params.ContentType, input.Name)
			encoded := payload.EncodeBase64(p)

			if done, err := params.EmitJSON(streams.Out, encodeResult{
				Name:        p.Name,
				ContentType: p.ContentType,
				Size:        p.Size(),
				Base64:      encoded,
			}); done {
				return err
			}
			_, err = fmt.Fprintln(streams.Out, encoded)
			return err
		},
	}
}

type decodeParams struct {
	Output      string `json:"output"       flag:"output,o" desc:"write the decoded bytes to this path instead of stdout"`
	ContentType string `json:"content_type" flag:"type,t"   desc:"content type of the decoded payload"`
}

// DecodeCommand returns the "decode" command.
func DecodeCommand(streams cli.Streams) *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode Base64 to bytes",
		Description: `Decode standard Base64 text and write the bytes to stdout, or to the
--output path (written atomically).

The text comes from the single argument when it does not name a file,
otherwise from the file, otherwise from stdin. Surrounding whitespace is
ignored; malformed input is rejected.`,
		Usage:  "blobkit decode [flags] [text|file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Decode a literal", Command: "blobkit decode YWJj"},
			{Description: "Decode to a file", Command: "blobkit decode -o photo.png < photo.b64"},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			text, err := textArgument(streams, args)
			if err != nil {
				return err
			}
			p, err := payload.DecodeBase64(strings.TrimSpace(text), params.ContentType)
			if err != nil {
				return cli.FromFault(err)
			}
			return writePayload(streams, p, params.Output, logger)
		},
	}
}

// textArgument returns the single literal argument when it does not
// name a file, otherwise the file or stdin contents.
func textArgument(streams cli.Streams, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		if info, err := os.Stat(args[0]); err != nil || info.IsDir() {
			return args[0], nil
		}
	}
	input, remaining, err := cli.ReadInput(streams, args)
	if err != nil {
		return "", err
	}
	if len(remaining) > 0 {
		return "", cli.Validation("expected one text or file argument, got %d", len(args))
	}
	return string(input.Data), nil
}

// writePayload writes p to stdout, or atomically to output when set.
func writePayload(streams cli.Streams, p payload.Payload, output string, logger *slog.Logger) error {
	if output == "" {
		_, err := streams.Out.Write(p.Data)
		return err
	}
	target := download.DirTarget{Dir: filepath.Dir(output)}
	if err := target.Save(filepath.Base(output), p.ContentType, p.Data); err != nil {
		return cli.Internal("writing %s: %w", output, err)
	}
	logger.Debug("decoded payload written", "path", output, "size", p.Size(), "content_type", p.ContentType)
	return nil
}
