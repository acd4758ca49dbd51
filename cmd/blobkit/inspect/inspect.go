// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/blobstore"
	"github.com/bureau-foundation/blobkit/lib/bytesize"
	"github.com/bureau-foundation/blobkit/lib/digest"
	"github.com/bureau-foundation/blobkit/lib/mimetype"
	"github.com/bureau-foundation/blobkit/lib/payload"
	"github.com/bureau-foundation/blobkit/lib/tui"
)

type inspectParams struct {
	cli.JSONOutput
	ContentType string `json:"content_type" flag:"type,t"      desc:"content type (default: inferred from the file name)"`
	Algorithm   string `json:"algorithm"    flag:"algorithm,a" desc:"digest algorithm" default:"SHA-256"`
}

// Summary describes one payload.
type Summary struct {
	Name        string `json:"name,omitempty"`
	ContentType string `json:"content_type"`
	Extension   string `json:"extension,omitempty"`
	Textual     bool   `json:"textual"`
	Size        int64  `json:"size"`
	HumanSize   string `json:"human_size"`
	Algorithm   string `json:"algorithm"`
	Digest      string `json:"digest"`
	Ref         string `json:"ref"`
	Compression string `json:"compression"`
}

// InspectCommand returns the "inspect" command.
func InspectCommand(streams cli.Streams) *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Summarize a payload",
		Description: `Print what blobkit knows about a payload: its name, inferred content
type and extension, size, digest, the blob reference it would be
stored under, and the compression the store would choose for it.

On a terminal the summary is framed and colored; piped output is plain
aligned text. Use --json for scripts.`,
		Usage:  "blobkit inspect [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Inspect a file", Command: "blobkit inspect photo.png"},
			{Description: "Inspect stdin as JSON", Command: "curl -s https://example.com/data | blobkit inspect -t application/json --json"},
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			input, remaining, err := cli.ReadInput(streams, args)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return cli.Validation("inspect takes at most one file argument, got %q", remaining[0])
			}
			summary, err := Summarize(ctx, payload.New(input.Data, params.ContentType, input.Name), params.Algorithm)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(streams.Out, summary); done {
				return err
			}
			_, err = fmt.Fprint(streams.Out, RenderSummary(summary, cli.IsTerminal(streams.Out)))
			return err
		},
	}
}

// Summarize computes the Summary of p.
func Summarize(ctx context.Context, p payload.Payload, algorithm string) (Summary, error) {
	parsed, err := digest.ParseAlgorithm(algorithm)
	if err != nil {
		return Summary{}, cli.FromFault(err)
	}
	value, err := digest.Compute(ctx, digest.Standard(), string(parsed), p)
	if err != nil {
		return Summary{}, cli.FromFault(err)
	}
	extension, _ := mimetype.Extension(p.Name)
	return Summary{
		Name:        p.Name,
		ContentType: p.ContentType,
		Extension:   extension,
		Textual:     mimetype.IsTextual(p.ContentType),
		Size:        p.Size(),
		HumanSize:   bytesize.Format(p.Size(), false, 2),
		Algorithm:   string(parsed),
		Digest:      value,
		Ref:         blobstore.HashContent(p.Data).Ref(),
		Compression: string(blobstore.SelectCompression(p.Data, p.ContentType)),
	}, nil
}

// RenderSummary renders summary as a field block.
func RenderSummary(summary Summary, styled bool) string {
	title := summary.Name
	if title == "" {
		title = "(stdin)"
	}
	extension := summary.Extension
	extensionTone := tui.ToneNormal
	if extension == "" {
		extension = "none"
		extensionTone = tui.ToneFaint
	}
	textual := "no"
	if summary.Textual {
		textual = "yes"
	}
	return tui.RenderFields(tui.DefaultTheme, title, []tui.Field{
		{Label: "Type", Value: summary.ContentType},
		{Label: "Extension", Value: extension, Tone: extensionTone},
		{Label: "Textual", Value: textual},
		{Label: "Size", Value: fmt.Sprintf("%s (%d bytes)", summary.HumanSize, summary.Size)},
		{Label: summary.Algorithm, Value: summary.Digest, Tone: tui.ToneAccent},
		{Label: "Ref", Value: summary.Ref, Tone: tui.ToneAccent},
		{Label: "Compression", Value: summary.Compression, Tone: tui.ToneFaint},
	}, styled)
}
