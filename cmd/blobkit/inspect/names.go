// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/bytesize"
	"github.com/bureau-foundation/blobkit/lib/mimetype"
)

type mimeParams struct {
	cli.JSONOutput
}

type mimeResult struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
}

// MimeCommand returns the "mime" command.
func MimeCommand(streams cli.Streams) *cli.Command {
	var params mimeParams

	return &cli.Command{
		Name:    "mime",
		Summary: "Infer content types from filenames",
		Description: `Print the content type inferred from each filename's extension. The
lookup is case-insensitive and never fails: unknown or missing
extensions report application/octet-stream. Files are not opened.`,
		Usage:  "blobkit mime [flags] <name>...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Look up two names", Command: "blobkit mime report.PDF notes"},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if err := cli.ExpectArgs(args, 1, -1, "blobkit mime <name>..."); err != nil {
				return err
			}
			results := make([]mimeResult, len(args))
			for i, name := range args {
				results[i] = mimeResult{Name: name, ContentType: mimetype.FromFilename(name)}
			}
			if done, err := params.EmitJSON(streams.Out, results); done {
				return err
			}
			for _, result := range results {
				if len(results) == 1 {
					fmt.Fprintln(streams.Out, result.ContentType)
				} else {
					fmt.Fprintf(streams.Out, "%s\t%s\n", result.Name, result.ContentType)
				}
			}
			return nil
		},
	}
}

type extParams struct {
	cli.JSONOutput
}

type extResult struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Found     bool   `json:"found"`
}

// ExtCommand returns the "ext" command.
func ExtCommand(streams cli.Streams) *cli.Command {
	var params extParams

	return &cli.Command{
		Name:    "ext",
		Summary: "Extract filename extensions",
		Description: `Print the extension of each name: the text after the last dot, in its
original case. A name has no extension when it contains no dot, when
its only dot is the first character (".bashrc"), or when it ends in a
dot.

Exits 1 when any name has no extension.`,
		Usage:  "blobkit ext [flags] <name>...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Get an extension", Command: "blobkit ext archive.tar.gz"},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if err := cli.ExpectArgs(args, 1, -1, "blobkit ext <name>..."); err != nil {
				return err
			}
			results := make([]extResult, len(args))
			missing := false
			for i, name := range args {
				extension, found := mimetype.Extension(name)
				results[i] = extResult{Name: name, Extension: extension, Found: found}
				missing = missing || !found
			}

			done, err := params.EmitJSON(streams.Out, results)
			if err != nil {
				return err
			}
			for _, result := range results {
				if done || !result.Found {
					continue
				}
				if len(results) == 1 {
					fmt.Fprintln(streams.Out, result.Extension)
				} else {
					fmt.Fprintf(streams.Out, "%s\t%s\n", result.Name, result.Extension)
				}
			}
			if missing {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

type sizeParams struct {
	cli.JSONOutput
	Decimal  bool `json:"decimal"  flag:"decimal,d" desc:"use SI units (KB = 1000 bytes) instead of binary (KiB = 1024)"`
	Decimals int  `json:"decimals" flag:"decimals"  desc:"maximum fraction digits" default:"2"`
}

type sizeResult struct {
	Bytes int64  `json:"bytes"`
	Human string `json:"human"`
}

// SizeCommand returns the "size" command.
func SizeCommand(streams cli.Streams) *cli.Command {
	var params sizeParams

	return &cli.Command{
		Name:    "size",
		Summary: "Format byte counts for humans",
		Description: `Format each byte count with the largest unit that keeps the value
below 1024 (or 1000 with --decimal). Trailing zeros are trimmed, so
1024 prints as "1 KiB".

Arguments may themselves be human sizes ("1.5GiB", "200MB"), which
normalizes between unit systems.`,
		Usage:  "blobkit size [flags] <bytes>...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Binary units", Command: "blobkit size 1536"},
			{Description: "Convert to SI units", Command: "blobkit size --decimal 1GiB"},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if err := cli.ExpectArgs(args, 1, -1, "blobkit size <bytes>..."); err != nil {
				return err
			}
			results := make([]sizeResult, len(args))
			for i, arg := range args {
				count, err := parseCount(arg)
				if err != nil {
					return err
				}
				results[i] = sizeResult{Bytes: count, Human: bytesize.Format(count, params.Decimal, params.Decimals)}
			}
			if done, err := params.EmitJSON(streams.Out, results); done {
				return err
			}
			for _, result := range results {
				fmt.Fprintln(streams.Out, result.Human)
			}
			return nil
		},
	}
}

// parseCount accepts a plain integer (possibly negative) or a human size.
func parseCount(arg string) (int64, error) {
	if count, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64); err == nil {
		return count, nil
	}
	count, err := bytesize.Parse(arg)
	if err != nil {
		return 0, cli.Validation("%q is not a byte count: %w", arg, err)
	}
	return count, nil
}
