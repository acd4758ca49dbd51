// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/blobstore"
	"github.com/bureau-foundation/blobkit/lib/bytesize"
	"github.com/bureau-foundation/blobkit/lib/codec"
	"github.com/bureau-foundation/blobkit/lib/tui"
)

type showParams struct {
	cli.JSONOutput
	cli.ConfigFile
	CBOR bool `json:"cbor" flag:"cbor" desc:"print the metadata sidecar in CBOR diagnostic notation"`
}

func showCommand(streams cli.Streams) *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show a blob's metadata",
		Usage:   "blobkit store show [flags] <ref>",
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{Description: "Show metadata", Command: "blobkit store show blob-3f2a91c0d4e5"},
			{Description: "Inspect the raw sidecar", Command: "blobkit store show --cbor 3f2a"},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExpectArgs(args, 1, 1, "blobkit store show [flags] <ref>"); err != nil {
				return err
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			store, err := Open(cfg, logger)
			if err != nil {
				return err
			}

			if params.CBOR {
				raw, err := store.RawMetadata(args[0])
				if err != nil {
					return classify(err)
				}
				diagnostic, err := codec.Diagnose(raw)
				if err != nil {
					return cli.Internal("diagnosing sidecar: %w", err)
				}
				_, err = fmt.Fprintln(streams.Out, diagnostic)
				return err
			}

			meta, err := store.Stat(args[0])
			if err != nil {
				return classify(err)
			}
			if done, err := params.EmitJSON(streams.Out, meta); done {
				return err
			}
			_, err = fmt.Fprint(streams.Out, renderMetadata(meta, cli.IsTerminal(streams.Out)))
			return err
		},
	}
}

func renderMetadata(meta *blobstore.Metadata, styled bool) string {
	name, nameTone := meta.Name, tui.ToneNormal
	if name == "" {
		name, nameTone = "(unnamed)", tui.ToneFaint
	}
	encrypted, encryptedTone := "no", tui.ToneNormal
	if meta.Encrypted {
		encrypted, encryptedTone = "yes (age)", tui.ToneWarning
	}
	stored := fmt.Sprintf("%s (%s)", bytesize.Format(meta.StoredSize, false, 2), meta.Compression)
	return tui.RenderFields(tui.DefaultTheme, meta.Ref, []tui.Field{
		{Label: "Hash", Value: meta.Hash.String(), Tone: tui.ToneAccent},
		{Label: "Name", Value: name, Tone: nameTone},
		{Label: "Type", Value: meta.ContentType},
		{Label: "Size", Value: fmt.Sprintf("%s (%d bytes)", bytesize.Format(meta.Size, false, 2), meta.Size)},
		{Label: "Stored", Value: stored},
		{Label: "Encrypted", Value: encrypted, Tone: encryptedTone},
		{Label: "Stored at", Value: meta.StoredAt.UTC().Format(time.RFC3339)},
	}, styled)
}
