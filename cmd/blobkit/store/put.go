// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/blobstore"
	"github.com/bureau-foundation/blobkit/lib/bytesize"
	"github.com/bureau-foundation/blobkit/lib/payload"
	"github.com/bureau-foundation/blobkit/lib/tui"
)

type putParams struct {
	cli.JSONOutput
	cli.ConfigFile
	Name        string `json:"name"         flag:"name,n" desc:"name to record for stdin input"`
	ContentType string `json:"content_type" flag:"type,t" desc:"content type (default: inferred from the name)"`
}

func putCommand(streams cli.Streams) *cli.Command {
	var params putParams

	return &cli.Command{
		Name:    "put",
		Summary: "Store files or stdin",
		Description: `Store each file argument, or stdin when none is given, and print the
resulting references. Re-storing existing content returns the existing
entry unchanged.`,
		Usage:  "blobkit store put [flags] [file]...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Store a file", Command: "blobkit store put photo.png"},
			{Description: "Store stdin under a name", Command: "pg_dump db | blobkit store put --name db.sql"},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			store, err := Open(cfg, logger)
			if err != nil {
				return err
			}

			var files []payload.Payload
			if len(args) == 0 {
				file, err := payload.ReadAll(ctx, streams.In, params.Name, params.ContentType)
				if err != nil {
					return cli.FromFault(err)
				}
				files = append(files, file)
			}
			for _, path := range args {
				file, err := payload.FromFile(path)
				if errors.Is(err, os.ErrNotExist) {
					return cli.NotFound("%w", err)
				}
				if err != nil {
					return cli.Internal("%w", err)
				}
				if params.ContentType != "" {
					file.ContentType = params.ContentType
				}
				files = append(files, file)
			}

			stored := make([]*blobstore.Metadata, 0, len(files))
			for _, file := range files {
				meta, err := store.Put(file)
				if err != nil {
					return classify(err)
				}
				stored = append(stored, meta)
			}

			if done, err := params.EmitJSON(streams.Out, stored); done {
				return err
			}
			_, err = fmt.Fprint(streams.Out, RenderList(stored, cli.IsTerminal(streams.Out)))
			return err
		},
	}
}

// RenderList renders metadata as a table. It is shared with the
// select command.
func RenderList(entries []*blobstore.Metadata, styled bool) string {
	rows := make([][]string, len(entries))
	for i, meta := range entries {
		rows[i] = []string{
			meta.Ref,
			bytesize.Format(meta.Size, false, 1),
			string(meta.Compression),
			meta.ContentType,
			meta.Name,
		}
	}
	return tui.RenderTable(tui.DefaultTheme,
		[]string{"REF", "SIZE", "COMPRESSION", "TYPE", "NAME"},
		rows,
		[]tui.Tone{tui.ToneAccent, tui.ToneNormal, tui.ToneFaint},
		styled)
}
