// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/cmd/blobkit/store"
	"github.com/bureau-foundation/blobkit/lib/blobstore"
	"github.com/bureau-foundation/blobkit/lib/bytesize"
	"github.com/bureau-foundation/blobkit/lib/payload"
	"github.com/bureau-foundation/blobkit/lib/tui"
	"github.com/bureau-foundation/blobkit/lib/upload"
	"github.com/bureau-foundation/blobkit/lib/upload/pathdialog"
)

type selectParams struct {
	cli.JSONOutput
	cli.ConfigFile
	Accept   string        `json:"accept"   flag:"accept,a"   desc:"accept filter such as .png,image/* (default: upload.accept)"`
	Multiple bool          `json:"multiple" flag:"multiple,m" desc:"allow more than one file"`
	Grace    time.Duration `json:"grace"    flag:"grace"      desc:"focus grace delay (default: upload.grace_delay)"`
	Store    bool          `json:"store"    flag:"store,s"    desc:"store the selected files and print their references"`
}

// selected describes one chosen file in --json output.
type selected struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Ref         string `json:"ref,omitempty"`
}

// Command returns the "select" command.
func Command(streams cli.Streams) *cli.Command {
	var params selectParams

	return &cli.Command{
		Name:    "select",
		Summary: "Choose files interactively",
		Description: `Prompt on stderr for file paths and read one line from stdin. Paths
are whitespace separated; without --multiple only the first accepted
file is kept. Files outside the accept filter are skipped.

End of input dismisses the picker (exit 4). An empty line, or a line
where every file was filtered out, is an empty selection (also exit 4).
With --store the chosen files go into the blob store.`,
		Usage:  "blobkit select [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Pick one image", Command: "blobkit select --accept image/*"},
			{Description: "Pick and store several files", Command: "blobkit select -m --store"},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExpectArgs(args, 0, 0, "blobkit select [flags]"); err != nil {
				return err
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			grace := params.Grace
			if grace <= 0 {
				if grace, err = cfg.GraceDelay(); err != nil {
					return cli.Validation("%w", err)
				}
			}
			accept := params.Accept
			if accept == "" {
				accept = cfg.Upload.Accept
			}

			var blobs *blobstore.Store
			if params.Store {
				if blobs, err = store.Open(cfg, logger); err != nil {
					return err
				}
			}

			coordinator := upload.New(upload.Options{Logger: logger})
			defer coordinator.Destroy()

			var (
				results   []selected
				stored    []*blobstore.Metadata
				handleErr error
				cancelled bool
			)
			coordinator.OnChange(func(files []payload.Payload) {
				for _, file := range files {
					entry := selected{Name: file.Name, ContentType: file.ContentType, Size: file.Size()}
					if blobs != nil {
						meta, err := blobs.Put(file)
						if err != nil {
							handleErr = cli.Internal("storing %s: %w", file.Name, err)
							return
						}
						entry.Ref = meta.Ref
						stored = append(stored, meta)
					}
					results = append(results, entry)
				}
			})
			coordinator.OnCancel(func() { cancelled = true })
			coordinator.OnError(func(err error) {
				logger.Debug("selection failed", "error", err)
			})

			dialog := pathdialog.New(streams.In, streams.Err, logger)
			_, err = coordinator.OpenFileSelectionDialog(ctx, dialog, upload.SelectOptions{
				Accept:     accept,
				Multiple:   params.Multiple,
				GraceDelay: grace,
			})
			switch {
			case cancelled:
				return cli.Cancelled("file selection cancelled")
			case errors.Is(err, context.Canceled):
				return cli.Cancelled("file selection interrupted")
			case errors.Is(err, os.ErrNotExist):
				return cli.NotFound("%w", err)
			case err != nil:
				return cli.FromFault(err)
			case handleErr != nil:
				return handleErr
			}

			if done, err := params.EmitJSON(streams.Out, results); done {
				return err
			}
			styled := cli.IsTerminal(streams.Out)
			if blobs != nil {
				_, err = fmt.Fprint(streams.Out, store.RenderList(stored, styled))
				return err
			}
			rows := make([][]string, len(results))
			for i, entry := range results {
				rows[i] = []string{entry.Name, entry.ContentType, bytesize.Format(entry.Size, false, 1)}
			}
			_, err = fmt.Fprint(streams.Out, tui.RenderTable(tui.DefaultTheme,
				[]string{"NAME", "TYPE", "SIZE"}, rows, []tui.Tone{tui.ToneAccent}, styled))
			return err
		},
	}
}
