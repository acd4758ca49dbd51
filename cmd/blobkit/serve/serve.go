// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/cmd/blobkit/store"
	"github.com/bureau-foundation/blobkit/lib/bytesize"
	"github.com/bureau-foundation/blobkit/lib/service"
	"github.com/bureau-foundation/blobkit/lib/uploadservice"
	"github.com/bureau-foundation/blobkit/lib/version"
)

type serveParams struct {
	cli.ConfigFile
	Address       string `json:"address"         flag:"address"         desc:"listen address (default: upload.address)"`
	MaxUploadSize string `json:"max_upload_size" flag:"max-upload-size" desc:"request body limit such as 64MiB (default: upload.max_upload_size)"`
	Identity      string `json:"identity"        flag:"identity,i"      desc:"age identity file for serving encrypted blobs (default: store.identity_file)"`
}

// Command returns the "serve" command.
func Command(streams cli.Streams) *cli.Command {
	var params serveParams

	return &cli.Command{
		Name:    "serve",
		Summary: "Run the HTTP upload service",
		Description: `Serve the upload API over the configured blob store:

  POST /input     multipart form files, as from a file input
  POST /drop      one or more files as a drop
  POST /dataurl   {"data_url": "...", "name": "..."}
  GET  /blobs     list stored blobs
  GET  /blobs/REF download one blob as an attachment

Logs are JSON on stderr. The resolved address is printed to stdout once
the listener is bound. SIGINT or SIGTERM drains in-flight requests and
exits.`,
		Usage:  "blobkit serve [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Serve on the configured address", Command: "blobkit serve"},
			{Description: "Pick a free port", Command: "blobkit serve --address 127.0.0.1:0"},
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			if err := cli.ExpectArgs(args, 0, 0, "blobkit serve [flags]"); err != nil {
				return err
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			if params.Address != "" {
				cfg.Upload.Address = params.Address
			}
			if params.MaxUploadSize != "" {
				cfg.Upload.MaxUploadSize = params.MaxUploadSize
			}
			maxUploadSize, err := cfg.MaxUploadBytes()
			if err != nil {
				return cli.Validation("%w", err)
			}
			level, err := cfg.LogLevel()
			if err != nil {
				return cli.Validation("%w", err)
			}
			logger := service.NewLoggerTo(streams.Err, level)

			if err := cfg.EnsurePaths(); err != nil {
				return cli.Internal("%w", err)
			}
			identities, err := store.Identities(cfg, params.Identity)
			if err != nil {
				return err
			}
			blobs, err := store.Open(cfg, logger)
			if err != nil {
				return err
			}

			build := version.Current()
			logger.Info("starting blobkit upload service",
				"version", build.Version,
				"commit", build.Commit,
				"environment", cfg.Environment,
				"store", cfg.Store.Root,
				"encrypted", blobs.Encrypted(),
				"identities", len(identities),
				"max_upload_size", bytesize.Format(maxUploadSize, false, 0),
			)

			handler := uploadservice.NewHandler(uploadservice.Config{
				Store:         blobs,
				Identities:    identities,
				MaxUploadSize: maxUploadSize,
				Accept:        cfg.Upload.Accept,
				Logger:        logger,
			})
			server := service.NewHTTPServer(service.HTTPServerConfig{
				Address: cfg.Upload.Address,
				Handler: handler,
				Logger:  logger,
			})

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			go func() {
				select {
				case <-server.Ready():
					fmt.Fprintf(streams.Out, "Serving on http://%s\n", server.Addr())
				case <-ctx.Done():
				}
			}()

			if err := server.Serve(ctx); err != nil {
				return cli.Internal("%w", err)
			}
			return nil
		},
	}
}
