// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/download"
)

type getParams struct {
	cli.ConfigFile
	Output    string `json:"output"     flag:"output,o"     desc:"write the blob to this path instead of stdout"`
	OutputDir string `json:"output_dir" flag:"output-dir,O" desc:"write the blob into this directory under its stored name"`
	Identity  string `json:"identity"   flag:"identity,i"   desc:"age identity file for encrypted blobs (default: store.identity_file)"`
}

func getCommand(streams cli.Streams) *cli.Command {
	var params getParams

	return &cli.Command{
		Name:    "get",
		Summary: "Retrieve a blob",
		Description: `Write the stored bytes for a reference to stdout, to --output, or into
--output-dir under the name recorded at put time (the reference when no
name was recorded). The content hash is verified before anything is
written.`,
		Usage:  "blobkit store get [flags] <ref>",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Print a blob", Command: "blobkit store get blob-3f2a91c0d4e5"},
			{Description: "Save under the original name", Command: "blobkit store get -O ~/Downloads 3f2a"},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExpectArgs(args, 1, 1, "blobkit store get [flags] <ref>"); err != nil {
				return err
			}
			if params.Output != "" && params.OutputDir != "" {
				return cli.Validation("--output and --output-dir are mutually exclusive")
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			identities, err := Identities(cfg, params.Identity)
			if err != nil {
				return err
			}
			store, err := Open(cfg, logger)
			if err != nil {
				return err
			}

			file, meta, err := store.Get(args[0], identities)
			if err != nil {
				return classify(err)
			}

			var target download.DirTarget
			var name string
			switch {
			case params.Output != "":
				target, name = download.DirTarget{Dir: filepath.Dir(params.Output)}, filepath.Base(params.Output)
			case params.OutputDir != "":
				name = meta.Name
				if name == "" {
					name = meta.Ref
				}
				target = download.DirTarget{Dir: params.OutputDir}
			default:
				_, err := streams.Out.Write(file.Data)
				return err
			}
			if err := target.Save(name, file.ContentType, file.Data); err != nil {
				return cli.Internal("saving %s: %w", meta.Ref, err)
			}
			logger.Info("blob saved", "ref", meta.Ref, "path", filepath.Join(target.Dir, filepath.Base(name)))
			return nil
		},
	}
}
