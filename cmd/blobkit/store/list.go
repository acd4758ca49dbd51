// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
)

type listParams struct {
	cli.JSONOutput
	cli.ConfigFile
}

func listCommand(streams cli.Streams) *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List stored blobs",
		Description: `List every stored blob, oldest first. Only metadata sidecars are read,
so listing is cheap regardless of blob sizes.`,
		Usage:  "blobkit store list [flags]",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExpectArgs(args, 0, 0, "blobkit store list [flags]"); err != nil {
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
			entries, err := store.List()
			if err != nil {
				return classify(err)
			}
			if done, err := params.EmitJSON(streams.Out, entries); done {
				return err
			}
			_, err = fmt.Fprint(streams.Out, RenderList(entries, cli.IsTerminal(streams.Out)))
			return err
		},
	}
}
