// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/atomicfile"
	"github.com/bureau-foundation/blobkit/lib/blobstore"
	"github.com/bureau-foundation/blobkit/lib/clock"
)

type keygenParams struct {
	Output string `json:"output" flag:"output,o" desc:"write the identity to this file (mode 0600) instead of stdout"`
}

func keygenCommand(streams cli.Streams) *cli.Command {
	var params keygenParams

	return &cli.Command{
		Name:    "keygen",
		Summary: "Generate an age identity for encryption at rest",
		Description: `Generate an X25519 age identity in age-keygen format. Add the printed
public key to store.recipients to encrypt new blobs, and point
store.identity_file at the identity to read them back.

With --output the identity is written atomically with mode 0600 and the
public key is printed to stderr.`,
		Usage:  "blobkit store keygen [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Create a key file", Command: "blobkit store keygen -o ~/.config/blobkit/identity.txt"},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExpectArgs(args, 0, 0, "blobkit store keygen [flags]"); err != nil {
				return err
			}
			secretKey, recipient, err := blobstore.GenerateIdentity()
			if err != nil {
				return cli.Internal("%w", err)
			}
			contents := fmt.Sprintf("# created: %s\n# public key: %s\n%s\n",
				clock.Real().Now().UTC().Format("2006-01-02T15:04:05Z"), recipient, secretKey)

			if params.Output == "" {
				_, err := fmt.Fprint(streams.Out, contents)
				return err
			}
			if err := atomicfile.Write(filepath.Dir(params.Output), ".identity-*", params.Output, []byte(contents), 0o600); err != nil {
				return cli.Internal("writing identity: %w", err)
			}
			logger.Info("identity written", "path", params.Output)
			_, err = fmt.Fprintf(streams.Err, "Public key: %s\n", recipient)
			return err
		},
	}
}
