// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
)

// Command returns the "store" command group.
func Command(streams cli.Streams) *cli.Command {
	return &cli.Command{
		Name:    "store",
		Summary: "Manage the content-addressed blob store",
		Description: `Store payloads by content and retrieve them by reference.

Blobs are addressed by keyed BLAKE3 hash and referred to as
"blob-<12 hex>"; any unique hex prefix of at least 4 characters, or the
full 64-character hash, also works. Storing the same bytes twice keeps
one copy.

Bodies are compressed per the store.compression policy (auto picks zstd
for text and probes binary data) and, when store.recipients lists age
public keys, encrypted at rest. Reading an encrypted blob needs the
matching identity file (--identity or store.identity_file).`,
		Subcommands: []*cli.Command{
			putCommand(streams),
			getCommand(streams),
			showCommand(streams),
			listCommand(streams),
			keygenCommand(streams),
		},
		Examples: []cli.Example{
			{Description: "Store two files", Command: "blobkit store put report.pdf data.csv"},
			{Description: "Fetch one back", Command: "blobkit store get blob-3f2a91c0d4e5 -o report.pdf"},
			{Description: "List everything", Command: "blobkit store list"},
		},
	}
}
