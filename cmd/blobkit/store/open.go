// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"log/slog"
	"os"

	"filippo.io/age"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/blobstore"
	"github.com/bureau-foundation/blobkit/lib/config"
)

// Open opens the store described by cfg. It is shared with the select
// and serve commands.
func Open(cfg *config.Config, logger *slog.Logger) (*blobstore.Store, error) {
	store, err := blobstore.Open(blobstore.Options{
		Root:        cfg.Store.Root,
		Compression: blobstore.Compression(cfg.Store.Compression),
		Recipients:  cfg.Store.Recipients,
		Logger:      logger,
	})
	if err != nil {
		return nil, cli.Internal("opening blob store %s: %w", cfg.Store.Root, err)
	}
	return store, nil
}

// Identities loads the age identities from override, or from the
// configured identity file when override is empty. No file configured
// means no identities.
func Identities(cfg *config.Config, override string) ([]age.Identity, error) {
	path := override
	if path == "" {
		path = cfg.Store.IdentityFile
	}
	if path == "" {
		return nil, nil
	}
	identities, err := blobstore.LoadIdentities(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cli.NotFound("identity file %s does not exist", path)
		}
		return nil, cli.Validation("%w", err)
	}
	return identities, nil
}

// classify maps store errors to CLI categories.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return cli.NotFound("%w", err).WithHint("Run 'blobkit store list' to see stored blobs.")
	case errors.Is(err, blobstore.ErrInvalidRef), errors.Is(err, blobstore.ErrAmbiguousRef):
		return cli.Validation("%w", err)
	case errors.Is(err, blobstore.ErrIdentityRequired):
		return cli.Validation("%w", err).WithHint("Pass --identity or set store.identity_file.")
	default:
		return cli.Internal("%w", err)
	}
}
