// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/digest"
)

type hashParams struct {
	cli.JSONOutput
	Algorithm string `json:"algorithm" flag:"algorithm,a" desc:"SHA-256, SHA-1, SHA-384, or SHA-512 (case and hyphen optional)" default:"SHA-256"`
}

type hashResult struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

// HashCommand returns the "hash" command.
func HashCommand(streams cli.Streams) *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "hash",
		Summary: "Compute payload digests",
		Description: `Print the lowercase hex digest of each file, or of stdin when no file
is given, in the "<digest>  <name>" layout of sha256sum. Files are
streamed, so their size is not limited by memory. Stdin is named "-".`,
		Usage:  "blobkit hash [flags] [file]...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "SHA-256 of a file", Command: "blobkit hash release.tar.gz"},
			{Description: "SHA-1 of stdin", Command: "printf abc | blobkit hash -a sha1"},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			algorithm, err := digest.ParseAlgorithm(params.Algorithm)
			if err != nil {
				return cli.FromFault(err)
			}

			var results []hashResult
			if len(args) == 0 {
				value, err := digest.ComputeReader(ctx, digest.Standard(), string(algorithm), streams.In)
				if err != nil {
					return cli.FromFault(err)
				}
				results = append(results, hashResult{Name: "-", Algorithm: string(algorithm), Digest: value})
			}
			for _, path := range args {
				value, err := hashFile(ctx, algorithm, path)
				if err != nil {
					return err
				}
				logger.Debug("hashed file", "path", path, "algorithm", algorithm)
				results = append(results, hashResult{Name: path, Algorithm: string(algorithm), Digest: value})
			}

			if done, err := params.EmitJSON(streams.Out, results); done {
				return err
			}
			for _, result := range results {
				fmt.Fprintf(streams.Out, "%s  %s\n", result.Digest, result.Name)
			}
			return nil
		},
	}
}

func hashFile(ctx context.Context, algorithm digest.Algorithm, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", cli.NotFound("%s: no such file", path)
		}
		return "", cli.Internal("opening %s: %w", path, err)
	}
	defer file.Close()

	value, err := digest.ComputeReader(ctx, digest.Standard(), string(algorithm), file)
	if err != nil {
		return "", cli.FromFault(fmt.Errorf("%s: %w", path, err))
	}
	return value, nil
}
