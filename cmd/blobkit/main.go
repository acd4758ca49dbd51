// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/cmd/blobkit/commands"
)

// logLevelVariable overrides the command log level (debug, info, warn,
// error). "serve" logs at log.level from the config file instead.
const logLevelVariable = "BLOBKIT_LOG_LEVEL"

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like ext) return an
		// ExitError with the desired exit code. Don't print a redundant
		// "error:" line for those.
		var exitError *cli.ExitError
		if errors.As(err, &exitError) {
			os.Exit(exitError.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := slog.LevelWarn
	if value := os.Getenv(logLevelVariable); value != "" {
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return cli.Validation("%s: %w", logLevelVariable, err)
		}
	}

	root := commands.Root(cli.StandardStreams())
	root.HelpOutput = os.Stderr
	return root.Execute(ctx, os.Args[1:], cli.NewCommandLogger(level))
}
