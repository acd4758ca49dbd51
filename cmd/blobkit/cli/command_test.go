// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "blobkit",
		Subcommands: []*Command{
			{
				Name: "encode",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					called = "encode"
					return nil
				},
			},
			{
				Name: "decode",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					called = "decode"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"decode"}, nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "decode" {
		t.Errorf("dispatched to %q, want %q", called, "decode")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "blobkit",
		Subcommands: []*Command{
			{
				Name: "store",
				Subcommands: []*Command{
					{
						Name: "put",
						Run: func(_ context.Context, args []string, _ *slog.Logger) error {
							called = "store put"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"store", "put", "a.txt"}, nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "store put" {
		t.Errorf("dispatched to %q, want %q", called, "store put")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "a.txt" {
		t.Errorf("args = %v, want [a.txt]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	type params struct {
		Decimal  bool `flag:"decimal" desc:"SI units"`
		Decimals int  `flag:"decimals" desc:"fraction digits" default:"2"`
	}
	var p params
	var receivedArgs []string

	command := &Command{
		Name:   "size",
		Params: func() any { return &p },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			receivedArgs = args
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--decimal", "1536"}, nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !p.Decimal {
		t.Error("Decimal = false, want true")
	}
	if p.Decimals != 2 {
		t.Errorf("Decimals = %d, want default 2", p.Decimals)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "1536" {
		t.Errorf("args = %v, want [1536]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "blobkit",
		Subcommands: []*Command{
			{Name: "inspect", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
			{Name: "serve", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"inspcet"}, nil)
	if err == nil {
		t.Fatal("Execute() succeeded for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "inspect"`) {
		t.Errorf("error = %q, want suggestion for inspect", err)
	}
	var toolError *ToolError
	if !errors.As(err, &toolError) || toolError.Category != CategoryValidation {
		t.Errorf("error category = %v, want validation", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggests(t *testing.T) {
	type params struct {
		Algorithm string `flag:"algorithm,a" desc:"digest algorithm"`
	}
	var p params
	command := &Command{
		Name:   "hash",
		Params: func() any { return &p },
		Run:    func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--algoritm", "SHA-1"}, nil)
	if err == nil {
		t.Fatal("Execute() succeeded with unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --algorithm?") {
		t.Errorf("error = %q, want --algorithm suggestion", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:       "blobkit",
		HelpOutput: &help,
		Subcommands: []*Command{
			{Name: "store", Summary: "Manage the blob store", Subcommands: []*Command{
				{Name: "list", Summary: "List stored blobs", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
			}},
		},
	}

	err := root.Execute(context.Background(), []string{"store"}, nil)
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Fatalf("error = %v, want subcommand required", err)
	}
	if !strings.Contains(help.String(), "blobkit store <command>") || !strings.Contains(help.String(), "List stored blobs") {
		t.Errorf("help output missing usage or listing:\n%s", help.String())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	type params struct {
		JSONOutput
	}
	var p params
	var help bytes.Buffer
	ran := false
	command := &Command{
		Name:        "mime",
		Description: "Infer a content type from a filename.",
		HelpOutput:  &help,
		Params:      func() any { return &p },
		Examples:    []Example{{Description: "Look up a PNG", Command: "blobkit mime photo.png"}},
		Run: func(context.Context, []string, *slog.Logger) error {
			ran = true
			return nil
		},
	}

	for _, arg := range []string{"--help", "-h", "help"} {
		help.Reset()
		if err := command.Execute(context.Background(), []string{arg}, nil); err != nil {
			t.Fatalf("Execute(%s) error: %v", arg, err)
		}
		for _, want := range []string{"Infer a content type", "--json", "# Look up a PNG", "blobkit mime photo.png"} {
			if !strings.Contains(help.String(), want) {
				t.Errorf("help for %s missing %q:\n%s", arg, want, help.String())
			}
		}
	}
	if ran {
		t.Error("Run called for a help request")
	}
}

func TestCommand_Execute_RunFallbackReceivesUnknownName(t *testing.T) {
	var receivedArgs []string
	command := &Command{
		Name:        "dataurl",
		Subcommands: []*Command{{Name: "parse", Run: func(context.Context, []string, *slog.Logger) error { return nil }}},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			receivedArgs = args
			return nil
		},
	}
	if err := command.Execute(context.Background(), []string{"file.bin"}, nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "file.bin" {
		t.Errorf("args = %v, want [file.bin]", receivedArgs)
	}
}

func TestCommand_Execute_ScopesLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	root := &Command{
		Name: "blobkit",
		Subcommands: []*Command{{Name: "store", Subcommands: []*Command{{
			Name: "put",
			Run: func(_ context.Context, _ []string, logger *slog.Logger) error {
				logger.Info("stored")
				return nil
			},
		}}}},
	}
	if err := root.Execute(context.Background(), []string{"store", "put"}, logger); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(logs.String(), `"command":"store/put"`) {
		t.Errorf("log = %s, want command=store/put", logs.String())
	}
}
