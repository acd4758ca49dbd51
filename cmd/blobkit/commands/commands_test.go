// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bureau-foundation/blobkit/cmd/blobkit/cli"
	"github.com/bureau-foundation/blobkit/lib/version"
)

func bufferStreams(stdin string) (cli.Streams, *bytes.Buffer) {
	var out bytes.Buffer
	return cli.Streams{In: strings.NewReader(stdin), Out: &out, Err: &bytes.Buffer{}}, &out
}

// walkCommands visits every command in the tree with its path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := append(append([]string(nil), path...), command.Name)
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}

func TestCommandTreeIsWellFormed(t *testing.T) {
	streams, _ := bufferStreams("")
	walkCommands(Root(streams), nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")
		if len(path) > 1 && command.Summary == "" {
			t.Errorf("%s: missing Summary", name)
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: neither Run nor Subcommands", name)
		}
		seen := make(map[string]bool)
		for _, sub := range command.Subcommands {
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", name, sub.Name)
			}
			seen[sub.Name] = true
		}
	})
}

func TestEveryCommandAcceptsHelp(t *testing.T) {
	streams, _ := bufferStreams("")
	var paths [][]string
	walkCommands(Root(streams), nil, func(command *cli.Command, path []string) {
		if command.Params != nil {
			paths = append(paths, path[1:])
		}
	})
	if len(paths) == 0 {
		t.Fatal("no commands with flags found")
	}
	for _, path := range paths {
		t.Run(strings.Join(path, "_"), func(t *testing.T) {
			streams, _ := bufferStreams("")
			root := Root(streams)
			var help bytes.Buffer
			root.HelpOutput = &help
			if err := root.Execute(context.Background(), append(path, "--help"), nil); err != nil {
				t.Fatalf("--help: %v", err)
			}
			if help.Len() == 0 {
				t.Error("no help output")
			}
		})
	}
}

func TestVersion(t *testing.T) {
	streams, out := bufferStreams("")
	if err := Root(streams).Execute(context.Background(), []string{"version"}, nil); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out.String(), "blobkit "+version.Current().Version) {
		t.Errorf("version output = %q", out.String())
	}

	streams, out = bufferStreams("")
	if err := Root(streams).Execute(context.Background(), []string{"version", "--json"}, nil); err != nil {
		t.Fatalf("version --json: %v", err)
	}
	var build version.Build
	if err := json.Unmarshal(out.Bytes(), &build); err != nil || build.Version == "" {
		t.Errorf("version --json = %q, %v", out.String(), err)
	}
}

func TestRootDispatchesToLeaf(t *testing.T) {
	streams, out := bufferStreams("abc")
	if err := Root(streams).Execute(context.Background(), []string{"encode"}, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out.String() != "YWJj\n" {
		t.Errorf("encode output = %q", out.String())
	}
}

func TestUnknownCommandSuggests(t *testing.T) {
	streams, _ := bufferStreams("")
	root := Root(streams)
	err := root.Execute(context.Background(), []string{"encdoe"}, nil)
	if err == nil || !strings.Contains(err.Error(), "encode") {
		t.Errorf("error = %v, want a suggestion for encode", err)
	}
}
