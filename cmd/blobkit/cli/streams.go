// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Streams are the standard input and output a command tree uses.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StandardStreams returns the process's stdin, stdout, and stderr.
func StandardStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Input is one command input: the bytes plus the name they came from
// ("" for stdin).
type Input struct {
	Data []byte
	Name string
}

// ReadInput reads the input from the last element of args, if it
// names a regular file on disk, or from streams.In otherwise. "-"
// explicitly selects stdin. Returns the input and the args with any
// consumed path removed.
func ReadInput(streams Streams, args []string) (Input, []string, error) {
	if length := len(args); length > 0 {
		candidate := args[length-1]
		if candidate == "-" {
			return readStdin(streams, args[:length-1])
		}
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			data, err := os.ReadFile(candidate)
			if err != nil {
				return Input{}, nil, Internal("read %s: %w", candidate, err)
			}
			return Input{Data: data, Name: filepath.Base(candidate)}, args[:length-1], nil
		}
	}
	return readStdin(streams, args)
}

func readStdin(streams Streams, remaining []string) (Input, []string, error) {
	if streams.In == nil {
		return Input{}, nil, fmt.Errorf("no input: stdin is not available")
	}
	data, err := io.ReadAll(streams.In)
	if err != nil {
		return Input{}, nil, Internal("read stdin: %w", err)
	}
	return Input{Data: data}, remaining, nil
}
