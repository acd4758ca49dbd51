// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads blobkit's YAML configuration.
//
// The file is named by the --config flag or the BLOBKIT_CONFIG
// environment variable. There is no search path and no ~/.config
// discovery: [Locate] loads the explicitly named file, or returns
// [Default] when neither is set, so what a command runs with is always
// visible on its command line or in its environment.
//
// A file may carry development and production sections that override
// base values when [Config].Environment matches.
//
// Path fields accept ${HOME}, ${BLOBKIT_ROOT} (the store root), and
// ${VAR:-default}. No other environment variable overrides a value.
//
// [Config.Validate] reports every problem at once with errors.Join.
//
// This package depends only on lib/bytesize.
package config
