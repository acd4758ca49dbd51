// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/bureau-foundation/blobkit/lib/config"
)

// ConfigFile is an embeddable struct that adds the --config flag to a
// command's parameter struct.
type ConfigFile struct {
	ConfigPath string `json:"-" flag:"config" desc:"path to blobkit.yaml (default: $BLOBKIT_CONFIG, else built-in defaults)"`
}

// LoadConfig loads and validates the configuration selected by
// --config, BLOBKIT_CONFIG, or the defaults, in that order.
func (c *ConfigFile) LoadConfig() (*config.Config, error) {
	cfg, err := config.Locate(c.ConfigPath)
	if err != nil {
		return nil, Validation("%w", err).WithHint("Check --config or " + config.EnvironmentVariable + ".")
	}
	if err := cfg.Validate(); err != nil {
		return nil, Validation("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// ExpectArgs returns a validation error unless args has between
// minimum and maximum elements. A negative maximum means unbounded.
func ExpectArgs(args []string, minimum, maximum int, usage string) error {
	if len(args) < minimum || (maximum >= 0 && len(args) > maximum) {
		return Validation("wrong number of arguments (got %d)", len(args)).WithHint(fmt.Sprintf("Usage: %s", usage))
	}
	return nil
}
