// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/blobkit/lib/bytesize"
)

// EnvironmentVariable names the variable Load reads.
const EnvironmentVariable = "BLOBKIT_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Config is the complete blobkit configuration.
type Config struct {
	Environment Environment `yaml:"environment"`

	// Store configures the content-addressed blob store.
	Store StoreConfig `yaml:"store"`

	// Upload configures the HTTP upload service.
	Upload UploadConfig `yaml:"upload"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`

	// Per-environment overrides, applied after the base values.
	Development *Overrides `yaml:"development,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// Overrides holds the fields an environment section may replace.
// Empty strings leave the base value alone.
type Overrides struct {
	Store  *StoreConfig  `yaml:"store,omitempty"`
	Upload *UploadConfig `yaml:"upload,omitempty"`
	Log    *LogConfig    `yaml:"log,omitempty"`
}

// StoreConfig configures the blob store.
type StoreConfig struct {
	// Root is the store directory.
	// Default: ${HOME}/.cache/blobkit/store
	Root string `yaml:"root"`

	// Compression is auto, none, lz4, or zstd. Default: auto.
	Compression string `yaml:"compression"`

	// Recipients are age X25519 public keys. When set, blobs are
	// encrypted at rest to all of them.
	Recipients []string `yaml:"recipients,omitempty"`

	// IdentityFile is an age key file used to read encrypted blobs.
	IdentityFile string `yaml:"identity_file,omitempty"`
}

// UploadConfig configures the HTTP upload service.
type UploadConfig struct {
	// Address is the listen address. Default: 127.0.0.1:8470
	Address string `yaml:"address"`

	// MaxUploadSize bounds one request body, as a human size such as
	// "32MiB". Default: 32MiB
	MaxUploadSize string `yaml:"max_upload_size"`

	// GraceDelay is the focus-heuristic delay used by interactive
	// selection. Default: 300ms
	GraceDelay string `yaml:"grace_delay"`

	// Accept optionally restricts uploads with an HTML-style accept
	// filter (".png,image/*"). Empty accepts everything.
	Accept string `yaml:"accept,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn, or error. Default: info
	Level string `yaml:"level"`
}

// Default returns the development defaults. LoadFile starts from these
// before applying the file.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Environment: Development,
		Store: StoreConfig{
			Root:        filepath.Join(homeDir, ".cache", "blobkit", "store"),
			Compression: "auto",
		},
		Upload: UploadConfig{
			Address:       "127.0.0.1:8470",
			MaxUploadSize: "32MiB",
			GraceDelay:    "300ms",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load loads the file named by BLOBKIT_CONFIG. Fails if it is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your blobkit.yaml, or use --config", EnvironmentVariable)
	}
	return LoadFile(path)
}

// Locate loads flagPath when non-empty, else the BLOBKIT_CONFIG file
// when set, else returns Default().
func Locate(flagPath string) (*Config, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}
	cfg := Default()
	cfg.expandVariables()
	return cfg, nil
}

// LoadFile loads path over the defaults, applies the matching
// environment section, and expands variables in path fields.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if store := overrides.Store; store != nil {
		override(&c.Store.Root, store.Root)
		override(&c.Store.Compression, store.Compression)
		override(&c.Store.IdentityFile, store.IdentityFile)
		if len(store.Recipients) > 0 {
			c.Store.Recipients = store.Recipients
		}
	}
	if upload := overrides.Upload; upload != nil {
		override(&c.Upload.Address, upload.Address)
		override(&c.Upload.MaxUploadSize, upload.MaxUploadSize)
		override(&c.Upload.GraceDelay, upload.GraceDelay)
		override(&c.Upload.Accept, upload.Accept)
	}
	if log := overrides.Log; log != nil {
		override(&c.Log.Level, log.Level)
	}
}

func override(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Store.Root = expandVars(c.Store.Root, vars)
	vars["BLOBKIT_ROOT"] = c.Store.Root
	c.Store.IdentityFile = expandVars(c.Store.IdentityFile, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars replaces ${VAR} and ${VAR:-default}. Provided vars take
// precedence over the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		name, defaultValue := parts[1], parts[2]
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks every field and joins all problems.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %q", c.Environment))
	}
	if c.Store.Root == "" {
		errs = append(errs, errors.New("store.root is required"))
	}
	switch c.Store.Compression {
	case "auto", "none", "lz4", "zstd":
	default:
		errs = append(errs, fmt.Errorf("store.compression must be one of auto, none, lz4, zstd; got %q", c.Store.Compression))
	}
	if c.Upload.Address == "" {
		errs = append(errs, errors.New("upload.address is required"))
	}
	if _, err := c.MaxUploadBytes(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.GraceDelay(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// MaxUploadBytes parses upload.max_upload_size.
func (c *Config) MaxUploadBytes() (int64, error) {
	size, err := bytesize.Parse(c.Upload.MaxUploadSize)
	if err != nil {
		return 0, fmt.Errorf("upload.max_upload_size: %w", err)
	}
	if size <= 0 {
		return 0, fmt.Errorf("upload.max_upload_size must be positive, got %q", c.Upload.MaxUploadSize)
	}
	return size, nil
}

// GraceDelay parses upload.grace_delay.
func (c *Config) GraceDelay() (time.Duration, error) {
	delay, err := time.ParseDuration(c.Upload.GraceDelay)
	if err != nil {
		return 0, fmt.Errorf("upload.grace_delay: %w", err)
	}
	if delay <= 0 {
		return 0, fmt.Errorf("upload.grace_delay must be positive, got %q", c.Upload.GraceDelay)
	}
	return delay, nil
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// EnsurePaths creates the store root.
func (c *Config) EnsurePaths() error {
	if err := os.MkdirAll(c.Store.Root, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Store.Root, err)
	}
	return nil
}
