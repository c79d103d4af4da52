// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invowk/benchsuite/internal/issue"
)

type (
	// LoadOptions selects the config file to read.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		// The file must exist.
		ConfigFilePath string
		// ConfigDirPath overrides the platform config directory when set.
		ConfigDirPath string
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
	}

	fileProvider struct{}
)

// NewProvider creates a provider that reads config.cue from disk.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load resolves the config file, then layers it over the defaults. A missing
// file in the config directory is not an error; a missing explicit file is.
// The returned Config's Source names the file actually read.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config canceled: %w", err)
	}

	path, exists, err := ResolvePath(opts)
	if err != nil {
		return nil, err
	}

	switch {
	case exists:
		return load(ctx, path)
	case opts.ConfigFilePath != "":
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Run without --config to use the built-in parameters").
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	default:
		return load(ctx, "")
	}
}

// ResolvePath returns the config file that Load would read and whether it
// exists. An explicit ConfigFilePath is returned as-is even when missing.
func ResolvePath(opts LoadOptions) (string, bool, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, fileExists(opts.ConfigFilePath), nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		var err error
		if cfgDir, err = ConfigDir(); err != nil {
			return "", false, err
		}
	}

	cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	return cuePath, fileExists(cuePath), nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
