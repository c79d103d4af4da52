// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/invowk/benchsuite/internal/issue"
	"github.com/invowk/benchsuite/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "benchsuite"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides (BENCHSUITE_PARAMS_SIEVE).
	EnvPrefix = "BENCHSUITE"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the benchsuite configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// load builds the effective configuration: built-in defaults, then the CUE
// file at path (skipped when path is ""), then BENCHSUITE_* environment
// variables. The result records path as its Source.
func load(ctx context.Context, path string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config canceled: %w", err)
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("params.fibonacci", defaults.Params.Fibonacci)
	v.SetDefault("params.sieve", defaults.Params.Sieve)
	v.SetDefault("params.mandelbrot", defaults.Params.Mandelbrot)
	v.SetDefault("params.matrix", defaults.Params.Matrix)
	v.SetDefault("params.binary_trees", defaults.Params.BinaryTrees)
	v.SetDefault("output.format", string(defaults.Output.Format))
	v.SetDefault("output.mem_stats", defaults.Output.MemStats)
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values match the schema shown by 'benchsuite config dump'").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "decode configuration")
	}
	cfg.Source = path

	if valid, errs := cfg.IsValid(); !valid {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Check " + EnvPrefix + "_* environment variables for out-of-range values").
			WithSuggestion("Run 'benchsuite config show' to see the effective values").
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, nil
}

// loadCUEIntoViper validates a CUE file against the #Config schema and merges
// its contents into Viper, preserving defaults for omitted keys.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, data, "#Config", path)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// CreateDefaultConfig writes a default config file to path unless one
// already exists. It reports whether a file was written.
func CreateDefaultConfig(path string) (bool, error) {
	if fileExists(path) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// benchsuite configuration file\n")
	sb.WriteString("// Delete this file to run with the built-in reference parameters.\n\n")

	sb.WriteString("params: {\n")
	fmt.Fprintf(&sb, "\tfibonacci:    %d\n", cfg.Params.Fibonacci)
	fmt.Fprintf(&sb, "\tsieve:        %d\n", cfg.Params.Sieve)
	fmt.Fprintf(&sb, "\tmandelbrot:   %d\n", cfg.Params.Mandelbrot)
	fmt.Fprintf(&sb, "\tmatrix:       %d\n", cfg.Params.Matrix)
	fmt.Fprintf(&sb, "\tbinary_trees: %d\n", cfg.Params.BinaryTrees)
	sb.WriteString("}\n")

	sb.WriteString("\noutput: {\n")
	fmt.Fprintf(&sb, "\tformat:    %q\n", string(cfg.Output.Format))
	fmt.Fprintf(&sb, "\tmem_stats: %v\n", cfg.Output.MemStats)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", string(cfg.UI.ColorScheme))
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}
