// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is optional. Without a file every benchmark runs with the
// built-in reference parameters and the text report. When present, the file is
// read from ~/.config/benchsuite/config.cue (XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support/benchsuite on macOS, %APPDATA%\benchsuite on
// Windows) or from the path given with --config, validated against the
// embedded CUE schema (config_schema.cue), and layered over the defaults.
// BENCHSUITE_* environment variables (e.g. BENCHSUITE_PARAMS_FIBONACCI)
// override both.
package config
