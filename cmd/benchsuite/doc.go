// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for benchsuite.
//
// The root command runs the benchmark suite; `list` shows the planned
// benchmarks and `config` manages the optional configuration file. Command
// handlers receive an *App, which carries the config provider, clock and
// output streams so tests can drive the full command tree in-process.
package cmd
