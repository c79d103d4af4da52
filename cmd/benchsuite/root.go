// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/invowk/benchsuite/internal/suite"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the flag values of one command tree instance.
type rootOptions struct {
	configPath string
	verbose    bool
	format     string
	only       []string
	memStats   bool
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the benchsuite command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "benchsuite",
		Short: "Run the CPU and allocation microbenchmark suite",
		Long: TitleStyle.Render("benchsuite") + SubtitleStyle.Render(" - CPU and allocation microbenchmarks") + `

Runs five workloads one after another and prints the wall-clock time of
each in milliseconds together with its result:

  1. Fibonacci        naive double recursion
  2. Prime Sieve      Sieve of Eratosthenes
  3. Mandelbrot       escape-time iteration count
  4. Matrix Multiply  dense triple-loop product
  5. Binary Trees     perfect tree allocation and traversal

` + SubtitleStyle.Render("Examples:") + `
  benchsuite                          Run every benchmark
  benchsuite --only fibonacci,matrix  Run a subset
  benchsuite --format json            Emit the report as JSON
  benchsuite list                     Show benchmarks and parameters`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd.Context(), app, opts, cmd.Flags().Changed("format"))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/benchsuite/config.cue)")

	rootCmd.Flags().StringVar(&opts.format, "format", string(suite.FormatText), "report format: text, json or toml")
	rootCmd.Flags().StringSliceVar(&opts.only, "only", nil, "run only these benchmarks (comma-separated kinds)")
	rootCmd.Flags().BoolVar(&opts.memStats, "mem-stats", false, "sample allocation counters around each benchmark")

	rootCmd.AddCommand(newListCommand(app, opts))
	rootCmd.AddCommand(newConfigCommand(app, opts))

	return rootCmd
}

// Execute builds the production App and runs the command tree through fang.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(ExitFailure))
	}
}
