// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/invowk/benchsuite/internal/config"
	"github.com/invowk/benchsuite/internal/issue"
	"github.com/invowk/benchsuite/internal/suite"

	"github.com/charmbracelet/log"
)

const logPrefix = "benchsuite"

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra command handler receives an App reference and reads
	// configuration, time and output streams through it.
	App struct {
		Config ConfigProvider
		Clock  suite.Clock
		stdout io.Writer
		stderr io.Writer

		// state resolved by the most recent command, read by the error handler
		verbose     bool
		colorScheme config.ColorScheme
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Clock  suite.Clock
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config:      deps.Config,
		Clock:       deps.Clock,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
		colorScheme: config.ColorSchemeAuto,
	}
}

// loadConfig loads configuration and records the UI settings the error
// handler needs, even when the command later fails.
func (a *App) loadConfig(ctx context.Context, opts *rootOptions) (*config.Config, error) {
	a.verbose = opts.verbose

	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, &ExitError{Code: ExitInterrupted, Err: err}
		}
		return nil, &issueError{id: issue.ConfigLoadFailedId, err: err}
	}

	if !opts.verbose {
		a.verbose = cfg.UI.Verbose
	}
	a.colorScheme = cfg.UI.ColorScheme
	return cfg, nil
}

// newLogger returns the stderr logger. Stdout is reserved for the report.
func (a *App) newLogger() *log.Logger {
	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: logPrefix,
		Level:  level,
	})
}

// runnerOptions builds the suite.Runner options for the current command.
func (a *App) runnerOptions(logger *log.Logger, memStats bool) []suite.Option {
	opts := []suite.Option{
		suite.WithLogger(logger),
		suite.WithMemStats(memStats),
	}
	if a.Clock != nil {
		opts = append(opts, suite.WithClock(a.Clock))
	}
	return opts
}
