// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"

	"github.com/invowk/benchsuite/internal/issue"
	"github.com/invowk/benchsuite/internal/suite"
)

// runSuite loads configuration, applies flag overrides and runs the plan.
// formatChanged reports whether --format was given explicitly, in which case
// it wins over output.format from the config file.
func runSuite(ctx context.Context, app *App, opts *rootOptions, formatChanged bool) error {
	cfg, err := app.loadConfig(ctx, opts)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if formatChanged {
		format = suite.Format(opts.format)
	}
	if valid, errs := format.IsValid(); !valid {
		return issue.NewErrorContext().
			WithOperation("select report format").
			WithResource("--format " + opts.format).
			WithSuggestion("Use one of: text, json, toml").
			Wrap(errs[0]).
			BuildError()
	}

	plan, err := planFromOptions(cfg.Params, opts)
	if err != nil {
		return err
	}

	sink, err := suite.NewSink(format, app.stdout)
	if err != nil {
		return err
	}

	logger := app.newLogger()
	memStats := cfg.Output.MemStats || opts.memStats || app.verbose
	runner := suite.NewRunner(app.runnerOptions(logger, memStats)...)

	report, err := runner.Run(ctx, plan, sink)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return &ExitError{Code: ExitInterrupted, Err: err}
		}
		return &issueError{
			id: issue.ReportWriteFailedId,
			err: issue.NewErrorContext().
				WithOperation("write " + string(format) + " report").
				WithResource("stdout").
				Wrap(err).
				BuildError(),
		}
	}

	logger.Debug("report written", "run_id", report.RunID, "results", len(report.Results))
	return nil
}

// planFromOptions resolves --only against the configured parameters.
func planFromOptions(params suite.Params, opts *rootOptions) ([]suite.Benchmark, error) {
	kinds, err := suite.ParseKinds(opts.only)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("select benchmarks").
			WithResource("--only").
			WithSuggestion("Run 'benchsuite list' to see the available kinds").
			Wrap(err).
			BuildError()
	}

	plan, err := suite.Plan(params, kinds...)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("plan benchmarks").
			WithSuggestion("Check the params section of the config file").
			Wrap(err).
			BuildError()
	}
	return plan, nil
}
