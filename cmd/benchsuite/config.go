// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/invowk/benchsuite/internal/config"
	"github.com/invowk/benchsuite/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `benchsuite config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App, opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage benchsuite configuration",
		Long: `Manage benchsuite configuration.

The configuration file is optional. Without one, benchsuite runs the
built-in parameters. It is looked up in:
  - Linux: ~/.config/benchsuite/config.cue
  - macOS: ~/Library/Application Support/benchsuite/config.cue
  - Windows: %APPDATA%\benchsuite\config.cue

Any key can also be set through the environment, for example
BENCHSUITE_PARAMS_SIEVE=1000000 or BENCHSUITE_OUTPUT_FORMAT=json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, opts)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, exists, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: opts.configPath})
			if err != nil {
				return err
			}

			fmt.Fprintln(app.stdout, path)
			if !exists {
				app.newLogger().Info("config file does not exist; built-in defaults apply", "path", path)
			}
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app, opts)
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, opts *rootOptions) error {
	cfg, err := app.loadConfig(ctx, opts)
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	out := app.stdout

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if cfg.Source != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), cfg.Source)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("params"))
	fmt.Fprintf(out, "  fibonacci: %s\n", valueStyle.Render(strconv.Itoa(cfg.Params.Fibonacci)))
	fmt.Fprintf(out, "  sieve: %s\n", valueStyle.Render(strconv.Itoa(cfg.Params.Sieve)))
	fmt.Fprintf(out, "  mandelbrot: %s\n", valueStyle.Render(strconv.Itoa(cfg.Params.Mandelbrot)))
	fmt.Fprintf(out, "  matrix: %s\n", valueStyle.Render(strconv.Itoa(cfg.Params.Matrix)))
	fmt.Fprintf(out, "  binary_trees: %s\n", valueStyle.Render(strconv.Itoa(cfg.Params.BinaryTrees)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(out, "  format: %s\n", valueStyle.Render(cfg.Output.Format.String()))
	fmt.Fprintf(out, "  mem_stats: %s\n", valueStyle.Render(strconv.FormatBool(cfg.Output.MemStats)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))

	return nil
}

func initConfig(app *App, opts *rootOptions) error {
	path, _, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		return err
	}

	created, err := config.CreateDefaultConfig(path)
	if err != nil {
		return issue.WrapWithOperation(err, "create default config")
	}

	if !created {
		fmt.Fprintf(app.stderr, "%s %s already exists, leaving it untouched\n", WarningStyle.Render("!"), path)
		return nil
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
