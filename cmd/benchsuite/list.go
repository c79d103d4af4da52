// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// newListCommand creates the `benchsuite list` command. It honors --only and
// the configured parameters, so it shows exactly what a run would execute.
func newListCommand(app *App, opts *rootOptions) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the benchmarks and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), opts)
			if err != nil {
				return err
			}

			plan, err := planFromOptions(cfg.Params, opts)
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(SubtitleStyle).
				Headers("#", "KIND", "BENCHMARK", "PARAM").
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == table.HeaderRow:
						return tableHeaderStyle
					case col == 1:
						return CmdStyle.Padding(0, 1)
					default:
						return tableCellStyle
					}
				})

			for _, b := range plan {
				t.Row(strconv.Itoa(b.Kind.Ordinal()), b.Kind.String(), b.Label(), strconv.Itoa(b.Param))
			}

			fmt.Fprintln(app.stdout, t)
			return nil
		},
	}

	listCmd.Flags().StringSliceVar(&opts.only, "only", nil, "list only these benchmarks (comma-separated kinds)")
	return listCmd
}
