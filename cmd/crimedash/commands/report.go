package commands

import (
	"time"

	"crimedash/internal/dashboard"
	"crimedash/internal/live"
	"crimedash/internal/report"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newReportCmd(_ *app) *cobra.Command {
	var (
		sel     selectionFlags
		tabs    []string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard tabs to the terminal",
		Example: `  crimedash report --tab overview --risk High
  crimedash report --tab trends --tab actions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				color.NoColor = true
			}

			selection, err := sel.selection(cmd.Flags())
			if err != nil {
				return err
			}

			var parsed []dashboard.Tab
			for _, name := range tabs {
				tab, err := dashboard.ParseTab(name)
				if err != nil {
					return err
				}
				parsed = append(parsed, tab)
			}

			return report.Write(cmd.OutOrStdout(), report.Options{
				Tabs:      parsed,
				Selection: selection,
				Live: live.Snapshot{
					Metrics:       live.Seed(time.Now()),
					State:         live.StateIdle,
					Notifications: true,
				},
			})
		},
	}

	sel.register(cmd.Flags())
	cmd.Flags().StringSliceVarP(&tabs, "tab", "t", nil, "tabs to print (default: all)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
