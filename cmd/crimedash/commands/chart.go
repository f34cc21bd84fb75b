package commands

import (
	"fmt"
	"strings"

	"crimedash/internal/visuals"

	"github.com/spf13/cobra"
)

func newChartCmd(a *app) *cobra.Command {
	var sel selectionFlags

	cmd := &cobra.Command{
		Use:   "chart <name>",
		Short: "Render a dashboard chart as Mermaid",
		Long:  "Render one of the dashboard charts as a Mermaid diagram. Available charts: " + strings.Join(visuals.Charts(), ", ") + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.EnableMermaidCharts {
				return fmt.Errorf("mermaid charts are disabled (ENABLE_MERMAID_CHARTS=false)")
			}
			selection, err := sel.selection(cmd.Flags())
			if err != nil {
				return err
			}
			chart, err := visuals.Render(args[0], selection)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), chart)
			return err
		},
	}

	sel.register(cmd.Flags())
	return cmd
}
