package commands

import (
	"crimedash/internal/live"
	"crimedash/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Start an MCP server on stdin/stdout exposing the dashboard tools:
  - compute_view:   filter, sort and aggregate the monitored areas
  - get_tab:        the payload of one dashboard tab
  - live_metrics:   the simulated live header
  - render_chart:   a chart as a Mermaid diagram
  - export_dataset: every static table as JSON or YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			updater := live.NewUpdater(live.Options{
				Interval:     a.cfg.LiveInterval,
				RefreshDelay: a.cfg.RefreshDelay,
			})
			defer updater.Close()

			if a.cfg.AutoRefresh {
				if err := updater.SetAutoRefresh(true); err != nil {
					return err
				}
			}
			return mcp.NewServer(a.cfg, updater, Version).Run(cmd.Context(), &sdk.StdioTransport{})
		},
	}
}
