package commands

import (
	"fmt"
	"net"

	"crimedash/internal/server"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr        string
		open        bool
		autoRefresh bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web dashboard",
		Long: `Start the dashboard HTTP server: the web shell on /, the JSON API under /api,
one websocket per mounted view on /ws and Prometheus metrics on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("auto-refresh") {
				cfg.AutoRefresh = autoRefresh
			}

			srv, err := server.New(&cfg)
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				_ = srv.Close()
				return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
			}

			if open {
				url := "http://" + ln.Addr().String()
				if err := browser.OpenURL(url); err != nil {
					log.Warn().Err(err).Str("url", url).Msg("Could not open browser")
				}
			}
			return srv.Serve(cmd.Context(), ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides CRIMEDASH_ADDR)")
	cmd.Flags().BoolVar(&open, "open", false, "open the dashboard in the default browser")
	cmd.Flags().BoolVar(&autoRefresh, "auto-refresh", false, "start the live metrics with auto-refresh armed")
	return cmd
}
