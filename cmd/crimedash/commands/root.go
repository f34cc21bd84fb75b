package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"crimedash/internal/config"
	"crimedash/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	verbose bool
	cfg     *config.AppConfig
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "crimedash",
		Short: "Karachi crime analytics dashboard",
		Long: `An interactive dashboard over a fixed snapshot of Karachi crime statistics:
area bars with risk and threshold filters, demographic and temporal breakdowns,
insights, action plans and a simulated live header.

Run "crimedash serve" for the web dashboard, "crimedash mcp" to expose the
same computations to MCP clients, or "crimedash report" for a terminal view.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := logging.Init(logging.Options{Verbose: a.verbose}); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			log.Debug().
				Str("version", Version).
				Str("commit", Commit).
				Str("buildDate", BuildDate).
				Str("command", cmd.Name()).
				Msg("crimedash starting")
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(
		newServeCmd(a),
		newMCPCmd(a),
		newReportCmd(a),
		newChartCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command until it returns or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}
