package commands

import (
	"fmt"
	"path/filepath"

	"crimedash/internal/export"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the dashboard tables as JSON, YAML or an Excel workbook",
		Long: `Export every static dashboard table. Without a path the file is written to
the exports folder under DATA_PATH; the format defaults to the path's extension.`,
		Example: `  crimedash export karachi.xlsx
  crimedash export --format yaml --stdout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f export.Format
			if format != "" {
				parsed, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			}

			bundle := export.Collect()
			if stdout {
				if f == "" {
					f = export.FormatJSON
				}
				return export.Write(cmd.OutOrStdout(), bundle, f)
			}

			var path string
			switch {
			case len(args) == 1:
				path = args[0]
			case f != "":
				path = filepath.Join(a.cfg.ExportDir, "karachi-crime."+string(f))
			default:
				path = filepath.Join(a.cfg.ExportDir, "karachi-crime.xlsx")
			}

			if err := export.WriteFile(path, bundle, f); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("Dataset exported")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json, yaml or xlsx")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write to standard output instead of a file")
	return cmd
}
