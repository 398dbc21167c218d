package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/export"
	"github.com/mesh-intelligence/roster/pkg/types"
)

func newExportCmd(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the roster as CSV or XLSX",
		Long: "Write the roster as a spreadsheet. Without --format the format is\n" +
			"taken from the --output extension (.xlsx, otherwise csv). Without\n" +
			"--output, CSV goes to stdout.",
		Example: `  roster export --output students.xlsx
  roster export --format csv > students.csv`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = export.FormatFromPath(output)
			}

			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			records := store.List()

			if output == "" || output == "-" {
				return export.Write(cmd.OutOrStdout(), format, records)
			}
			if err := writeExportFile(output, format, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d students to %s\n", len(records), output)
			a.logger.Info("roster exported", "path", output, "format", format, "count", len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// writeExportFile writes records to path, removing the file again if
// encoding fails.
func writeExportFile(path, format string, records []types.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.Write(f, format, records); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
