package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the roster release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/roster"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the roster version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "roster v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
