package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/shell"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every student in roster order",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}

			records := store.List()
			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return printJSON(out, records)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, shell.MsgNoStudents)
				return nil
			}
			for _, rec := range records {
				fmt.Fprintln(out, rec.String())
			}
			return nil
		},
	}
}
