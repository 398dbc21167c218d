package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/shell"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <roll>",
		Short: "Show the first student with the given roll number",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}

			rec, err := store.Search(args[0])
			if err != nil {
				return err
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), rec)
			}
			fmt.Fprintln(cmd.OutOrStdout(), shell.MsgFoundPrefix+rec.String())
			return nil
		},
	}
}
