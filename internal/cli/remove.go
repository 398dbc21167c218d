package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/shell"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <roll>",
		Aliases: []string{"rm"},
		Short:   "Remove every student with the given roll number",
		Long: "Remove every student whose roll number matches. Removing a roll\n" +
			"number that is not on the roster succeeds and changes nothing.",
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}

			n, err := store.Remove(args[0])
			if err != nil {
				return err
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]int{"removed": n})
			}
			fmt.Fprintln(cmd.OutOrStdout(), shell.MsgRemoved)
			return nil
		},
	}
}
