package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/shell"
)

func newEditCmd(a *app) *cobra.Command {
	var newName, newGrade string

	cmd := &cobra.Command{
		Use:   "edit <roll>",
		Short: "Change the name or grade of the first student with the given roll number",
		Long: "Change the name and/or grade of the first matching student. A flag\n" +
			"left empty keeps the current value. The roll number cannot change.",
		Example: `  roster edit 9 --grade A`,
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}

			roll := args[0]
			if err := store.Edit(roll, newName, newGrade); err != nil {
				return err
			}

			if a.flags.jsonMode {
				rec, err := store.Search(roll)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), rec)
			}
			fmt.Fprintln(cmd.OutOrStdout(), shell.MsgUpdated)
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "new name (empty keeps the current one)")
	cmd.Flags().StringVar(&newGrade, "grade", "", "new grade (empty keeps the current one)")
	return cmd
}
