package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/shell"
	"github.com/mesh-intelligence/roster/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var rec types.Record

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student to the end of the roster",
		Long: "Add a student. All three fields are required. Roll numbers are not\n" +
			"checked for uniqueness.",
		Example: `  roster add --name Alice --roll 9 --grade B`,
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rec.Validate(); err != nil {
				return err
			}

			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			if err := store.Add(rec); err != nil {
				return err
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), rec)
			}
			fmt.Fprintln(cmd.OutOrStdout(), shell.MsgAdded)
			return nil
		},
	}

	cmd.Flags().StringVar(&rec.Name, "name", "", "student name")
	cmd.Flags().StringVar(&rec.RollNumber, "roll", "", "roll number")
	cmd.Flags().StringVar(&rec.Grade, "grade", "", "grade")
	return cmd
}
