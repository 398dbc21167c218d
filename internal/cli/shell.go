package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/shell"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu (default)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}
}

// runShell drives the numbered menu over stdin and stdout until the user
// exits or input ends.
func (a *app) runShell(cmd *cobra.Command) error {
	store, err := a.openStore(cmd)
	if err != nil {
		return err
	}

	styles := shell.DefaultStyles()
	if a.flags.noColor {
		styles = shell.PlainStyles()
	}

	sh := shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout(),
		shell.WithStyles(styles),
		shell.WithLogger(a.logger),
	)
	return sh.Run()
}
