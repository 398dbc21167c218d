// Package cli implements the roster command-line interface: the interactive
// shell (the default command) and one scripted subcommand per store operation.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/export"
	"github.com/mesh-intelligence/roster/internal/paths"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	logLevel  string
	jsonMode  bool
	noColor   bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags  rootFlags
	config types.Config
	logger *slog.Logger
}

// NewRootCmd creates the top-level "roster" command with global flags and
// all subcommands registered. Run without a subcommand it starts the shell.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "roster",
		Short: "Manage a roster of student records",
		Long: "roster keeps a list of students (name, roll number, grade) in a file\n" +
			"and rewrites the file after every change. Run without a subcommand to\n" +
			"start the interactive menu.",
		Version:       Version,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", types.ErrInvalidInput, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir/roster)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: current directory)")
	pf.StringVar(&a.flags.backend, flagBackend, types.BackendJSONL, "storage backend: jsonl or sqlite")
	pf.StringVar(&a.flags.logLevel, flagLogLevel, types.LogLevelWarn, "log level: debug, info, warn, error")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored shell output")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newShellCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newExportCmd(a))

	return root
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir, cmd.Root().PersistentFlags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	a.config = types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  dataDir,
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, _ := types.ParseLogLevel(a.config.LogLevel)
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("config loaded",
		"config_dir", configDir,
		"data_dir", a.config.DataDir,
		"backend", a.config.Backend,
	)
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ "+err.Error())
		return exitCode(err)
	}
	return exitSuccess
}

// exitCode maps an error to a process exit code. Lookups of absent students
// and bad arguments are user errors; storage and configuration failures are
// system errors.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidInput),
		errors.Is(err, export.ErrUnknownFormat):
		return exitUserError
	default:
		return exitSysError
	}
}
