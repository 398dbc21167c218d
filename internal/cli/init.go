package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize roster storage",
		Long: "Create the configuration file and the data directory, and write an\n" +
			"empty roster snapshot if none exists. An explicit --data-dir is saved\n" +
			"to config.yaml when the file does not set one yet.",
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	configPath := filepath.Join(configDir, configFileExt)
	if a.flags.dataDir != "" {
		cfg, err := readConfigFile(configPath)
		if err != nil {
			return err
		}
		if cfg.DataDir == "" {
			if err := writeConfigFile(configPath, cfg.withDefaults(a.config)); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
		}
	}

	backend, err := newBackend(a.config)
	if err != nil {
		return err
	}

	// Only a missing snapshot is replaced; an existing one is left alone,
	// even if it is unreadable.
	if _, err := backend.Load(); errors.Is(err, fs.ErrNotExist) {
		if err := backend.Persist(nil); err != nil {
			return fmt.Errorf("initialize storage: %w", err)
		}
		a.logger.Info("created empty roster", "location", backend.Location())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Roster initialized successfully")
	fmt.Fprintf(out, "config: %s\n", configPath)
	fmt.Fprintf(out, "data:   %s\n", backend.Location())
	return nil
}
