// Shared helpers for roster CLI commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/jsonl"
	"github.com/mesh-intelligence/roster/internal/roster"
	"github.com/mesh-intelligence/roster/internal/sqlite"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// newBackend builds the storage backend named in cfg.
func newBackend(cfg types.Config) (types.Backend, error) {
	switch cfg.Backend {
	case types.BackendJSONL:
		return jsonl.NewBackend(cfg.DataDir), nil
	case types.BackendSQLite:
		return sqlite.NewBackend(cfg.DataDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}

// openStore creates the store and loads the snapshot. An unreadable snapshot
// is reported on stderr and the store starts empty.
func (a *app) openStore(cmd *cobra.Command) (*roster.Store, error) {
	backend, err := newBackend(a.config)
	if err != nil {
		return nil, err
	}

	store := roster.New(backend, roster.WithLogger(a.logger))
	if err := store.Load(); err != nil {
		if !errors.Is(err, types.ErrStorageRead) {
			return nil, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  %s; starting with an empty roster\n", err)
	}
	return store, nil
}

// usageArgs marks argument validation failures as invalid input.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", types.ErrInvalidInput, err)
		}
		return nil
	}
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
