package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/refdex-labs/refdex-cli/internal/adapters/driven/config/file"
	"github.com/refdex-labs/refdex-cli/internal/adapters/driven/storage/sqlite"
	"github.com/refdex-labs/refdex-cli/internal/connectors/filesystem"
	"github.com/refdex-labs/refdex-cli/internal/core/services"
	"github.com/refdex-labs/refdex-cli/internal/normalisers"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the notes root and resync on changes",
	Long: `Performs an initial sync, then watches the notes root and rebuilds
the catalog whenever a note changes. Rebuilds are throttled so a burst
of editor events triggers a single reload. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	root, err := resolveNotesRoot()
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(configStore.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	sqliteStore = store

	connector := filesystem.New(root)
	defer connector.Close() //nolint:errcheck

	catalog := services.NewCatalog(
		connector,
		normalisers.DefaultRegistry(),
		store.NoteStore(),
		store.SyncStateStore(),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", root)
	err = services.NewWatcher(catalog, connector).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
