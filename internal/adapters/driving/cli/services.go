package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/refdex-labs/refdex-cli/internal/adapters/driven/config/file"
	"github.com/refdex-labs/refdex-cli/internal/adapters/driven/storage/sqlite"
	"github.com/refdex-labs/refdex-cli/internal/connectors/filesystem"
	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/services"
	"github.com/refdex-labs/refdex-cli/internal/normalisers"
)

// sqliteStore is kept for closing after the command finishes.
var sqliteStore *sqlite.Store

// loadConfig opens the TOML config store unless a test injected one.
func loadConfig() error {
	if configStore != nil {
		return nil
	}
	cs, err := file.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = cs
	return nil
}

// resolveNotesRoot returns the notes root from the --notes flag or
// the config file, as an absolute path.
func resolveNotesRoot() (string, error) {
	root := notesFlag
	if root == "" {
		root = configStore.GetString(file.KeyNotesRoot)
	}
	if root == "" {
		return "", fmt.Errorf("no notes root configured; pass --notes or set %s in %s",
			file.KeyNotesRoot, configStore.Path())
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving notes root: %w", err)
	}
	return abs, nil
}

// buildCatalog wires a catalog over the persistent SQLite store.
// withConnector controls whether a filesystem connector is attached;
// read-only commands restoring from the store do not need one.
func buildCatalog(withConnector bool) (*services.Catalog, error) {
	store, err := sqlite.NewStore(configStore.GetString(file.KeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	sqliteStore = store

	var connector *filesystem.Connector
	if withConnector {
		root, err := resolveNotesRoot()
		if err != nil {
			return nil, err
		}
		connector = filesystem.New(root)
	}

	return services.NewCatalog(
		connector,
		normalisers.DefaultRegistry(),
		store.NoteStore(),
		store.SyncStateStore(),
	), nil
}

// ensureServices populates the catalog and query services for a read
// command. When --notes is given the root is rescanned; otherwise the
// snapshot comes from the last sync. Tests that preassign the services
// skip the wiring entirely.
func ensureServices(ctx context.Context) error {
	if catalogService != nil && queryService != nil {
		return nil
	}

	rescan := notesFlag != ""
	catalog, err := buildCatalog(rescan)
	if err != nil {
		return err
	}

	if rescan {
		if _, err := catalog.Load(ctx); err != nil {
			return err
		}
	} else if err := catalog.Restore(ctx); err != nil {
		if errors.Is(err, domain.ErrNotLoaded) {
			return errors.New("catalog is empty; run \"refdex sync\" first")
		}
		return err
	}

	catalogService = catalog
	queryService = services.NewQuery(catalog)
	return nil
}

// closeStore releases the SQLite store if a command opened one.
func closeStore() {
	if sqliteStore != nil {
		sqliteStore.Close() //nolint:errcheck
		sqliteStore = nil
	}
}
