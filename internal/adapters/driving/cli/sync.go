package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan the notes root and rebuild the catalog",
	Long: `Scans the notes root, normalises every note, and replaces the
stored document set. The rebuild is wholesale: a single unreadable or
malformed note aborts the sync and leaves the previous catalog intact.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	catalog, err := buildCatalog(true)
	if err != nil {
		return err
	}

	state, err := catalog.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Printf("Synced %d documents from %s\n", state.DocumentCount, state.Root)
	return nil
}
