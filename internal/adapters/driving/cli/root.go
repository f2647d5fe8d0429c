// Package cli implements the cobra command tree that drives the
// catalog and query services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driving"
	"github.com/refdex-labs/refdex-cli/internal/logger"
)

// version is the refdex release version.
var version = "0.1.0"

// Persistent flags.
var (
	verboseFlag   bool
	configDirFlag string
	notesFlag     string
)

// Services used by the commands. Wired lazily by ensureServices;
// tests inject fakes directly.
var (
	configStore    driven.ConfigStore
	catalogService driving.CatalogService
	queryService   driving.QueryService
)

var rootCmd = &cobra.Command{
	Use:   "refdex",
	Short: "Catalog and search a directory of reference notes",
	Long: `refdex indexes a directory of markdown cheat sheets and reference
notes, and answers lookups by tag, topic path, or free-text substring.

Run "refdex sync" once to scan the notes root, then query:

  refdex query --tag vim
  refdex query --search "visual mode"
  refdex query --topic shell/basics`,
	SilenceUsage:      true,
	PersistentPreRunE: initRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.refdex)")
	rootCmd.PersistentFlags().StringVar(&notesFlag, "notes", "", "notes root to scan, overriding the configured one")
}

// initRoot runs before every command: logging first, then config.
func initRoot(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	return loadConfig()
}

// Execute runs the root command, releasing the store afterwards.
func Execute() error {
	defer closeStore()
	return rootCmd.Execute()
}
