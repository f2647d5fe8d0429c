package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List indexed tags with document counts",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List indexed topic prefixes with document counts",
	Args:  cobra.NoArgs,
	RunE:  runTopics,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(topicsCmd)
}

func runTags(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	counts, err := queryService.Tags(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	if len(counts) == 0 {
		cmd.Println("No tags indexed.")
		return nil
	}
	for _, tc := range counts {
		cmd.Printf("  %s (%d)\n", tc.Tag, tc.Count)
	}
	return nil
}

func runTopics(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	counts, err := queryService.Topics(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list topics: %w", err)
	}

	if len(counts) == 0 {
		cmd.Println("No topics indexed.")
		return nil
	}
	for _, tc := range counts {
		cmd.Printf("  %s (%d)\n", tc.Topic, tc.Count)
	}
	return nil
}
