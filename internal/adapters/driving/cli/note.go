package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Inspect catalogued notes",
	Long:  `List notes, show their metadata, or print their content.`,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE:  runNoteList,
}

var noteGetCmd = &cobra.Command{
	Use:   "get [note-id]",
	Short: "Show note metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteGet,
}

var noteContentCmd = &cobra.Command{
	Use:   "content [note-id]",
	Short: "Print note content",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteContent,
}

func init() {
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteGetCmd)
	noteCmd.AddCommand(noteContentCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	docs, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No notes catalogued.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		if topic := docs[i].Topic(); topic != "" {
			cmd.Printf("    Topic: %s\n", topic)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d notes\n", len(docs))
	return nil
}

func runNoteGet(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	details, err := catalogService.Details(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	cmd.Printf("ID: %s\n", details.ID)
	cmd.Printf("Title: %s\n", details.Title)
	if details.Topic != "" {
		cmd.Printf("Topic: %s\n", details.Topic)
	}
	if len(details.Tags) > 0 {
		cmd.Printf("Tags: %v\n", details.Tags)
	}
	cmd.Printf("URI: %s\n", details.URI)
	cmd.Printf("Body: %d bytes\n", details.BodyBytes)
	return nil
}

func runNoteContent(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	doc, err := catalogService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	cmd.Println(doc.Body)
	return nil
}
