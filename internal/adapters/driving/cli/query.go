package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

var (
	queryTag    string
	queryTopic  string
	querySearch string
	queryLimit  int
	queryJSON   bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the catalog",
	Long: `Answers lookups against the synced catalog.

Exactly one of --tag, --topic, or --search must be given:

  --tag     case-insensitive exact tag match, ordered by id
  --topic   documents at or below a topic path prefix, ordered by id
  --search  substring match over title and body, ranked by occurrence count`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryTag, "tag", "t", "", "match documents by tag")
	queryCmd.Flags().StringVarP(&queryTopic, "topic", "p", "", "match documents under a topic prefix")
	queryCmd.Flags().StringVarP(&querySearch, "search", "s", "", "substring search over title and body")
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 0, "maximum number of results (0 = all)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, _ []string) error {
	modes := 0
	for _, v := range []string{queryTag, queryTopic, querySearch} {
		if v != "" {
			modes++
		}
	}
	if modes != 1 {
		return errors.New("exactly one of --tag, --topic, or --search is required")
	}

	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	ctx := cmd.Context()
	opts := domain.QueryOptions{Limit: queryLimit}

	var (
		results []domain.QueryResult
		err     error
	)
	switch {
	case queryTag != "":
		results, err = queryService.ByTag(ctx, queryTag, opts)
	case queryTopic != "":
		results, err = queryService.ByTopic(ctx, queryTopic, opts)
	default:
		results, err = queryService.Search(ctx, querySearch, opts)
	}
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if queryJSON {
		return outputQueryJSON(cmd, results)
	}
	return outputQueryList(cmd, results)
}

// queryResultJSON is the stable JSON shape for a query hit.
type queryResultJSON struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Topic   string   `json:"topic,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	URI     string   `json:"uri"`
	Score   float64  `json:"score"`
	Snippet string   `json:"snippet,omitempty"`
}

func outputQueryJSON(cmd *cobra.Command, results []domain.QueryResult) error {
	out := make([]queryResultJSON, 0, len(results))
	for i := range results {
		doc := &results[i].Document
		out = append(out, queryResultJSON{
			ID:      doc.ID,
			Title:   doc.Title,
			Topic:   doc.Topic(),
			Tags:    doc.Tags,
			URI:     doc.URI,
			Score:   results[i].Score,
			Snippet: results[i].Snippet,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryList(cmd *cobra.Command, results []domain.QueryResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	width := outputWidth()
	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		doc := &results[i].Document
		title := doc.Title
		if title == "" {
			title = doc.ID
		}

		cmd.Printf("  [%d] %s (%.0f)\n", i+1, title, results[i].Score)
		cmd.Printf("      %s\n", doc.ID)
		if topic := doc.Topic(); topic != "" {
			cmd.Printf("      Topic: %s\n", topic)
		}
		if snippet := results[i].Snippet; snippet != "" {
			cmd.Printf("      %s\n", truncate(snippet, width-6))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d\n", len(results))
	return nil
}

// outputWidth returns the terminal width, or a sane default when
// stdout is not a terminal (pipes, tests).
func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 100
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 100
	}
	return width
}

// truncate shortens s to max runes, appending "..." when cut.
func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
