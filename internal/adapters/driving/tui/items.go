package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// resultItem adapts a query result to the bubbles list item interface.
type resultItem struct {
	result domain.QueryResult
}

var _ list.DefaultItem = resultItem{}

// Title returns the list entry's primary line.
func (i resultItem) Title() string {
	title := i.result.Document.Title
	if title == "" {
		title = i.result.Document.ID
	}
	return fmt.Sprintf("%s (%.0f)", title, i.result.Score)
}

// Description returns the list entry's secondary line.
func (i resultItem) Description() string {
	if i.result.Snippet != "" {
		return i.result.Snippet
	}
	return i.result.Document.ID
}

// FilterValue is what the list's fuzzy filter matches against.
func (i resultItem) FilterValue() string {
	return i.result.Document.Title + " " + i.result.Document.ID
}

// toItems converts query results into list items.
func toItems(results []domain.QueryResult) []list.Item {
	items := make([]list.Item, len(results))
	for i := range results {
		items[i] = resultItem{result: results[i]}
	}
	return items
}
