package driving

import (
	"context"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// QueryService answers read-only lookups against the catalog.
// It has no failure modes beyond empty results.
type QueryService interface {
	// ByTag returns documents carrying the tag, ordered by ID.
	// Matching is case-insensitive exact.
	ByTag(ctx context.Context, tag string, opts domain.QueryOptions) ([]domain.QueryResult, error)

	// ByTopic returns documents at or below the topic prefix,
	// ordered by ID. Matching is case-insensitive exact per segment.
	ByTopic(ctx context.Context, topic string, opts domain.QueryOptions) ([]domain.QueryResult, error)

	// Search returns documents whose title or body contains the
	// substring, ranked by occurrence count descending, ties broken
	// by ID. An empty query yields no results.
	Search(ctx context.Context, query string, opts domain.QueryOptions) ([]domain.QueryResult, error)

	// Tags returns every indexed tag with its document count.
	Tags(ctx context.Context) ([]TagCount, error)

	// Topics returns every indexed topic prefix with its document count.
	Topics(ctx context.Context) ([]TopicCount, error)
}

// TagCount pairs a tag with the number of documents carrying it.
type TagCount struct {
	// Tag is the lowercased tag.
	Tag string

	// Count is the number of documents.
	Count int
}

// TopicCount pairs a topic prefix with the number of documents under it.
type TopicCount struct {
	// Topic is the lowercased "/"-joined prefix.
	Topic string

	// Count is the number of documents.
	Count int
}
