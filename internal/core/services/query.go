package services

import (
	"context"
	"sort"
	"strings"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driving"
	"github.com/refdex-labs/refdex-cli/internal/logger"
)

// Ensure Query implements the interface.
var _ driving.QueryService = (*Query)(nil)

// snippetContext is how many characters of context a snippet keeps
// on each side of the first match.
const snippetContext = 40

// Query answers read-only lookups against a catalog snapshot.
// It is side-effect free; empty results are not errors.
type Query struct {
	catalog *Catalog
}

// NewQuery creates a query service over the catalog.
func NewQuery(catalog *Catalog) *Query {
	return &Query{catalog: catalog}
}

// ByTag returns documents carrying the tag, ordered by ID.
func (q *Query) ByTag(_ context.Context, tag string, opts domain.QueryOptions) ([]domain.QueryResult, error) {
	snap := q.catalog.current()
	ids := snap.index.IDsForTag(tag)
	logger.Debug("ByTag %q: %d ids", tag, len(ids))
	return opts.Clamp(q.hydrate(snap, ids)), nil
}

// ByTopic returns documents at or below the topic prefix, ordered by ID.
func (q *Query) ByTopic(_ context.Context, topic string, opts domain.QueryOptions) ([]domain.QueryResult, error) {
	snap := q.catalog.current()
	ids := snap.index.IDsForTopic(topic)
	logger.Debug("ByTopic %q: %d ids", topic, len(ids))
	return opts.Clamp(q.hydrate(snap, ids)), nil
}

// hydrate resolves index ids into results. The index invariant
// guarantees every id resolves; a missing one would mean the index
// outlived its snapshot, so it is skipped rather than surfaced.
func (q *Query) hydrate(snap *snapshot, ids []string) []domain.QueryResult {
	results := make([]domain.QueryResult, 0, len(ids))
	for _, id := range ids {
		doc, ok := snap.docs[id]
		if !ok {
			continue
		}
		results = append(results, domain.QueryResult{Document: doc, Score: 1})
	}
	return results
}

// Search returns documents whose title or body contains the substring,
// ranked by naive occurrence count descending, ties broken by ID.
func (q *Query) Search(_ context.Context, query string, opts domain.QueryOptions) ([]domain.QueryResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.QueryResult{}, nil
	}
	needle := strings.ToLower(query)

	snap := q.catalog.current()
	results := make([]domain.QueryResult, 0)
	for _, id := range snap.order {
		doc := snap.docs[id]
		title := strings.ToLower(doc.Title)
		body := strings.ToLower(doc.Body)

		count := strings.Count(title, needle) + strings.Count(body, needle)
		if count == 0 {
			continue
		}
		results = append(results, domain.QueryResult{
			Document: doc,
			Score:    float64(count),
			Snippet:  snippet(doc.Body, body, needle),
		})
	}

	// Occurrence count descending, then ID for determinism.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Document.ID < results[j].Document.ID
	})

	logger.Debug("Matched %d documents", len(results))
	return opts.Clamp(results), nil
}

// Tags returns every indexed tag with its document count.
func (q *Query) Tags(_ context.Context) ([]driving.TagCount, error) {
	ix := q.catalog.current().index
	counts := make([]driving.TagCount, 0, len(ix.Tags))
	for _, tag := range ix.TagNames() {
		counts = append(counts, driving.TagCount{Tag: tag, Count: len(ix.Tags[tag])})
	}
	return counts, nil
}

// Topics returns every indexed topic prefix with its document count.
func (q *Query) Topics(_ context.Context) ([]driving.TopicCount, error) {
	ix := q.catalog.current().index
	counts := make([]driving.TopicCount, 0, len(ix.Topics))
	for _, topic := range ix.TopicNames() {
		counts = append(counts, driving.TopicCount{Topic: topic, Count: len(ix.Topics[topic])})
	}
	return counts, nil
}

// snippet extracts a short excerpt around the first body match.
// body and lowerBody are the same text; the needle is matched against
// the lowered form so the excerpt preserves original casing.
func snippet(body, lowerBody, needle string) string {
	pos := strings.Index(lowerBody, needle)
	if pos < 0 {
		return ""
	}
	start := pos - snippetContext
	if start < 0 {
		start = 0
	}
	end := pos + len(needle) + snippetContext
	if end > len(body) {
		end = len(body)
	}
	excerpt := strings.Join(strings.Fields(body[start:end]), " ")
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(body) {
		excerpt += "..."
	}
	return excerpt
}
