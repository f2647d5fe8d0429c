package domain

// QueryOptions configures a catalog query.
type QueryOptions struct {
	// Limit is the maximum number of results. Zero means no limit.
	Limit int

	// Offset is the number of results to skip.
	Offset int
}

// QueryResult represents a single query hit.
type QueryResult struct {
	// Document is the matched document.
	Document Document

	// Score is the relevance score. For substring search this is
	// the occurrence count; tag and topic lookups score 1.
	Score float64

	// Snippet is a short excerpt around the first match, empty for
	// tag and topic lookups.
	Snippet string
}

// Clamp applies Limit and Offset to a result slice.
func (o QueryOptions) Clamp(results []QueryResult) []QueryResult {
	if o.Offset > 0 {
		if o.Offset >= len(results) {
			return []QueryResult{}
		}
		results = results[o.Offset:]
	}
	if o.Limit > 0 && len(results) > o.Limit {
		results = results[:o.Limit]
	}
	return results
}
