package services

import (
	"sort"
	"strings"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// BuildIndex builds the tag and topic index over a document set.
// It is a pure, deterministic function of its input: equal document
// sets produce Equal indexes. Tags and topic segments are matched
// case-insensitively; id slices are sorted.
//
// There is no incremental update. Any content change rebuilds the
// whole index, which is fine at cheat-sheet scale.
func BuildIndex(docs []domain.Document) *domain.Index {
	ix := domain.NewIndex()

	for i := range docs {
		doc := &docs[i]

		for _, tag := range doc.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			ix.Tags[tag] = appendID(ix.Tags[tag], doc.ID)
		}

		// Index every prefix of the topic path so lookups are a
		// single map access.
		for n := 1; n <= len(doc.TopicPath); n++ {
			key := strings.ToLower(strings.Join(doc.TopicPath[:n], "/"))
			ix.Topics[key] = appendID(ix.Topics[key], doc.ID)
		}
	}

	for _, ids := range ix.Tags {
		sort.Strings(ids)
	}
	for _, ids := range ix.Topics {
		sort.Strings(ids)
	}

	return ix
}

// appendID adds id to ids unless already present.
// Slices are small; linear scan beats a scratch set.
func appendID(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
