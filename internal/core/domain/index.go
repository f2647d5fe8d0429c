package domain

import (
	"sort"
	"strings"
)

// normaliseKey canonicalises a tag or topic key for lookup.
func normaliseKey(k string) string {
	return strings.ToLower(strings.TrimSpace(strings.Trim(k, "/")))
}

// Index is the derived lookup structure over a document set.
// It is disposable: rebuilt wholesale on every load, never
// partially mutated. Every id it references exists in the store
// that produced it.
type Index struct {
	// Tags maps a lowercased tag to the sorted ids carrying it.
	Tags map[string][]string

	// Topics maps a lowercased "/"-joined topic prefix to the
	// sorted ids at or below that prefix. Every prefix length is
	// present, so lookups are a single map access.
	Topics map[string][]string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		Tags:   make(map[string][]string),
		Topics: make(map[string][]string),
	}
}

// IDsForTag returns the ids indexed under tag, nil if none.
func (ix *Index) IDsForTag(tag string) []string {
	return ix.Tags[normaliseKey(tag)]
}

// IDsForTopic returns the ids indexed under the topic prefix,
// nil if none.
func (ix *Index) IDsForTopic(prefix string) []string {
	return ix.Topics[normaliseKey(prefix)]
}

// TagNames returns all indexed tags, sorted.
func (ix *Index) TagNames() []string {
	names := make([]string, 0, len(ix.Tags))
	for t := range ix.Tags {
		names = append(names, t)
	}
	sort.Strings(names)
	return names
}

// TopicNames returns all indexed topic prefixes, sorted.
func (ix *Index) TopicNames() []string {
	names := make([]string, 0, len(ix.Topics))
	for t := range ix.Topics {
		names = append(names, t)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether two indexes hold identical mappings.
// Build is deterministic, so building twice from the same
// document set yields Equal indexes.
func (ix *Index) Equal(other *Index) bool {
	if other == nil {
		return false
	}
	return equalIDMaps(ix.Tags, other.Tags) && equalIDMaps(ix.Topics, other.Topics)
}

func equalIDMaps(a, b map[string][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, ids := range a {
		bids, ok := b[k]
		if !ok || len(ids) != len(bids) {
			return false
		}
		for i := range ids {
			if ids[i] != bids[i] {
				return false
			}
		}
	}
	return true
}
