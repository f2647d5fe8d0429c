// Package memory provides in-memory implementations of the driven
// storage ports. Used by tests and by one-shot commands that scan
// the notes root directly instead of reading the persistent store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
type NoteStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewNoteStore creates a new in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{documents: make(map[string]domain.Document)}
}

// ReplaceAll atomically replaces the whole document set.
func (s *NoteStore) ReplaceAll(_ context.Context, docs []domain.Document) error {
	next := make(map[string]domain.Document, len(docs))
	for i := range docs {
		next[docs[i].ID] = docs[i]
	}
	s.mu.Lock()
	s.documents = next
	s.mu.Unlock()
	return nil
}

// Get retrieves a document by ID.
func (s *NoteStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// List returns all documents, ordered by ID.
func (s *NoteStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.documents))
	for id := range s.documents {
		docs = append(docs, s.documents[id])
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Count returns the number of stored documents.
func (s *NoteStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents), nil
}
