package driven

import (
	"context"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// NoteStore persists documents. The catalog treats the store as the
// source of truth; the index is always derived from its contents.
type NoteStore interface {
	// ReplaceAll atomically replaces the whole document set.
	// Loads are wholesale, there is no partial update.
	ReplaceAll(ctx context.Context, docs []domain.Document) error

	// Get retrieves a document by ID.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents, ordered by ID.
	List(ctx context.Context) ([]domain.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}
