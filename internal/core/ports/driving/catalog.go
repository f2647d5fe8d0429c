package driving

import (
	"context"
	"time"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// CatalogService owns the document set and its derived index.
type CatalogService interface {
	// Load scans the source, normalises every note, replaces the
	// store contents, and rebuilds the index. Wholesale: on any
	// LoadError the previous snapshot stays in place.
	Load(ctx context.Context) (*domain.SyncState, error)

	// Get retrieves a document by ID.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents, ordered by ID.
	List(ctx context.Context) ([]domain.Document, error)

	// Details returns display metadata for a document.
	Details(ctx context.Context, id string) (*NoteDetails, error)
}

// NoteDetails provides a standardised view of document metadata.
type NoteDetails struct {
	// ID is the unique document identifier.
	ID string

	// Title is the document title.
	Title string

	// Topic is the "/"-joined topic path.
	Topic string

	// Tags are the document's tags, sorted.
	Tags []string

	// URI is the original file location.
	URI string

	// BodyBytes is the size of the searchable body.
	BodyBytes int

	// CreatedAt is when the document was first loaded.
	CreatedAt time.Time

	// UpdatedAt is when the document was last loaded.
	UpdatedAt time.Time
}
