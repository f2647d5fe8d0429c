package driven

import (
	"context"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// Normaliser transforms raw notes into documents.
// Each normaliser handles specific MIME types (e.g., Markdown).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	Priority() int

	// Normalise transforms a raw note into a document.
	// A malformed note returns a domain.LoadError.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
