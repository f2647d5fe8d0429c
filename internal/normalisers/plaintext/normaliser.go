package plaintext

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text notes.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise converts a raw note into a document. Plain text carries
// no frontmatter, so the title comes from the filename and the topic
// path from the directory structure.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	return &domain.Document{
		ID:        domain.SlugFromRelPath(raw.RelPath),
		Title:     titleFromURI(raw.URI),
		TopicPath: domain.TopicFromRelPath(raw.RelPath),
		Body:      strings.TrimSpace(string(raw.Content)),
		URI:       raw.URI,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// titleFromURI derives a readable title from the filename.
func titleFromURI(uri string) string {
	filename := filepath.Base(uri)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}
