package normalisers

import (
	"context"
	"fmt"
	"sort"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches raw notes to the highest-priority normaliser
// registered for their MIME type.
type Registry struct {
	byMIME map[string][]driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byMIME: make(map[string][]driven.Normaliser)}
}

// Register adds a normaliser to the registry.
func (r *Registry) Register(n driven.Normaliser) {
	for _, mime := range n.SupportedMIMETypes() {
		r.byMIME[mime] = append(r.byMIME[mime], n)
		sort.SliceStable(r.byMIME[mime], func(i, j int) bool {
			return r.byMIME[mime][i].Priority() > r.byMIME[mime][j].Priority()
		})
	}
}

// Normalise transforms a raw note using the best matching normaliser.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	candidates := r.byMIME[raw.MIMEType]
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}
	return candidates[0].Normalise(ctx, raw)
}

// SupportedMIMETypes returns all MIME types that can be normalised.
func (r *Registry) SupportedMIMETypes() []string {
	types := make([]string, 0, len(r.byMIME))
	for mime := range r.byMIME {
		types = append(types, mime)
	}
	sort.Strings(types)
	return types
}
