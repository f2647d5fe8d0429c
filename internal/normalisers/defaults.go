package normalisers

import (
	"github.com/refdex-labs/refdex-cli/internal/normalisers/markdown"
	"github.com/refdex-labs/refdex-cli/internal/normalisers/plaintext"
)

// DefaultRegistry returns a registry with all built-in normalisers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(markdown.New())
	r.Register(plaintext.New())
	return r
}
