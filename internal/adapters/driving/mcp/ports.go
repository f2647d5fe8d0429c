package mcp

import (
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Query answers catalog lookups.
	Query driving.QueryService

	// Catalog resolves individual notes.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
