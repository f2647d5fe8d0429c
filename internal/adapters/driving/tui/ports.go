package tui

import (
	"errors"

	"github.com/refdex-labs/refdex-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the TUI needs.
type Ports struct {
	// Query answers catalog lookups.
	Query driving.QueryService

	// Catalog resolves individual notes.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return errors.New("query service is required")
	}
	if p.Catalog == nil {
		return errors.New("catalog service is required")
	}
	return nil
}
