package mcp

import "errors"

var (
	// ErrMissingQueryService indicates the query port was not wired.
	ErrMissingQueryService = errors.New("query service is required")

	// ErrMissingCatalogService indicates the catalog port was not wired.
	ErrMissingCatalogService = errors.New("catalog service is required")
)
