package driven

import (
	"context"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// SyncStateStore persists load-run outcomes.
type SyncStateStore interface {
	// Save stores or updates the state for a notes root.
	Save(ctx context.Context, state domain.SyncState) error

	// Get retrieves the state for a notes root.
	// Returns domain.ErrNotFound when no load has completed.
	Get(ctx context.Context, root string) (*domain.SyncState, error)
}
