package memory

import (
	"context"
	"sync"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
)

// Ensure SyncStateStore implements the interface.
var _ driven.SyncStateStore = (*SyncStateStore)(nil)

// SyncStateStore is an in-memory implementation of driven.SyncStateStore.
type SyncStateStore struct {
	mu     sync.RWMutex
	states map[string]domain.SyncState
}

// NewSyncStateStore creates a new in-memory sync state store.
func NewSyncStateStore() *SyncStateStore {
	return &SyncStateStore{states: make(map[string]domain.SyncState)}
}

// Save stores or updates the state for a notes root.
func (s *SyncStateStore) Save(_ context.Context, state domain.SyncState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.Root] = state
	return nil
}

// Get retrieves the state for a notes root.
func (s *SyncStateStore) Get(_ context.Context, root string) (*domain.SyncState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[root]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &state, nil
}
