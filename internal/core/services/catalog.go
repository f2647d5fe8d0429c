package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driving"
	"github.com/refdex-labs/refdex-cli/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driving.CatalogService = (*Catalog)(nil)

// snapshot is an immutable view of the catalog: the document set and
// the index derived from it. Loads build a fresh snapshot and swap
// the pointer; in-flight readers keep the old one.
type snapshot struct {
	docs  map[string]domain.Document
	order []string // ids sorted, for deterministic listing
	index *domain.Index
}

// emptySnapshot is what readers see before the first load.
var emptySnapshot = &snapshot{
	docs:  map[string]domain.Document{},
	index: domain.NewIndex(),
}

// Catalog owns the document set and its derived index.
type Catalog struct {
	connector driven.Connector
	registry  driven.NormaliserRegistry
	store     driven.NoteStore
	syncStore driven.SyncStateStore

	mu   sync.RWMutex
	snap *snapshot
}

// NewCatalog creates a catalog service. The syncStore is optional.
func NewCatalog(
	connector driven.Connector,
	registry driven.NormaliserRegistry,
	store driven.NoteStore,
	syncStore driven.SyncStateStore,
) *Catalog {
	return &Catalog{
		connector: connector,
		registry:  registry,
		store:     store,
		syncStore: syncStore,
		snap:      emptySnapshot,
	}
}

// Load scans the source, normalises every note, replaces the store
// contents, and rebuilds the index. Any LoadError aborts the load and
// leaves the previous snapshot in place.
func (c *Catalog) Load(ctx context.Context) (*domain.SyncState, error) {
	if c.connector == nil || c.registry == nil {
		return nil, domain.ErrInvalidInput
	}

	logger.Section("Catalog Load")
	logger.Debug("Root: %s", c.connector.Root())

	if err := c.connector.Validate(ctx); err != nil {
		return nil, err
	}

	raws, err := c.connector.Scan(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scanned %d raw notes", len(raws))

	docs := make([]domain.Document, 0, len(raws))
	seen := make(map[string]string, len(raws))
	for i := range raws {
		doc, err := c.registry.Normalise(ctx, &raws[i])
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[doc.ID]; dup {
			return nil, domain.NewLoadError(raws[i].URI,
				fmt.Errorf("document id %q already produced by %s", doc.ID, prev))
		}
		seen[doc.ID] = raws[i].URI
		docs = append(docs, *doc)
	}

	if err := c.store.ReplaceAll(ctx, docs); err != nil {
		return nil, fmt.Errorf("replacing documents: %w", err)
	}

	c.swap(docs)
	logger.Info("Loaded %d documents", len(docs))

	state := &domain.SyncState{
		LoadID:        uuid.New().String(),
		Root:          c.connector.Root(),
		DocumentCount: len(docs),
		CompletedAt:   time.Now(),
	}
	if c.syncStore != nil {
		if err := c.syncStore.Save(ctx, *state); err != nil {
			return nil, fmt.Errorf("saving sync state: %w", err)
		}
	}
	return state, nil
}

// Restore rebuilds the in-memory snapshot from the store contents.
// Used by read-only commands running against a previously synced
// persistent store, where no scan is wanted.
func (c *Catalog) Restore(ctx context.Context) error {
	docs, err := c.store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}
	if len(docs) == 0 {
		return domain.ErrNotLoaded
	}
	c.swap(docs)
	logger.Debug("Restored %d documents from store", len(docs))
	return nil
}

// swap installs a fresh snapshot built from docs.
func (c *Catalog) swap(docs []domain.Document) {
	byID := make(map[string]domain.Document, len(docs))
	order := make([]string, 0, len(docs))
	for i := range docs {
		byID[docs[i].ID] = docs[i]
		order = append(order, docs[i].ID)
	}
	sort.Strings(order)

	next := &snapshot{
		docs:  byID,
		order: order,
		index: BuildIndex(docs),
	}

	c.mu.Lock()
	c.snap = next
	c.mu.Unlock()
}

// current returns the live snapshot.
func (c *Catalog) current() *snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Index returns the current derived index.
func (c *Catalog) Index() *domain.Index {
	return c.current().index
}

// Get retrieves a document by ID.
func (c *Catalog) Get(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := c.current().docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// List returns all documents, ordered by ID.
func (c *Catalog) List(_ context.Context) ([]domain.Document, error) {
	snap := c.current()
	docs := make([]domain.Document, 0, len(snap.order))
	for _, id := range snap.order {
		docs = append(docs, snap.docs[id])
	}
	return docs, nil
}

// Details returns display metadata for a document.
func (c *Catalog) Details(ctx context.Context, id string) (*driving.NoteDetails, error) {
	doc, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &driving.NoteDetails{
		ID:        doc.ID,
		Title:     doc.Title,
		Topic:     doc.Topic(),
		Tags:      doc.Tags,
		URI:       doc.URI,
		BodyBytes: len(doc.Body),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
