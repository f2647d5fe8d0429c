package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
	"github.com/refdex-labs/refdex-cli/internal/logger"
)

// reloadRate throttles rebuilds to one per two seconds. A save in an
// editor fires several events back to back; the limiter coalesces the
// burst into a single reload.
const reloadRate = rate.Limit(0.5)

// Watcher reloads the catalog when the notes root changes.
// Every change triggers a full reload; there is no incremental path.
type Watcher struct {
	catalog   *Catalog
	connector driven.Connector
	limiter   *rate.Limiter
}

// NewWatcher creates a watcher over the catalog's source.
func NewWatcher(catalog *Catalog, connector driven.Connector) *Watcher {
	return &Watcher{
		catalog:   catalog,
		connector: connector,
		limiter:   rate.NewLimiter(reloadRate, 1),
	}
}

// Run watches for changes until ctx is done. The initial load happens
// before watching starts, so a reader always sees a populated catalog.
func (w *Watcher) Run(ctx context.Context) error {
	if _, err := w.catalog.Load(ctx); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}

	changes, err := w.connector.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching: %w", err)
	}
	logger.Info("Watching %s", w.connector.Root())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("Change: %s", change.URI)
			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}
			drain(changes)
			if _, err := w.catalog.Load(ctx); err != nil {
				// A half-written file fails normalisation; keep the
				// previous snapshot and wait for the next event.
				logger.Warn("Reload failed: %v", err)
			}
		}
	}
}

// drain discards changes already queued; the pending reload covers them.
func drain(changes <-chan driven.Change) {
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
