package driven

import (
	"context"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// ChangeKind describes what a watch event observed.
type ChangeKind int

const (
	// ChangeModified covers creates and writes.
	ChangeModified ChangeKind = iota

	// ChangeRemoved covers deletes and renames away.
	ChangeRemoved
)

// Change is a single watch event for a source file.
type Change struct {
	// Kind is what happened.
	Kind ChangeKind

	// URI is the absolute path of the affected file.
	URI string
}

// Connector fetches raw notes from a source. refdex only ships a
// filesystem connector, but the catalog service is written against
// this interface.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// Root returns the configured notes root.
	Root() string

	// Validate checks the notes root exists and is readable.
	// Returns nil if ready to scan, error describing the problem otherwise.
	Validate(ctx context.Context) error

	// Scan walks the source and returns all raw notes.
	// Any unreadable file aborts the scan with a domain.LoadError.
	Scan(ctx context.Context) ([]domain.RawDocument, error)

	// Watch listens for changes under the root until ctx is done.
	Watch(ctx context.Context) (<-chan Change, error)

	// Close releases resources.
	Close() error
}
