package domain

import "time"

// SyncState records the outcome of the most recent catalog load.
// One row exists per notes root.
type SyncState struct {
	// LoadID uniquely identifies the load run.
	LoadID string

	// Root is the notes root directory that was scanned.
	Root string

	// DocumentCount is the number of documents loaded.
	DocumentCount int

	// CompletedAt is when the load finished.
	CompletedAt time.Time
}
