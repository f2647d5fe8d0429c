package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/refdex-labs/refdex-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
)

// listSep joins tag and topic values in a single column.
// Tags and topic segments never contain newlines.
const listSep = "\n"

// Store is a SQLite-backed storage providing the note and sync state
// store interfaces through wrapper types. A sync writes it; later
// read-only invocations load from it without rescanning.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.refdex/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".refdex", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// WAL mode so a watch process and readers coexist
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// NoteStore returns a NoteStore interface backed by this store.
func (s *Store) NoteStore() driven.NoteStore {
	return &noteStore{store: s}
}

// SyncStateStore returns a SyncStateStore interface backed by this store.
func (s *Store) SyncStateStore() driven.SyncStateStore {
	return &syncStateStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Note Store ====================

// noteStore implements driven.NoteStore.
type noteStore struct {
	store *Store
}

var _ driven.NoteStore = (*noteStore)(nil)

// ReplaceAll atomically replaces the whole document set in one
// transaction. Readers see either the old set or the new one.
func (s *noteStore) ReplaceAll(ctx context.Context, docs []domain.Document) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("clearing documents: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (id, title, topic_path, tags, body, uri, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range docs {
		doc := &docs[i]
		_, err := stmt.ExecContext(ctx,
			doc.ID,
			doc.Title,
			strings.Join(doc.TopicPath, listSep),
			strings.Join(doc.Tags, listSep),
			doc.Body,
			doc.URI,
			doc.CreatedAt.UTC(),
			doc.UpdatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("inserting document %s: %w", doc.ID, err)
		}
	}

	return tx.Commit()
}

// Get retrieves a document by ID.
func (s *noteStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, topic_path, tags, body, uri, created_at, updated_at
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return doc, nil
}

// List returns all documents, ordered by ID.
func (s *noteStore) List(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, topic_path, tags, body, uri, created_at, updated_at
		FROM documents ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// Count returns the number of stored documents.
func (s *noteStore) Count(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDocument reads one document row.
func scanDocument(row scanner) (*domain.Document, error) {
	var (
		doc              domain.Document
		topicPath, tags  string
		created, updated time.Time
	)
	err := row.Scan(&doc.ID, &doc.Title, &topicPath, &tags, &doc.Body, &doc.URI, &created, &updated)
	if err != nil {
		return nil, err
	}
	doc.TopicPath = splitList(topicPath)
	doc.Tags = splitList(tags)
	doc.CreatedAt = created
	doc.UpdatedAt = updated
	return &doc, nil
}

// splitList undoes the listSep join, mapping "" back to nil.
func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, listSep)
}

// ==================== Sync State Store ====================

// syncStateStore implements driven.SyncStateStore.
type syncStateStore struct {
	store *Store
}

var _ driven.SyncStateStore = (*syncStateStore)(nil)

// Save stores or updates the state for a notes root.
func (s *syncStateStore) Save(ctx context.Context, state domain.SyncState) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO sync_state (root, load_id, document_count, completed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(root) DO UPDATE SET
			load_id = excluded.load_id,
			document_count = excluded.document_count,
			completed_at = excluded.completed_at
	`, state.Root, state.LoadID, state.DocumentCount, state.CompletedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving sync state: %w", err)
	}
	return nil
}

// Get retrieves the state for a notes root.
func (s *syncStateStore) Get(ctx context.Context, root string) (*domain.SyncState, error) {
	var state domain.SyncState
	row := s.store.db.QueryRowContext(ctx, `
		SELECT root, load_id, document_count, completed_at
		FROM sync_state WHERE root = ?
	`, root)
	err := row.Scan(&state.Root, &state.LoadID, &state.DocumentCount, &state.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting sync state: %w", err)
	}
	return &state, nil
}
