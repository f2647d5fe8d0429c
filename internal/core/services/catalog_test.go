package services

import (
	"context"
	"path"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refdex-labs/refdex-cli/internal/adapters/driven/storage/memory"
	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockConnector serves a fixed set of raw notes. The raw set and scan
// error are guarded so watcher tests can swap them mid-run.
type mockConnector struct {
	root    string
	changes chan driven.Change

	mu          sync.Mutex
	raws        []domain.RawDocument
	validateErr error
	scanErr     error
}

func (m *mockConnector) Type() string { return "mock" }
func (m *mockConnector) Root() string { return m.root }
func (m *mockConnector) Validate(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validateErr
}
func (m *mockConnector) Scan(context.Context) ([]domain.RawDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	return m.raws, nil
}

func (m *mockConnector) setRaws(raws ...domain.RawDocument) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raws = raws
}

func (m *mockConnector) setScanErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scanErr = err
}
func (m *mockConnector) Watch(context.Context) (<-chan driven.Change, error) {
	return m.changes, nil
}
func (m *mockConnector) Close() error { return nil }

// mockRegistry normalises a raw note without real parsing: the id and
// topic come from the path, and a leading "tags:" line becomes tags.
type mockRegistry struct {
	normaliseErr error
}

func (m *mockRegistry) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if m.normaliseErr != nil {
		return nil, m.normaliseErr
	}
	body := string(raw.Content)
	var tags []string
	if rest, ok := strings.CutPrefix(body, "tags:"); ok {
		line, remainder, _ := strings.Cut(rest, "\n")
		tags = strings.Fields(strings.ToLower(line))
		sort.Strings(tags)
		body = remainder
	}
	return &domain.Document{
		ID:        domain.SlugFromRelPath(raw.RelPath),
		Title:     strings.TrimSuffix(path.Base(raw.RelPath), path.Ext(raw.RelPath)),
		TopicPath: domain.TopicFromRelPath(raw.RelPath),
		Tags:      tags,
		Body:      body,
		URI:       raw.URI,
		CreatedAt: raw.ModTime,
		UpdatedAt: raw.ModTime,
	}, nil
}

func (m *mockRegistry) Register(driven.Normaliser) {}

func (m *mockRegistry) SupportedMIMETypes() []string {
	return []string{"text/markdown"}
}

// --- Test helpers ---

func rawNote(relPath, content string) domain.RawDocument {
	return domain.RawDocument{
		URI:      "/notes/" + relPath,
		RelPath:  relPath,
		Content:  []byte(content),
		MIMEType: "text/markdown",
		ModTime:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestCatalog(raws ...domain.RawDocument) (*Catalog, *mockConnector, *memory.NoteStore) {
	connector := &mockConnector{root: "/notes", raws: raws}
	store := memory.NewNoteStore()
	catalog := NewCatalog(connector, &mockRegistry{}, store, memory.NewSyncStateStore())
	return catalog, connector, store
}

// --- Tests ---

func TestCatalog_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("loads and reports sync state", func(t *testing.T) {
		catalog, _, store := newTestCatalog(
			rawNote("vim-tips.md", "tags: vim\nUse ciw to change a word."),
			rawNote("shell/basics.md", "tags: shell\nQuote your variables."),
		)

		state, err := catalog.Load(ctx)
		require.NoError(t, err)

		assert.NotEmpty(t, state.LoadID)
		assert.Equal(t, "/notes", state.Root)
		assert.Equal(t, 2, state.DocumentCount)
		assert.WithinDuration(t, time.Now(), state.CompletedAt, time.Minute)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("every loaded document round-trips through Get", func(t *testing.T) {
		catalog, _, _ := newTestCatalog(
			rawNote("vim-tips.md", "tags: vim editor\nBody one."),
			rawNote("shell/basics.md", "tags: shell\nBody two."),
			rawNote("python_learn/pytest/fixtures.md", "Body three."),
		)

		_, err := catalog.Load(ctx)
		require.NoError(t, err)

		docs, err := catalog.List(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 3)

		for _, want := range docs {
			got, err := catalog.Get(ctx, want.ID)
			require.NoError(t, err)
			assert.Equal(t, want, *got)
		}
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		catalog, _, _ := newTestCatalog(
			rawNote("zsh.md", "z"),
			rawNote("awk.md", "a"),
			rawNote("git/rebase.md", "g"),
		)

		_, err := catalog.Load(ctx)
		require.NoError(t, err)

		docs, err := catalog.List(ctx)
		require.NoError(t, err)

		ids := make([]string, 0, len(docs))
		for _, d := range docs {
			ids = append(ids, d.ID)
		}
		assert.Equal(t, []string{"awk", "git/rebase", "zsh"}, ids)
	})

	t.Run("get on unknown id returns not found", func(t *testing.T) {
		catalog, _, _ := newTestCatalog(rawNote("vim-tips.md", "x"))

		_, err := catalog.Load(ctx)
		require.NoError(t, err)

		_, err = catalog.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("scan failure keeps previous snapshot", func(t *testing.T) {
		catalog, connector, _ := newTestCatalog(rawNote("vim-tips.md", "first load"))

		_, err := catalog.Load(ctx)
		require.NoError(t, err)

		connector.setScanErr(domain.NewLoadError("/notes/broken.md", assert.AnError))
		_, err = catalog.Load(ctx)
		require.Error(t, err)

		_, ok := domain.IsLoadError(err)
		assert.True(t, ok)

		doc, err := catalog.Get(ctx, "vim-tips")
		require.NoError(t, err)
		assert.Equal(t, "first load", doc.Body)
	})

	t.Run("duplicate ids abort the load", func(t *testing.T) {
		catalog, _, store := newTestCatalog(
			rawNote("shell/Basics.md", "upper"),
			rawNote("shell/basics.md", "lower"),
		)

		_, err := catalog.Load(ctx)
		require.Error(t, err)

		le, ok := domain.IsLoadError(err)
		require.True(t, ok)
		assert.Contains(t, le.Error(), "shell/basics")

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("validate failure aborts the load", func(t *testing.T) {
		catalog, connector, _ := newTestCatalog()
		connector.validateErr = assert.AnError

		_, err := catalog.Load(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("records sync state in the store", func(t *testing.T) {
		connector := &mockConnector{root: "/notes", raws: []domain.RawDocument{rawNote("a.md", "x")}}
		syncStore := memory.NewSyncStateStore()
		catalog := NewCatalog(connector, &mockRegistry{}, memory.NewNoteStore(), syncStore)

		state, err := catalog.Load(ctx)
		require.NoError(t, err)

		saved, err := syncStore.Get(ctx, "/notes")
		require.NoError(t, err)
		assert.Equal(t, state.LoadID, saved.LoadID)
	})
}

func TestCatalog_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("rebuilds snapshot from store contents", func(t *testing.T) {
		store := memory.NewNoteStore()
		require.NoError(t, store.ReplaceAll(ctx, []domain.Document{
			{ID: "vim-tips", Title: "Vim Tips", Tags: []string{"vim"}},
		}))
		catalog := NewCatalog(nil, nil, store, nil)

		require.NoError(t, catalog.Restore(ctx))

		doc, err := catalog.Get(ctx, "vim-tips")
		require.NoError(t, err)
		assert.Equal(t, "Vim Tips", doc.Title)
		assert.Equal(t, []string{"vim-tips"}, catalog.Index().IDsForTag("vim"))
	})

	t.Run("empty store means not loaded", func(t *testing.T) {
		catalog := NewCatalog(nil, nil, memory.NewNoteStore(), nil)
		assert.ErrorIs(t, catalog.Restore(ctx), domain.ErrNotLoaded)
	})
}

func TestCatalog_Details(t *testing.T) {
	ctx := context.Background()
	catalog, _, _ := newTestCatalog(
		rawNote("shell/basics.md", "tags: shell beginner\nQuote your variables."),
	)

	_, err := catalog.Load(ctx)
	require.NoError(t, err)

	details, err := catalog.Details(ctx, "shell/basics")
	require.NoError(t, err)

	assert.Equal(t, "shell/basics", details.ID)
	assert.Equal(t, "basics", details.Title)
	assert.Equal(t, "shell", details.Topic)
	assert.Equal(t, []string{"beginner", "shell"}, details.Tags)
	assert.Equal(t, "/notes/shell/basics.md", details.URI)
	assert.Equal(t, len("Quote your variables."), details.BodyBytes)

	_, err = catalog.Details(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
