package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refdex-labs/refdex-cli/internal/adapters/driven/storage/memory"
	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
	"github.com/refdex-labs/refdex-cli/internal/core/services"
)

// --- Mock implementations ---

// stubConfigStore satisfies the config port without touching disk.
type stubConfigStore struct {
	values map[string]any
}

var _ driven.ConfigStore = (*stubConfigStore)(nil)

func (s *stubConfigStore) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *stubConfigStore) GetString(key string) string {
	v, _ := s.values[key].(string)
	return v
}

func (s *stubConfigStore) GetInt(key string) int {
	v, _ := s.values[key].(int)
	return v
}

func (s *stubConfigStore) GetBool(key string) bool {
	v, _ := s.values[key].(bool)
	return v
}

func (s *stubConfigStore) GetStringSlice(key string) []string {
	v, _ := s.values[key].([]string)
	return v
}

func (s *stubConfigStore) Set(key string, value any) error {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = value
	return nil
}

func (s *stubConfigStore) Save() error { return nil }
func (s *stubConfigStore) Load() error { return nil }
func (s *stubConfigStore) Path() string {
	return "/tmp/refdex-test/config.toml"
}

// --- Test helpers ---

// setupServices injects real services over an in-memory store so
// commands run without a config file or SQLite database.
func setupServices(t *testing.T, docs ...domain.Document) {
	t.Helper()

	queryTag, queryTopic, querySearch = "", "", ""
	queryLimit, queryJSON = 0, false
	verboseFlag, configDirFlag, notesFlag = false, "", ""

	store := memory.NewNoteStore()
	require.NoError(t, store.ReplaceAll(context.Background(), docs))

	catalog := services.NewCatalog(nil, nil, store, nil)
	require.NoError(t, catalog.Restore(context.Background()))

	configStore = &stubConfigStore{}
	catalogService = catalog
	queryService = services.NewQuery(catalog)

	t.Cleanup(func() {
		configStore = nil
		catalogService = nil
		queryService = nil
	})
}

// executeCommand runs the root command with args, capturing output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func sampleDocs() []domain.Document {
	return []domain.Document{
		{
			ID:        "shell/basics",
			Title:     "Shell Basics",
			TopicPath: []string{"shell"},
			Tags:      []string{"shell"},
			Body:      "Quote your variables.",
			URI:       "/notes/shell/basics.md",
		},
		{
			ID:    "vim-tips",
			Title: "Vim Tips",
			Tags:  []string{"editor", "vim"},
			Body:  "Use ciw to change a word.",
			URI:   "/notes/vim-tips.md",
		},
	}
}

// --- Tests ---

func TestVersionCommand(t *testing.T) {
	setupServices(t, sampleDocs()...)

	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "refdex version "+version)
}

func TestQueryCommand(t *testing.T) {
	t.Run("requires exactly one mode", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		_, err := executeCommand(t, "query")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of")

		_, err = executeCommand(t, "query", "--tag", "vim", "--search", "vim")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of")
	})

	t.Run("by tag lists matching notes", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		out, err := executeCommand(t, "query", "--tag", "vim")
		require.NoError(t, err)
		assert.Contains(t, out, "Vim Tips")
		assert.Contains(t, out, "vim-tips")
		assert.NotContains(t, out, "Shell Basics")
		assert.Contains(t, out, "Total: 1")
	})

	t.Run("by topic lists notes under the prefix", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		out, err := executeCommand(t, "query", "--topic", "shell")
		require.NoError(t, err)
		assert.Contains(t, out, "Shell Basics")
		assert.NotContains(t, out, "Vim Tips")
	})

	t.Run("search ranks and snips", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		out, err := executeCommand(t, "query", "--search", "ciw")
		require.NoError(t, err)
		assert.Contains(t, out, "Vim Tips")
		assert.Contains(t, out, "Use ciw to change a word.")
	})

	t.Run("no matches is not an error", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		out, err := executeCommand(t, "query", "--tag", "docker")
		require.NoError(t, err)
		assert.Contains(t, out, "No results found.")
	})

	t.Run("json output is machine readable", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		out, err := executeCommand(t, "query", "--tag", "vim", "--json")
		require.NoError(t, err)

		var results []queryResultJSON
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		require.Len(t, results, 1)
		assert.Equal(t, "vim-tips", results[0].ID)
		assert.Equal(t, []string{"editor", "vim"}, results[0].Tags)
	})

	t.Run("limit caps the result count", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		out, err := executeCommand(t, "query", "--search", "e", "--limit", "1", "--json")
		require.NoError(t, err)

		var results []queryResultJSON
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		assert.Len(t, results, 1)
	})
}

func TestNoteCommands(t *testing.T) {
	t.Run("list shows every note", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		out, err := executeCommand(t, "note", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "shell/basics")
		assert.Contains(t, out, "vim-tips")
		assert.Contains(t, out, "Total: 2 notes")
	})

	t.Run("get shows metadata", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		out, err := executeCommand(t, "note", "get", "shell/basics")
		require.NoError(t, err)
		assert.Contains(t, out, "ID: shell/basics")
		assert.Contains(t, out, "Title: Shell Basics")
		assert.Contains(t, out, "Topic: shell")
		assert.Contains(t, out, "URI: /notes/shell/basics.md")
	})

	t.Run("get on unknown id fails", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		_, err := executeCommand(t, "note", "get", "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("content prints the body", func(t *testing.T) {
		setupServices(t, sampleDocs()...)

		out, err := executeCommand(t, "note", "content", "vim-tips")
		require.NoError(t, err)
		assert.Contains(t, out, "Use ciw to change a word.")
	})
}

func TestTagsAndTopicsCommands(t *testing.T) {
	setupServices(t, sampleDocs()...)

	out, err := executeCommand(t, "tags")
	require.NoError(t, err)
	assert.Contains(t, out, "editor (1)")
	assert.Contains(t, out, "shell (1)")
	assert.Contains(t, out, "vim (1)")

	out, err = executeCommand(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "shell (1)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "exactly ten..", truncate("exactly ten..", 13))
	assert.Equal(t, "a long sni...", truncate("a long snippet that keeps going", 13))
}
