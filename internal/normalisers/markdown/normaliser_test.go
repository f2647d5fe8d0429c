package markdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

func raw(relPath, content string) *domain.RawDocument {
	return &domain.RawDocument{
		URI:      "/notes/" + relPath,
		RelPath:  relPath,
		Content:  []byte(content),
		MIMEType: "text/markdown",
		ModTime:  time.Now(),
	}
}

func TestNormaliser_Normalise(t *testing.T) {
	ctx := context.Background()
	n := New()

	t.Run("frontmatter supplies title and tags", func(t *testing.T) {
		doc, err := n.Normalise(ctx, raw("vim-tips.md", `---
title: Vim Tips
tags: [Vim, editor, vim]
---
Use ciw to change a word.`))
		require.NoError(t, err)

		assert.Equal(t, "vim-tips", doc.ID)
		assert.Equal(t, "Vim Tips", doc.Title)
		assert.Equal(t, []string{"editor", "vim"}, doc.Tags)
		assert.Equal(t, "Use ciw to change a word.", doc.Body)
	})

	t.Run("frontmatter topic overrides the directory", func(t *testing.T) {
		doc, err := n.Normalise(ctx, raw("misc/note.md", `---
topic: editors/vim
---
Body.`))
		require.NoError(t, err)
		assert.Equal(t, []string{"editors", "vim"}, doc.TopicPath)
	})

	t.Run("topic defaults to the directory path", func(t *testing.T) {
		doc, err := n.Normalise(ctx, raw("shell/basics/quoting.md", "Body."))
		require.NoError(t, err)
		assert.Equal(t, []string{"shell", "basics"}, doc.TopicPath)
	})

	t.Run("malformed frontmatter aborts with a load error", func(t *testing.T) {
		_, err := n.Normalise(ctx, raw("bad.md", "---\ntitle: [unclosed\n---\nBody."))
		require.Error(t, err)

		le, ok := domain.IsLoadError(err)
		require.True(t, ok)
		assert.Equal(t, "/notes/bad.md", le.Path)
	})

	t.Run("title falls back to the first heading", func(t *testing.T) {
		doc, err := n.Normalise(ctx, raw("note.md", "intro text\n\n# Shell Quoting\n\nBody."))
		require.NoError(t, err)
		assert.Equal(t, "Shell Quoting", doc.Title)
	})

	t.Run("title falls back to the filename", func(t *testing.T) {
		doc, err := n.Normalise(ctx, raw("git_rebase-workflow.md", "no headings here"))
		require.NoError(t, err)
		assert.Equal(t, "git rebase workflow", doc.Title)
	})

	t.Run("nil raw is invalid input", func(t *testing.T) {
		_, err := n.Normalise(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestStripMarkdown(t *testing.T) {
	t.Run("keeps inline code content", func(t *testing.T) {
		assert.Equal(t, "Run git rebase -i to edit history.",
			stripMarkdown("Run `git rebase -i` to edit history."))
	})

	t.Run("drops fenced code blocks", func(t *testing.T) {
		out := stripMarkdown("before\n```\nsecret block\n```\nafter")
		assert.NotContains(t, out, "secret block")
		assert.Contains(t, out, "before")
		assert.Contains(t, out, "after")
	})

	t.Run("keeps link text, drops targets", func(t *testing.T) {
		out := stripMarkdown("See [the manual](https://example.com/man) for details.")
		assert.Equal(t, "See the manual for details.", out)
	})

	t.Run("drops images entirely", func(t *testing.T) {
		assert.Equal(t, "caption", stripMarkdown("![diagram](img.png)\ncaption"))
	})

	t.Run("strips headings and emphasis markers", func(t *testing.T) {
		out := stripMarkdown("## Usage\n\n**bold** and __underlined__ text")
		assert.Equal(t, "Usage\n\nbold and underlined text", out)
	})

	t.Run("strips list markers", func(t *testing.T) {
		out := stripMarkdown("- first\n* second\n1. third")
		assert.Equal(t, "first\nsecond\nthird", out)
	})
}

func TestCanonicalTags(t *testing.T) {
	t.Run("lowercases dedupes and sorts", func(t *testing.T) {
		assert.Equal(t, []string{"shell", "vim"}, canonicalTags([]string{"Vim", "shell", "VIM", " vim "}))
	})

	t.Run("empty input is nil", func(t *testing.T) {
		assert.Nil(t, canonicalTags(nil))
		assert.Nil(t, canonicalTags([]string{"", "  "}))
	})
}
