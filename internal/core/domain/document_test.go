package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugFromRelPath(t *testing.T) {
	t.Run("drops extension and lowercases", func(t *testing.T) {
		assert.Equal(t, "python_learn/pytest/basics", SlugFromRelPath("python_learn/Pytest/Basics.md"))
	})

	t.Run("handles file at root", func(t *testing.T) {
		assert.Equal(t, "readme", SlugFromRelPath("README.md"))
	})

	t.Run("keeps dots in directory names", func(t *testing.T) {
		assert.Equal(t, "v1.2/notes", SlugFromRelPath("v1.2/notes.txt"))
	})

	t.Run("normalises windows separators", func(t *testing.T) {
		assert.Equal(t, "shell/basics", SlugFromRelPath(`shell\basics.md`))
	})

	t.Run("is stable across calls", func(t *testing.T) {
		assert.Equal(t, SlugFromRelPath("a/b/c.md"), SlugFromRelPath("a/b/c.md"))
	})
}

func TestTopicFromRelPath(t *testing.T) {
	t.Run("uses directory components", func(t *testing.T) {
		assert.Equal(t, []string{"shell", "basics"}, TopicFromRelPath("shell/basics/variables.md"))
	})

	t.Run("nil for root-level files", func(t *testing.T) {
		assert.Nil(t, TopicFromRelPath("vim-cheatsheet.md"))
	})
}

func TestParseTopic(t *testing.T) {
	t.Run("splits on slash", func(t *testing.T) {
		assert.Equal(t, []string{"python", "pytest"}, ParseTopic("python/pytest"))
	})

	t.Run("ignores empty segments", func(t *testing.T) {
		assert.Equal(t, []string{"python"}, ParseTopic("/python/"))
	})

	t.Run("nil for empty string", func(t *testing.T) {
		assert.Nil(t, ParseTopic(""))
	})
}

func TestDocument_HasTag(t *testing.T) {
	doc := Document{Tags: []string{"shell", "vim"}}

	t.Run("matches exactly", func(t *testing.T) {
		assert.True(t, doc.HasTag("vim"))
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		assert.True(t, doc.HasTag("VIM"))
		assert.True(t, doc.HasTag("  Shell "))
	})

	t.Run("rejects absent tag", func(t *testing.T) {
		assert.False(t, doc.HasTag("python"))
	})
}

func TestDocument_UnderTopic(t *testing.T) {
	doc := Document{TopicPath: []string{"python_learn", "pytest", "examples"}}

	t.Run("matches every prefix", func(t *testing.T) {
		assert.True(t, doc.UnderTopic(nil))
		assert.True(t, doc.UnderTopic([]string{"python_learn"}))
		assert.True(t, doc.UnderTopic([]string{"python_learn", "pytest"}))
		assert.True(t, doc.UnderTopic([]string{"Python_Learn", "PYTEST", "examples"}))
	})

	t.Run("rejects longer prefix", func(t *testing.T) {
		assert.False(t, doc.UnderTopic([]string{"python_learn", "pytest", "examples", "deep"}))
	})

	t.Run("rejects diverging prefix", func(t *testing.T) {
		assert.False(t, doc.UnderTopic([]string{"shell"}))
	})
}

func TestDocument_Topic(t *testing.T) {
	nested := Document{TopicPath: []string{"shell", "basics"}}
	assert.Equal(t, "shell/basics", nested.Topic())

	var root Document
	assert.Equal(t, "", root.Topic())
}
