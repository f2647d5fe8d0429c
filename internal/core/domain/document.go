package domain

import (
	"strings"
	"time"
)

// Document represents a single stored note after normalisation.
// It is immutable once created; reloads replace the whole set.
type Document struct {
	// ID is the unique identifier, derived from the note's path
	// relative to the notes root. Stable across reloads.
	ID string

	// Title is the human-readable title, from frontmatter or the
	// first heading, falling back to the filename.
	Title string

	// TopicPath is the ordered topic hierarchy, derived from the
	// directory structure relative to the notes root.
	TopicPath []string

	// Tags classify the note. Stored lowercased, sorted, deduplicated.
	Tags []string

	// Body is the searchable plain text content.
	Body string

	// URI is the absolute path of the source file.
	URI string

	// CreatedAt is when the document was first loaded.
	CreatedAt time.Time

	// UpdatedAt is when the document was last loaded.
	UpdatedAt time.Time
}

// HasTag reports whether the document carries the tag.
// Matching is case-insensitive.
func (d *Document) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Topic returns the topic path joined with "/".
func (d *Document) Topic() string {
	return strings.Join(d.TopicPath, "/")
}

// UnderTopic reports whether the document sits at or below the
// given topic prefix. Matching is case-insensitive; an empty
// prefix matches every document.
func (d *Document) UnderTopic(prefix []string) bool {
	if len(prefix) > len(d.TopicPath) {
		return false
	}
	for i, seg := range prefix {
		if !strings.EqualFold(seg, d.TopicPath[i]) {
			return false
		}
	}
	return true
}

// RawDocument is the unprocessed output of a connector, before
// normalisation assigns identity and extracts metadata.
type RawDocument struct {
	// URI is the absolute path of the source file.
	URI string

	// RelPath is the path relative to the notes root. Document
	// identity and topic paths are derived from it.
	RelPath string

	// Content is the raw file content.
	Content []byte

	// MIMEType describes the content, e.g. "text/markdown".
	MIMEType string

	// ModTime is the source file's modification time.
	ModTime time.Time
}

// SlugFromRelPath derives a document ID from a root-relative path.
// The extension is dropped, separators become "/", and the result
// is lowercased: "python_learn/Pytest/Basics.md" -> "python_learn/pytest/basics".
func SlugFromRelPath(relPath string) string {
	s := strings.ReplaceAll(relPath, "\\", "/")
	if i := strings.LastIndex(s, "."); i > strings.LastIndex(s, "/") {
		s = s[:i]
	}
	return strings.ToLower(strings.Trim(s, "/"))
}

// TopicFromRelPath derives the topic path from a root-relative path:
// every directory component, excluding the filename itself.
func TopicFromRelPath(relPath string) []string {
	s := strings.ReplaceAll(relPath, "\\", "/")
	parts := strings.Split(s, "/")
	if len(parts) <= 1 {
		return nil
	}
	topic := make([]string, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		if p = strings.TrimSpace(p); p != "" {
			topic = append(topic, p)
		}
	}
	if len(topic) == 0 {
		return nil
	}
	return topic
}

// ParseTopic splits a "/"-joined topic string into its segments.
func ParseTopic(topic string) []string {
	var out []string
	for _, seg := range strings.Split(topic, "/") {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
