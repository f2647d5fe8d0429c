// Package filesystem implements the Connector interface over a local
// directory of notes. It is the only connector refdex ships: the
// catalog's sources are human-authored files on disk.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
	"github.com/refdex-labs/refdex-cli/internal/core/ports/driven"
	"github.com/refdex-labs/refdex-cli/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// mimeByExt maps note file extensions to MIME types.
var mimeByExt = map[string]string{
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".txt":      "text/plain",
}

// Connector scans a local directory tree for notes.
type Connector struct {
	rootPath string
	watcher  *fsnotify.Watcher
}

// New creates a filesystem connector rooted at rootPath.
func New(rootPath string) *Connector {
	return &Connector{rootPath: rootPath}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// Root returns the configured notes root.
func (c *Connector) Root() string {
	return c.rootPath
}

// Validate checks the notes root exists and is a readable directory.
func (c *Connector) Validate(_ context.Context) error {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		return domain.NewLoadError(c.rootPath, err)
	}
	if !info.IsDir() {
		return domain.NewLoadError(c.rootPath, fmt.Errorf("not a directory"))
	}
	return nil
}

// Scan walks the root and returns all raw notes. Dotfiles and
// unknown extensions are skipped; an unreadable note aborts the scan
// with a LoadError.
func (c *Connector) Scan(ctx context.Context) ([]domain.RawDocument, error) {
	var raws []domain.RawDocument

	err := filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return domain.NewLoadError(path, err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		name := d.Name()
		if d.IsDir() {
			if path != c.rootPath && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		mime, ok := mimeByExt[strings.ToLower(filepath.Ext(name))]
		if !ok {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return domain.NewLoadError(path, err)
		}
		info, err := d.Info()
		if err != nil {
			return domain.NewLoadError(path, err)
		}
		rel, err := filepath.Rel(c.rootPath, path)
		if err != nil {
			return domain.NewLoadError(path, err)
		}

		raws = append(raws, domain.RawDocument{
			URI:      path,
			RelPath:  filepath.ToSlash(rel),
			Content:  content,
			MIMEType: mime,
			ModTime:  info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Scan found %d notes under %s", len(raws), c.rootPath)
	return raws, nil
}

// Watch listens for changes under the root until ctx is done.
// Every directory is registered with fsnotify; new directories are
// added as they appear.
func (c *Connector) Watch(ctx context.Context) (<-chan driven.Change, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	c.watcher = watcher

	err = filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != c.rootPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("registering watches: %w", err)
	}

	changes := make(chan driven.Change)
	go func() {
		defer close(changes)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				c.forward(ctx, event, changes)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error: %v", err)
			}
		}
	}()
	return changes, nil
}

// forward translates an fsnotify event into a Change, ignoring files
// the scanner would skip.
func (c *Connector) forward(ctx context.Context, event fsnotify.Event, changes chan<- driven.Change) {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return
	}

	// Watch new directories so notes created inside them are seen.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := c.watcher.Add(event.Name); err != nil {
				logger.Warn("Watching %s: %v", event.Name, err)
			}
			return
		}
	}

	if _, ok := mimeByExt[strings.ToLower(filepath.Ext(name))]; !ok {
		return
	}

	kind := driven.ChangeModified
	if event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		kind = driven.ChangeRemoved
	}

	select {
	case changes <- driven.Change{Kind: kind, URI: event.Name}:
	case <-ctx.Done():
	}
}

// Close releases watcher resources.
func (c *Connector) Close() error {
	if c.watcher != nil {
		return c.watcher.Close()
	}
	return nil
}
