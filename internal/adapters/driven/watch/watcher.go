package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/mag/internal/core/ports/driven"
	"github.com/custodia-labs/mag/internal/logger"
)

// Ensure FileWatcher implements the interface.
var _ driven.TableWatcher = (*FileWatcher)(nil)

// FileWatcher is an fsnotify-backed driven.TableWatcher.
type FileWatcher struct{}

// NewFileWatcher creates a new file watcher.
func NewFileWatcher() *FileWatcher {
	return &FileWatcher{}
}

// Watch blocks until ctx is done or onChange fails.
func (w *FileWatcher) Watch(ctx context.Context, path string, onChange func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(abs)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("Watching %s", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isEdit(event, abs) {
				continue
			}
			logger.Debug("Table event: %s", event)
			if err := onChange(); err != nil {
				return err
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// isEdit reports whether event leaves new content at path.
func isEdit(event fsnotify.Event, path string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
