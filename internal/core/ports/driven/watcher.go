package driven

import "context"

// TableWatcher observes a unit table file for edits.
type TableWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange each time the
	// file at path is written or replaced. A non-nil error from onChange
	// stops the watch and is returned.
	Watch(ctx context.Context, path string, onChange func() error) error
}
