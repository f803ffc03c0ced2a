package file

import (
	"errors"
	"os"

	"github.com/custodia-labs/mag/internal/core/ports/driven"
)

// Ensure SourceWriter implements the interface.
var _ driven.SourceWriter = (*SourceWriter)(nil)

// SourceWriter is a file-based implementation of driven.SourceWriter.
// Generated files are checked into the repository next to their table,
// so they are written world-readable.
type SourceWriter struct{}

// NewSourceWriter creates a new source writer.
func NewSourceWriter() *SourceWriter {
	return &SourceWriter{}
}

// Read returns the file content, or nil if the file does not exist.
func (w *SourceWriter) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Write replaces the file content.
func (w *SourceWriter) Write(path string, src []byte) error {
	return os.WriteFile(path, src, 0o644)
}
