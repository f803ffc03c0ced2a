package driven

// SourceWriter persists generated source files.
type SourceWriter interface {
	// Read returns the current content of path, or nil with no error when
	// the file does not exist yet.
	Read(path string) ([]byte, error)

	// Write replaces the content of path with src.
	Write(path string, src []byte) error
}
