package driven

import "github.com/custodia-labs/mag/internal/core/domain"

// TableStore reads unit tables from storage.
// Implementations handle the file format (e.g., TOML files).
type TableStore interface {
	// Load reads and decodes the table at path.
	// The returned table is not yet validated.
	Load(path string) (*domain.UnitTable, error)
}
