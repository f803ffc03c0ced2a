package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/mag/internal/core/domain"
	"github.com/custodia-labs/mag/internal/core/ports/driven"
)

// Ensure TableStore implements the interface.
var _ driven.TableStore = (*TableStore)(nil)

// TableStore is a file-based implementation of driven.TableStore using TOML.
// Each unit package keeps its table in a units.toml file next to its source.
type TableStore struct{}

// NewTableStore creates a new TOML-based table store.
func NewTableStore() *TableStore {
	return &TableStore{}
}

// Load reads the unit table at path. Unknown keys are rejected so that a
// misspelt field (e.g. "facter") fails loudly instead of defaulting to 0.
func (s *TableStore) Load(path string) (*domain.UnitTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var table domain.UnitTable
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidTable, err)
	}

	table.Source = filepath.Base(path)
	return &table, nil
}
