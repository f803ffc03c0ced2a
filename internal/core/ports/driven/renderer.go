package driven

import "github.com/custodia-labs/mag/internal/core/domain"

// SourceRenderer turns a validated unit table into Go source.
type SourceRenderer interface {
	// Render returns formatted Go source declaring every unit in table.
	// Output must be deterministic for a given table.
	Render(table *domain.UnitTable) ([]byte, error)
}
