package driving

import (
	"context"

	"github.com/custodia-labs/mag/internal/core/domain"
)

// GeneratorService expands unit tables into Go source files.
type GeneratorService interface {
	// Generate validates the table at tablePath and writes the rendered
	// source to outPath. The file is only rewritten when its content
	// would change.
	Generate(ctx context.Context, tablePath, outPath string) (*domain.GenerateResult, error)

	// List loads and validates the table at tablePath.
	List(ctx context.Context, tablePath string) (*domain.UnitTable, error)

	// Watch generates once, then regenerates on every table edit until
	// ctx is cancelled. Invalid edits are reported and skipped.
	Watch(ctx context.Context, tablePath, outPath string) error
}
