package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/mag/internal/core/domain"
	"github.com/custodia-labs/mag/internal/core/ports/driven"
	"github.com/custodia-labs/mag/internal/core/ports/driving"
	"github.com/custodia-labs/mag/internal/logger"
)

// Ensure GeneratorService implements the interface.
var _ driving.GeneratorService = (*GeneratorService)(nil)

// ErrWatchUnavailable is returned by Watch when no watcher is configured.
var ErrWatchUnavailable = errors.New("table watcher not configured")

// GeneratorService loads unit tables and writes the Go source they describe.
type GeneratorService struct {
	store    driven.TableStore
	renderer driven.SourceRenderer
	writer   driven.SourceWriter
	watcher  driven.TableWatcher
}

// NewGeneratorService creates a new generator service.
// watcher may be nil, in which case Watch is unavailable.
func NewGeneratorService(
	store driven.TableStore,
	renderer driven.SourceRenderer,
	writer driven.SourceWriter,
	watcher driven.TableWatcher,
) *GeneratorService {
	return &GeneratorService{
		store:    store,
		renderer: renderer,
		writer:   writer,
		watcher:  watcher,
	}
}

// List loads and validates a table.
func (s *GeneratorService) List(ctx context.Context, tablePath string) (*domain.UnitTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := s.store.Load(tablePath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", tablePath, err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", tablePath, err)
	}

	logger.Debug("Loaded %d %s units from %s", len(table.Units), table.Measure.Lower(), tablePath)
	return table, nil
}

// Generate renders the table at tablePath into outPath.
func (s *GeneratorService) Generate(ctx context.Context, tablePath, outPath string) (*domain.GenerateResult, error) {
	logger.Section("Generate")

	table, err := s.List(ctx, tablePath)
	if err != nil {
		return nil, err
	}

	src, err := s.renderer.Render(table)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", tablePath, err)
	}

	result := &domain.GenerateResult{Table: table, Output: outPath}

	existing, err := s.writer.Read(outPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", outPath, err)
	}
	if existing != nil && bytes.Equal(existing, src) {
		logger.Debug("%s is up to date", outPath)
		return result, nil
	}

	if err := s.writer.Write(outPath, src); err != nil {
		return nil, fmt.Errorf("write %s: %w", outPath, err)
	}
	result.Changed = true

	logger.Info("Wrote %s (%d bytes)", outPath, len(src))
	return result, nil
}

// Watch regenerates outPath whenever tablePath changes.
func (s *GeneratorService) Watch(ctx context.Context, tablePath, outPath string) error {
	if s.watcher == nil {
		return ErrWatchUnavailable
	}

	if _, err := s.Generate(ctx, tablePath, outPath); err != nil {
		return err
	}

	return s.watcher.Watch(ctx, tablePath, func() error {
		if _, err := s.Generate(ctx, tablePath, outPath); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// A half-edited table is normal while watching; keep going.
			logger.Warn("Skipping regeneration: %v", err)
		}
		return nil
	})
}
