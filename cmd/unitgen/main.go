// Command unitgen expands a units.toml table into Go unit marker types.
//
// Each unit package runs it through go:generate:
//
//	//go:generate go run github.com/custodia-labs/mag/cmd/unitgen generate --table units.toml --out units_gen.go
package main

import (
	"os"

	"github.com/custodia-labs/mag/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mag/internal/adapters/driven/render"
	"github.com/custodia-labs/mag/internal/adapters/driven/watch"
	"github.com/custodia-labs/mag/internal/adapters/driving/cli"
	"github.com/custodia-labs/mag/internal/core/services"
)

func main() {
	generator := services.NewGeneratorService(
		file.NewTableStore(),
		render.NewGoSource(),
		file.NewSourceWriter(),
		watch.NewFileWatcher(),
	)
	cli.SetGeneratorService(generator)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
