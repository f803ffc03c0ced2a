// Package cli implements the unitgen command line.
//
// Commands are declared as package-level cobra commands and register
// themselves with rootCmd in init. The generator service is injected by
// main through SetGeneratorService before Execute is called.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/mag/internal/core/ports/driving"
	"github.com/custodia-labs/mag/internal/logger"
)

var (
	// version is overridden at build time with -ldflags "-X".
	version = "dev"

	verbose bool

	generatorService driving.GeneratorService
)

var rootCmd = &cobra.Command{
	Use:   "unitgen",
	Short: "Generate unit marker types from unit tables",
	Long: `unitgen expands a units.toml table into Go source declaring one
marker type per unit, ready for use with the mag quantity packages.
It is normally run through go:generate.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output to stderr")
}

// SetGeneratorService injects the service used by generate and list.
func SetGeneratorService(svc driving.GeneratorService) {
	generatorService = svc
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
