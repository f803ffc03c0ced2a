package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	generateTable string
	generateOut   string
	generateWatch bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a unit table as Go source",
	Long: `Reads a unit table, validates it and writes the Go source declaring
its units. The output file is only rewritten when its content changes.
With --watch, the table is regenerated on every save until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateTable, "table", "t", "units.toml", "unit table to read")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "units_gen.go", "Go file to write")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "regenerate whenever the table changes")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if generatorService == nil {
		return errors.New("generator service not configured")
	}

	if generateWatch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cmd.Printf("Watching %s (Ctrl+C to stop)...\n", generateTable)
		if err := generatorService.Watch(ctx, generateTable, generateOut); err != nil {
			return fmt.Errorf("watch failed: %w", err)
		}
		return nil
	}

	result, err := generatorService.Generate(cmd.Context(), generateTable, generateOut)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	if !result.Changed {
		cmd.Printf("%s is up to date.\n", result.Output)
		return nil
	}
	cmd.Printf("Wrote %d %s units to %s.\n",
		len(result.Table.Units), result.Table.Measure.Lower(), result.Output)
	return nil
}
