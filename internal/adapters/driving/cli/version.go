package cli

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mag/internal/core/domain"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Prints the unitgen version, the Go toolchain it was built with, the
package generated files import and the measures a unit table may declare.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			cmd.Println(version)
			return
		}
		cmd.Printf("unitgen version %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		cmd.Printf("imports:  %s\n", domain.LibraryImportPath)
		cmd.Printf("measures: %s\n", measureList())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print the version number only")
	rootCmd.AddCommand(versionCmd)
}

func measureList() string {
	names := make([]string, 0, len(domain.AllMeasures()))
	for _, m := range domain.AllMeasures() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}
