package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/mag/internal/core/domain"
)

var listTable string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the units declared in a unit table",
	Long: `Validates a unit table and prints its units with their labels and
conversion factors. Temperature tables also show each scale's absolute
zero; time tables show the reciprocal label used for frequencies.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listTable, "table", "t", "units.toml", "unit table to read")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if generatorService == nil {
		return errors.New("generator service not configured")
	}

	table, err := generatorService.List(cmd.Context(), listTable)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	cmd.Print(renderTable(table, newStyles(defaultPalette())))
	return nil
}

// renderTable lays out table as aligned columns.
func renderTable(table *domain.UnitTable, st styles) string {
	header := []string{"NAME", "LABEL", "FACTOR"}
	switch table.Measure {
	case domain.MeasureTemperature:
		header = append(header, "ZERO")
	case domain.MeasureTime:
		header = append(header, "INVERSE")
	}

	rows := make([][]string, 0, len(table.Units))
	for _, u := range table.Units {
		row := []string{u.Name, u.Label, strconv.FormatFloat(u.Factor, 'g', -1, 64)}
		switch table.Measure {
		case domain.MeasureTemperature:
			row = append(row, strconv.FormatFloat(u.Zero, 'g', -1, 64))
		case domain.MeasureTime:
			row = append(row, u.Inverse)
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	title := fmt.Sprintf("%s: %d %s units", table.Package, len(table.Units), table.Measure.Lower())
	b.WriteString(st.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("factors convert to " + table.Base + "s"))
	b.WriteString("\n\n")

	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = st.Header.Width(widths[i] + 2).Render(h)
	}
	b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			style := st.Cell
			if i == 0 {
				style = st.Name
			}
			cells[i] = style.Width(widths[i] + 2).Render(cell)
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		b.WriteString("\n")
	}
	return b.String()
}
