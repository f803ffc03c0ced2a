package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// palette defines the colours used by table listings.
type palette struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Accent highlights unit names.
	Accent lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color
}

func defaultPalette() palette {
	return palette{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Accent:  lipgloss.Color("#06B6D4"), // Cyan
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
	}
}

// styles contains pre-configured lipgloss styles for listings.
type styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Name   lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Header: lipgloss.NewStyle().Bold(true),
		Name:   lipgloss.NewStyle().Foreground(p.Accent),
		Cell:   lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Foreground(p.Muted),
	}
}
