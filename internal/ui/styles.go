package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Ratio styles, chosen by how close a ratio is to 1
	Full    lipgloss.Style
	Partial lipgloss.Style
	None    lipgloss.Style

	// Structural styles
	Metric lipgloss.Style
	Count  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if !enabled {
		s.Full = lipgloss.NewStyle()
		s.Partial = lipgloss.NewStyle()
		s.None = lipgloss.NewStyle()
		s.Metric = lipgloss.NewStyle()
		s.Count = lipgloss.NewStyle()
		s.Header = lipgloss.NewStyle()
		s.Cell = lipgloss.NewStyle().Padding(0, 1)
		s.Border = lipgloss.NewStyle()
		return s
	}

	s.Full = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))    // Green
	s.Partial = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	s.None = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))     // Red

	s.Metric = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
	s.Count = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))              // Gray
	s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // Cyan bold
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	s.Border = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Ratio returns the style for a ratio in [0, 1]
func (s *Styles) Ratio(r float64) lipgloss.Style {
	switch {
	case r >= 1:
		return s.Full
	case r <= 0:
		return s.None
	default:
		return s.Partial
	}
}
