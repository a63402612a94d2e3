package sheetreport

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the console styles for one output writer. Colours are
// dropped when the writer is not a terminal.
type Styles struct {
	Title   lipgloss.Style
	Rule    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles returns styles rendered for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF8C42")),
		Rule: r.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#FFB84D")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true),
	}
}
