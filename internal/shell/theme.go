package shell

import "github.com/charmbracelet/lipgloss"

var (
	Green = lipgloss.Color("#00C832")
	Red   = lipgloss.Color("#FF5F56")
	Amber = lipgloss.Color("#FFB000")
	Cyan  = lipgloss.Color("#00D4AA")
)

// Styles decorates the shell's output lines.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
	Prompt  lipgloss.Style
}

// DefaultStyles is the colored theme used on a terminal.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(Cyan).Bold(true),
		Success: lipgloss.NewStyle().Foreground(Green),
		Failure: lipgloss.NewStyle().Foreground(Red),
		Warning: lipgloss.NewStyle().Foreground(Amber),
		Prompt:  lipgloss.NewStyle().Bold(true),
	}
}

// PlainStyles renders text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:   plain,
		Success: plain,
		Failure: plain,
		Warning: plain,
		Prompt:  plain,
	}
}
