package cli

import "github.com/charmbracelet/lipgloss"

// Theme holds the terminal styles for the light and dark palettes.
type Theme struct {
	Title  lipgloss.Style
	Accent lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	OK     lipgloss.Style
}

func NewTheme(dark bool) Theme {
	fg, accent, muted := lipgloss.Color("#1f2937"), lipgloss.Color("#4f46e5"), lipgloss.Color("#6b7280")
	if dark {
		fg, accent, muted = lipgloss.Color("#f3f4f6"), lipgloss.Color("#a5b4fc"), lipgloss.Color("#9ca3af")
	}

	return Theme{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(fg),
		Accent: lipgloss.NewStyle().Foreground(accent),
		Muted:  lipgloss.NewStyle().Foreground(muted),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
		OK:     lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
	}
}
