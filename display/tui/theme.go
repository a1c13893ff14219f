package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the monitoring dashboard.
const (
	colorAccent = lipgloss.Color("#06B6D4") // Cyan
	colorMuted  = lipgloss.Color("#6B7280") // Gray
	colorDanger = lipgloss.Color("#EF4444") // Red
)

// Styles used throughout the dashboard.
var (
	stylePanel   lipgloss.Style
	styleSection lipgloss.Style
	styleDim     lipgloss.Style
	styleFooter  lipgloss.Style
	styleStale   lipgloss.Style
)

func init() {
	stylePanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1)

	styleSection = lipgloss.NewStyle().
		Bold(true)

	styleDim = lipgloss.NewStyle().
		Foreground(colorMuted)

	styleFooter = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1)

	styleStale = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorDanger)
}
