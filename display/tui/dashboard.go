package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vitals/display/widgets"
	"gitlab.com/tinyland/lab/vitals/engine"
)

// RenderDashboard renders one display model as the bordered monitor panel.
// It is shared by the live TUI view and the one-shot output mode.
func RenderDashboard(m engine.DisplayModel) string {
	title := "System Monitor"
	if m.Stale {
		title += " (stale)"
	}

	lines := []string{
		styleSection.Render("CPU Usage"),
		colorBar(m.CPUBar),
		m.CPUGraph,
		"",
		styleSection.Render("RAM Usage"),
		colorBar(m.RAMBar),
		styleDim.Render(m.RAMUsage),
		m.RAMGraph,
	}

	panel := stylePanel.Render(strings.Join(lines, "\n"))
	return injectTitle(panel, title)
}

// colorBar applies the severity color to a rendered gauge.
func colorBar(b engine.Bar) string {
	return lipgloss.NewStyle().
		Foreground(widgets.SeverityColor(b.Severity)).
		Render(b.Text)
}

// injectTitle overwrites part of the panel's top border with the title text.
// The label replaces horizontal border runes one-for-one, so it survives any
// ANSI color sequences wrapping the line and inherits the border color.
func injectTitle(panel, title string) string {
	lines := strings.SplitN(panel, "\n", 2)
	if len(lines) < 2 || title == "" {
		return panel
	}

	top := []rune(lines[0])
	label := []rune(" " + title + " ")

	start := -1
	run := 0
	for i, r := range top {
		if r == '─' {
			if start < 0 {
				start = i + 1
			}
			run++
		}
	}
	// Keep at least one border rune on each side of the label.
	if start < 0 || run < len(label)+2 {
		return panel
	}

	copy(top[start:], label)
	lines[0] = string(top)
	return strings.Join(lines, "\n")
}
