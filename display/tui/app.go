// Package tui implements the live Bubble Tea dashboard for vitals.
// Frames are produced by the sampling scheduler and pushed into the program
// as FrameMsg values; the model itself holds no sampling state.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vitals/engine"
)

// FrameMsg delivers a freshly built display model to the TUI.
type FrameMsg struct {
	Frame engine.DisplayModel
}

// Model is the top-level Bubble Tea model for the vitals dashboard.
type Model struct {
	width    int
	height   int
	frame    engine.DisplayModel
	hasFrame bool
	helpOpen bool
	quitting bool
}

// NewModel returns an initialized Model awaiting its first frame.
func NewModel() Model {
	return Model{}
}

// Init implements tea.Model. Frames arrive from the scheduler, so no
// initial command is needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It handles key presses, window resizes, and
// incoming frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.helpOpen = !m.helpOpen
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case FrameMsg:
		m.frame = msg.Frame
		m.hasFrame = true
	}

	return m, nil
}

// View implements tea.Model. It renders the monitor panel and a footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.hasFrame {
		return "Waiting for first sample..."
	}

	panel := RenderDashboard(m.frame)
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, panel, footer)
}

// renderFooter renders the key hints, last-update timestamp, and stale tag.
func (m Model) renderFooter() string {
	var parts []string

	if m.helpOpen {
		for _, group := range keys.FullHelp() {
			for _, b := range group {
				parts = append(parts, fmt.Sprintf("%s: %s", b.Help().Key, b.Help().Desc))
			}
		}
	} else {
		for _, b := range keys.ShortHelp() {
			parts = append(parts, fmt.Sprintf("%s: %s", b.Help().Key, b.Help().Desc))
		}
	}

	line := strings.Join(parts, " | ")
	if !m.frame.UpdatedAt.IsZero() {
		line += "  Updated: " + m.frame.UpdatedAt.Format("15:04:05")
	}

	footer := styleFooter.Render(line)
	if m.frame.Stale {
		footer += " " + styleStale.Render("STALE")
	}
	return footer
}

// HasFrame reports whether at least one frame has been received.
func (m Model) HasFrame() bool {
	return m.hasFrame
}

// Quitting reports whether the model is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}
