package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/vitals/engine"
)

// ProgramRenderer bridges the sampling scheduler to a running Bubble Tea
// program by forwarding each display model as a FrameMsg.
type ProgramRenderer struct {
	program *tea.Program
}

// NewProgramRenderer wraps a program for use as the scheduler's renderer.
func NewProgramRenderer(p *tea.Program) *ProgramRenderer {
	return &ProgramRenderer{program: p}
}

// Render implements engine.Renderer.
func (r *ProgramRenderer) Render(model engine.DisplayModel) {
	r.program.Send(FrameMsg{Frame: model})
}

// Compile-time interface compliance check.
var _ engine.Renderer = (*ProgramRenderer)(nil)
