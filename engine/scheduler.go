package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// DefaultTickInterval is the refresh cadence of the dashboard: 4 frames per
// second, each backed by a fresh sample.
const DefaultTickInterval = 250 * time.Millisecond

// State describes the scheduler lifecycle.
type State int

const (
	StateInit State = iota
	StateRunning
	StateStopped
)

// String returns the human-readable name for a State.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Renderer consumes display models produced by the scheduler. The TUI
// implements it by forwarding frames into the Bubble Tea program.
type Renderer interface {
	Render(model DisplayModel)
}

// Scheduler drives the sample-and-render loop at a fixed cadence until its
// context is cancelled. The ticker is fixed-delay, not drift-corrected;
// cumulative drift does not matter for a monitoring display.
type Scheduler struct {
	engine   *SampleEngine
	renderer Renderer
	interval time.Duration
	clock    Clock
	logger   *slog.Logger
	state    State
}

// NewScheduler creates a scheduler ticking at the given interval. A
// non-positive interval falls back to DefaultTickInterval. If logger is nil,
// a no-op logger is used.
func NewScheduler(e *SampleEngine, r Renderer, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Scheduler{
		engine:   e,
		renderer: r,
		interval: interval,
		clock:    realClock{},
		logger:   logger,
		state:    StateInit,
	}
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	return s.state
}

// Run executes the tick loop until ctx is cancelled, then returns nil.
// The first tick fires immediately so the dashboard has content before the
// first interval elapses. Run may be called at most once; a stopped
// scheduler stays stopped.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.state != StateInit {
		return fmt.Errorf("scheduler: already %s", s.state)
	}
	s.state = StateRunning

	s.tick(ctx)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.state = StateStopped
			s.logger.Debug("scheduler stopped")
			return nil
		case <-ticker.C():
			s.tick(ctx)
		}
	}
}

// tick performs one sample-and-render cycle. Sampling errors are logged and
// the (stale) model is still rendered, so one bad read never blanks the
// screen.
func (s *Scheduler) tick(ctx context.Context) {
	model, err := s.engine.BuildDisplayModel(ctx)
	if err != nil {
		s.logger.Warn("sample failed", "error", err)
	}
	s.renderer.Render(model)
}
