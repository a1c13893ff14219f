package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/vitals/collectors"
	"gitlab.com/tinyland/lab/vitals/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/vitals/display/widgets"
	"gitlab.com/tinyland/lab/vitals/internal/format"
)

// Snapshot is one observation of the tracked metrics.
type Snapshot struct {
	CPUPercent    float64
	RAMPercent    float64
	RAMUsedBytes  uint64
	RAMTotalBytes uint64
}

// Bar is a rendered gauge with its severity tier for color coding.
type Bar struct {
	Text     string
	Severity widgets.Severity
}

// DisplayModel is the complete content of one dashboard frame. It is rebuilt
// on every tick and always reflects the most recent good snapshot; Stale is
// set when the metric source failed and the previous frame is being reshown.
type DisplayModel struct {
	CPUBar   Bar
	RAMBar   Bar
	CPUGraph string
	RAMGraph string
	RAMUsage string

	Stale     bool
	UpdatedAt time.Time
}

// Config holds the sampling and formatting parameters.
type Config struct {
	// HistorySize is the per-metric sample window for sparklines.
	HistorySize int
	// BarWidth is the character width of the gauge bars.
	BarWidth int
	// ThresholdWarn and ThresholdCrit are the severity tier boundaries.
	ThresholdWarn float64
	ThresholdCrit float64
}

// DefaultConfig returns the standard dashboard parameters: a 50-sample
// window, 30-cell bars, warn above 80% and crit above 90%.
func DefaultConfig() Config {
	return Config{
		HistorySize:   DefaultHistorySize,
		BarWidth:      30,
		ThresholdWarn: 80,
		ThresholdCrit: 90,
	}
}

// SampleEngine owns the per-metric history buffers and turns collector
// readings into display models. It is exclusively owned by the scheduler
// loop; none of its state is safe for concurrent use.
type SampleEngine struct {
	provider collectors.Collector
	logger   *slog.Logger
	cfg      Config

	cpuHistory *HistoryBuffer
	ramHistory *HistoryBuffer

	last    DisplayModel
	hasLast bool
}

// NewSampleEngine creates a SampleEngine reading from the given collector.
// The collector's payload must be *sysmetrics.Data. If logger is nil, a
// no-op logger is used.
func NewSampleEngine(provider collectors.Collector, cfg Config, logger *slog.Logger) *SampleEngine {
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = 30
	}
	if cfg.ThresholdWarn <= 0 {
		cfg.ThresholdWarn = 80
	}
	if cfg.ThresholdCrit <= 0 {
		cfg.ThresholdCrit = 90
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &SampleEngine{
		provider:   provider,
		logger:     logger,
		cfg:        cfg,
		cpuHistory: NewHistoryBuffer(cfg.HistorySize),
		ramHistory: NewHistoryBuffer(cfg.HistorySize),
	}
}

// Sample queries the collector once and appends the CPU and RAM percentages
// to their history buffers. On error nothing is appended, so a failed read
// never pollutes the sparkline history.
func (e *SampleEngine) Sample(ctx context.Context) (Snapshot, error) {
	result, err := e.provider.Collect(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	data, ok := result.Data.(*sysmetrics.Data)
	if !ok {
		return Snapshot{}, fmt.Errorf("engine: unexpected payload %T from collector %q", result.Data, e.provider.Name())
	}

	snap := Snapshot{
		CPUPercent:    data.CPU,
		RAMPercent:    data.RAM,
		RAMUsedBytes:  data.RAMUsedBytes,
		RAMTotalBytes: data.RAMTotalBytes,
	}

	e.cpuHistory.Append(snap.CPUPercent)
	e.ramHistory.Append(snap.RAMPercent)

	return snap, nil
}

// BuildDisplayModel samples once and composes a full dashboard frame.
// If sampling fails, the previous frame is returned marked stale and the
// error is propagated for logging; the returned model is always renderable.
func (e *SampleEngine) BuildDisplayModel(ctx context.Context) (DisplayModel, error) {
	snap, err := e.Sample(ctx)
	if err != nil {
		if e.hasLast {
			stale := e.last
			stale.Stale = true
			return stale, err
		}
		// No good frame yet: show empty graphs and zeroed bars.
		return DisplayModel{
			CPUBar:   e.makeBar(0),
			RAMBar:   e.makeBar(0),
			CPUGraph: e.makeGraph(nil, "CPU"),
			RAMGraph: e.makeGraph(nil, "RAM"),
			RAMUsage: format.UsageGiB(0, 0),
			Stale:    true,
		}, err
	}

	model := DisplayModel{
		CPUBar:    e.makeBar(snap.CPUPercent),
		RAMBar:    e.makeBar(snap.RAMPercent),
		CPUGraph:  e.makeGraph(e.cpuHistory.Values(), "CPU"),
		RAMGraph:  e.makeGraph(e.ramHistory.Values(), "RAM"),
		RAMUsage:  format.UsageGiB(snap.RAMUsedBytes, snap.RAMTotalBytes),
		UpdatedAt: time.Now(),
	}

	e.last = model
	e.hasLast = true

	return model, nil
}

// CPUHistory returns the recorded CPU samples, oldest first.
func (e *SampleEngine) CPUHistory() []float64 {
	return e.cpuHistory.Values()
}

// RAMHistory returns the recorded RAM samples, oldest first.
func (e *SampleEngine) RAMHistory() []float64 {
	return e.ramHistory.Values()
}

func (e *SampleEngine) makeBar(percent float64) Bar {
	cfg := widgets.GaugeConfig{
		Width:         e.cfg.BarWidth,
		Percent:       percent,
		ThresholdWarn: e.cfg.ThresholdWarn,
		ThresholdCrit: e.cfg.ThresholdCrit,
	}
	return Bar{
		Text:     widgets.RenderGauge(cfg),
		Severity: cfg.GaugeSeverity(),
	}
}

func (e *SampleEngine) makeGraph(history []float64, label string) string {
	return widgets.RenderSparkline(widgets.SparklineConfig{
		Data:  history,
		Width: e.cfg.HistorySize,
		Label: label,
	})
}
