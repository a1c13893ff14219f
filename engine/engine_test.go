package engine

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/vitals/collectors"
	"gitlab.com/tinyland/lab/vitals/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/vitals/display/widgets"
)

// scriptedProvider replays a fixed sequence of snapshots and errors.
type scriptedProvider struct {
	snapshots []*sysmetrics.Data
	errs      []error
	calls     int
}

func (p *scriptedProvider) Name() string            { return "scripted" }
func (p *scriptedProvider) Description() string     { return "scripted test provider" }
func (p *scriptedProvider) Interval() time.Duration { return time.Millisecond }

func (p *scriptedProvider) Collect(ctx context.Context) (*collectors.CollectResult, error) {
	i := p.calls
	p.calls++
	if i < len(p.errs) && p.errs[i] != nil {
		return nil, p.errs[i]
	}
	return &collectors.CollectResult{
		Collector: "scripted",
		Timestamp: time.Now(),
		Data:      p.snapshots[i],
	}, nil
}

func snap(cpu, ram float64) *sysmetrics.Data {
	return &sysmetrics.Data{
		CPU:           cpu,
		RAM:           ram,
		RAMUsedBytes:  8 << 30,
		RAMTotalBytes: 16 << 30,
	}
}

func TestSampleAppendsToHistories(t *testing.T) {
	p := &scriptedProvider{snapshots: []*sysmetrics.Data{snap(10, 40), snap(95, 41), snap(50, 42)}}
	e := NewSampleEngine(p, DefaultConfig(), nil)

	for i := 0; i < 3; i++ {
		if _, err := e.Sample(context.Background()); err != nil {
			t.Fatalf("Sample %d error: %v", i, err)
		}
	}

	if got, want := e.CPUHistory(), []float64{10, 95, 50}; !reflect.DeepEqual(got, want) {
		t.Errorf("CPUHistory = %v, want %v", got, want)
	}
	if got, want := e.RAMHistory(), []float64{40, 41, 42}; !reflect.DeepEqual(got, want) {
		t.Errorf("RAMHistory = %v, want %v", got, want)
	}
}

func TestSampleErrorAppendsNothing(t *testing.T) {
	p := &scriptedProvider{
		snapshots: []*sysmetrics.Data{snap(10, 40), nil},
		errs:      []error{nil, errors.New("proc unavailable")},
	}
	e := NewSampleEngine(p, DefaultConfig(), nil)

	if _, err := e.Sample(context.Background()); err != nil {
		t.Fatalf("first sample error: %v", err)
	}
	if _, err := e.Sample(context.Background()); err == nil {
		t.Fatal("expected error from second sample")
	}

	if got := e.CPUHistory(); len(got) != 1 {
		t.Errorf("failed sample polluted history: %v", got)
	}
}

func TestBuildDisplayModel(t *testing.T) {
	p := &scriptedProvider{snapshots: []*sysmetrics.Data{snap(95, 50)}}
	e := NewSampleEngine(p, DefaultConfig(), nil)

	m, err := e.BuildDisplayModel(context.Background())
	if err != nil {
		t.Fatalf("BuildDisplayModel error: %v", err)
	}

	if m.CPUBar.Severity != widgets.SeverityCrit {
		t.Errorf("CPU severity = %v, want crit", m.CPUBar.Severity)
	}
	if got := strings.Count(m.CPUBar.Text, "█"); got != 28 {
		t.Errorf("CPU filled cells = %d, want 28", got)
	}
	if m.RAMBar.Severity != widgets.SeverityNormal {
		t.Errorf("RAM severity = %v, want normal", m.RAMBar.Severity)
	}
	if m.RAMUsage != "8.0 / 16.0 GiB" {
		t.Errorf("RAMUsage = %q, want %q", m.RAMUsage, "8.0 / 16.0 GiB")
	}
	if !strings.HasPrefix(m.CPUGraph, "CPU: [") || !strings.HasPrefix(m.RAMGraph, "RAM: [") {
		t.Errorf("graph labels wrong: %q / %q", m.CPUGraph, m.RAMGraph)
	}
	if m.Stale {
		t.Error("fresh model marked stale")
	}
	if m.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}

	// Graph body spans the full history width even with one sample.
	body := m.CPUGraph[strings.Index(m.CPUGraph, "[")+1 : strings.LastIndex(m.CPUGraph, "]")]
	if got := len([]rune(body)); got != DefaultHistorySize {
		t.Errorf("graph body width = %d, want %d", got, DefaultHistorySize)
	}
}

func TestBuildDisplayModelStaleFallback(t *testing.T) {
	p := &scriptedProvider{
		snapshots: []*sysmetrics.Data{snap(42, 50), nil},
		errs:      []error{nil, errors.New("proc unavailable")},
	}
	e := NewSampleEngine(p, DefaultConfig(), nil)

	fresh, err := e.BuildDisplayModel(context.Background())
	if err != nil {
		t.Fatalf("first frame error: %v", err)
	}

	stale, err := e.BuildDisplayModel(context.Background())
	if err == nil {
		t.Fatal("expected propagated provider error")
	}
	if !stale.Stale {
		t.Error("fallback frame not marked stale")
	}
	if stale.CPUBar.Text != fresh.CPUBar.Text {
		t.Errorf("stale frame content changed: %q vs %q", stale.CPUBar.Text, fresh.CPUBar.Text)
	}
}

func TestBuildDisplayModelFirstTickFailure(t *testing.T) {
	p := &scriptedProvider{
		snapshots: []*sysmetrics.Data{nil},
		errs:      []error{errors.New("proc unavailable")},
	}
	e := NewSampleEngine(p, DefaultConfig(), nil)

	m, err := e.BuildDisplayModel(context.Background())
	if err == nil {
		t.Fatal("expected propagated provider error")
	}
	if !m.Stale {
		t.Error("placeholder frame not marked stale")
	}
	// Still renderable: empty graphs at full width, zeroed bars.
	if !strings.Contains(m.CPUGraph, strings.Repeat(" ", DefaultHistorySize)) {
		t.Errorf("expected empty graph body, got %q", m.CPUGraph)
	}
	if !strings.Contains(m.CPUBar.Text, "0.0%") {
		t.Errorf("expected zeroed bar, got %q", m.CPUBar.Text)
	}
}

func TestSampleRejectsForeignPayload(t *testing.T) {
	p := &foreignProvider{}
	e := NewSampleEngine(p, DefaultConfig(), nil)

	if _, err := e.Sample(context.Background()); err == nil {
		t.Error("expected error for non-sysmetrics payload")
	}
}

// foreignProvider returns a payload type the engine does not understand.
type foreignProvider struct{}

func (p *foreignProvider) Name() string            { return "foreign" }
func (p *foreignProvider) Description() string     { return "wrong payload type" }
func (p *foreignProvider) Interval() time.Duration { return time.Second }
func (p *foreignProvider) Collect(ctx context.Context) (*collectors.CollectResult, error) {
	return &collectors.CollectResult{Collector: "foreign", Data: "not a snapshot"}, nil
}
