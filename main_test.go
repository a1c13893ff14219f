package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/vitals/collectors"
	"gitlab.com/tinyland/lab/vitals/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/vitals/config"
	"gitlab.com/tinyland/lab/vitals/engine"
)

// staticCollector returns the same reading on every Collect call.
type staticCollector struct {
	data *sysmetrics.Data
	err  error
}

func (c *staticCollector) Name() string            { return "sysmetrics" }
func (c *staticCollector) Description() string     { return "static readings" }
func (c *staticCollector) Interval() time.Duration { return time.Millisecond }

func (c *staticCollector) Collect(ctx context.Context) (*collectors.CollectResult, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &collectors.CollectResult{
		Collector: c.Name(),
		Timestamp: time.Now(),
		Data:      c.data,
	}, nil
}

func TestRunOnceRendersFrame(t *testing.T) {
	eng := engine.NewSampleEngine(&staticCollector{data: &sysmetrics.Data{
		CPU:           42.0,
		RAM:           50.0,
		RAMUsedBytes:  8 << 30,
		RAMTotalBytes: 16 << 30,
	}}, engine.DefaultConfig(), nil)

	var buf bytes.Buffer
	if err := runOnce(context.Background(), &buf, eng, 0); err != nil {
		t.Fatalf("runOnce error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"System Monitor", "42.0%", "8.0 / 16.0 GiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestRunOnceSampleFailure(t *testing.T) {
	eng := engine.NewSampleEngine(&staticCollector{err: errors.New("proc unavailable")},
		engine.DefaultConfig(), nil)

	if err := runOnce(context.Background(), io.Discard, eng, 0); err == nil {
		t.Fatal("expected error when sampling fails")
	}
}

func TestBuildLoggerDiscardByDefault(t *testing.T) {
	logger, closeLog, err := buildLogger(config.LoggingConfig{})
	if err != nil {
		t.Fatalf("buildLogger error: %v", err)
	}
	defer closeLog()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	// Should not panic or write anywhere.
	logger.Info("discarded")
}

func TestBuildLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitals.log")

	logger, closeLog, err := buildLogger(config.LoggingConfig{File: path, Verbose: true})
	if err != nil {
		t.Fatalf("buildLogger error: %v", err)
	}

	logger.Debug("hello from test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing entry: %q", string(data))
	}
}

func TestBuildLoggerBadPath(t *testing.T) {
	_, _, err := buildLogger(config.LoggingConfig{File: filepath.Join(t.TempDir(), "missing", "dir", "vitals.log")})
	if err == nil {
		t.Error("expected error for unwritable log path")
	}
}
