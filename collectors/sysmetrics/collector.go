package sysmetrics

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/vitals/collectors"
)

const (
	// collectorName is the unique identifier for this collector.
	collectorName = "sysmetrics"

	// collectorDescription describes what this collector gathers.
	collectorDescription = "Local system metrics (CPU, RAM)"

	// DefaultInterval is the recommended polling interval. 250ms matches the
	// dashboard refresh rate so every frame shows a fresh sample.
	DefaultInterval = 250 * time.Millisecond
)

// memStats holds one memory reading from /proc/meminfo.
type memStats struct {
	usedBytes  uint64
	totalBytes uint64
	percent    float64
}

// Collector implements collectors.Collector for local system metrics.
// CPU usage is computed as a delta against the previous call's /proc/stat
// counters, so repeated calls are cheap and never block. The first call
// seeds the counters and reports 0%.
type Collector struct {
	logger *slog.Logger

	interval time.Duration

	// prevIdle and prevTotal track the last CPU sample for delta computation.
	prevIdle  uint64
	prevTotal uint64

	// Overridable file openers for testing.
	openProcStat    func() (io.ReadCloser, error)
	openProcMeminfo func() (io.ReadCloser, error)
}

// New creates a Collector polling at the given interval.
// If interval is zero or negative, DefaultInterval is used.
// If logger is nil, a no-op logger is used.
func New(interval time.Duration, logger *slog.Logger) *Collector {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Collector{
		logger:   logger,
		interval: interval,
		openProcStat: func() (io.ReadCloser, error) {
			return os.Open("/proc/stat")
		},
		openProcMeminfo: func() (io.ReadCloser, error) {
			return os.Open("/proc/meminfo")
		},
	}
}

// Name returns the collector's unique identifier.
func (c *Collector) Name() string {
	return collectorName
}

// Description returns a human-readable description of what this collector gathers.
func (c *Collector) Description() string {
	return collectorDescription
}

// Interval returns the configured polling interval.
func (c *Collector) Interval() time.Duration {
	return c.interval
}

// Collect gathers one CPU and memory snapshot. A failed OS read is returned
// as an error rather than a zeroed reading, so callers can distinguish
// "idle machine" from "broken metric source" and skip the sample.
func (c *Collector) Collect(ctx context.Context) (*collectors.CollectResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	cpuPct, err := c.readCPU()
	if err != nil {
		return nil, fmt.Errorf("sysmetrics: read cpu: %w", err)
	}

	mem, err := c.readMem()
	if err != nil {
		return nil, fmt.Errorf("sysmetrics: read memory: %w", err)
	}

	data := &Data{
		CPU:           cpuPct,
		RAM:           mem.percent,
		RAMUsedBytes:  mem.usedBytes,
		RAMTotalBytes: mem.totalBytes,
	}

	c.logger.Debug("sysmetrics collected",
		"cpu", fmt.Sprintf("%.1f%%", data.CPU),
		"ram", fmt.Sprintf("%.1f%%", data.RAM),
		"ram_used_bytes", data.RAMUsedBytes,
	)

	return &collectors.CollectResult{
		Collector: collectorName,
		Timestamp: time.Now(),
		Data:      data,
	}, nil
}

// readCPU reads /proc/stat and computes CPU usage as a percentage from the
// delta against the previous reading. The first call seeds the counters and
// returns 0.
func (c *Collector) readCPU() (float64, error) {
	f, err := c.openProcStat()
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			return 0, fmt.Errorf("cpu line too short: %q", line)
		}

		// Fields: cpu user nice system idle iowait irq softirq steal ...
		var total uint64
		var idle uint64
		for i := 1; i < len(fields); i++ {
			val, err := strconv.ParseUint(fields[i], 10, 64)
			if err != nil {
				return 0, fmt.Errorf("parse field %d: %w", i, err)
			}
			total += val
			if i == 4 { // idle field
				idle = val
			}
		}

		// First reading: seed counters, report 0.
		if c.prevTotal == 0 {
			c.prevIdle = idle
			c.prevTotal = total
			return 0, nil
		}

		deltaTotal := total - c.prevTotal
		deltaIdle := idle - c.prevIdle

		c.prevIdle = idle
		c.prevTotal = total

		if deltaTotal == 0 {
			return 0, nil
		}

		cpuPct := (1.0 - float64(deltaIdle)/float64(deltaTotal)) * 100.0
		return clampPercent(cpuPct), nil
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}

	return 0, fmt.Errorf("cpu line not found in /proc/stat")
}

// readMem reads /proc/meminfo and computes memory usage.
// Used = MemTotal - MemAvailable.
func (c *Collector) readMem() (memStats, error) {
	f, err := c.openProcMeminfo()
	if err != nil {
		return memStats{}, err
	}
	defer f.Close()

	var memTotal, memAvailable uint64
	var foundTotal, foundAvailable bool

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "MemTotal:") {
			val, err := parseMemInfoLine(line)
			if err != nil {
				return memStats{}, fmt.Errorf("parse MemTotal: %w", err)
			}
			memTotal = val
			foundTotal = true
		} else if strings.HasPrefix(line, "MemAvailable:") {
			val, err := parseMemInfoLine(line)
			if err != nil {
				return memStats{}, fmt.Errorf("parse MemAvailable: %w", err)
			}
			memAvailable = val
			foundAvailable = true
		}

		if foundTotal && foundAvailable {
			break
		}
	}

	if !foundTotal {
		return memStats{}, fmt.Errorf("MemTotal not found in /proc/meminfo")
	}
	if !foundAvailable {
		return memStats{}, fmt.Errorf("MemAvailable not found in /proc/meminfo")
	}
	if memTotal == 0 {
		return memStats{}, fmt.Errorf("MemTotal is zero")
	}

	usedKB := memTotal - memAvailable

	return memStats{
		usedBytes:  usedKB * 1024,
		totalBytes: memTotal * 1024,
		percent:    clampPercent(float64(usedKB) / float64(memTotal) * 100.0),
	}, nil
}

// parseMemInfoLine extracts the numeric kB value from a /proc/meminfo line.
// Format: "MemTotal:       16384000 kB"
func parseMemInfoLine(line string) (uint64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("too few fields: %q", line)
	}
	return strconv.ParseUint(fields[1], 10, 64)
}

// clampPercent limits measurement noise to the displayable 0-100 range.
func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Compile-time interface compliance check.
var _ collectors.Collector = (*Collector)(nil)
