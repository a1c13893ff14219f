// Package widgets provides the text rendering primitives for the vitals
// dashboard: a horizontal bar gauge and a sparkline trend graph. Both render
// plain strings; color is applied by the caller based on severity.
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Severity classifies a percentage reading for color coding.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarn
	SeverityCrit
)

// String returns the human-readable name for a Severity.
func (s Severity) String() string {
	switch s {
	case SeverityNormal:
		return "normal"
	case SeverityWarn:
		return "warn"
	case SeverityCrit:
		return "crit"
	default:
		return "unknown"
	}
}

// GaugeConfig controls the appearance of a horizontal bar gauge.
type GaugeConfig struct {
	// Width is the total character width of the gauge bar.
	Width int
	// Percent is the value from 0 to 100.
	Percent float64
	// ThresholdWarn is the % above which severity becomes warn (default: 80).
	ThresholdWarn float64
	// ThresholdCrit is the % above which severity becomes crit (default: 90).
	ThresholdCrit float64
	// FilledChar is the character for the filled portion (default: "█").
	FilledChar string
	// EmptyChar is the character for the empty portion (default: "░").
	EmptyChar string
}

// DefaultGaugeConfig returns a GaugeConfig with the standard dashboard
// defaults: a 30-cell bar with warn above 80% and crit above 90%.
func DefaultGaugeConfig() GaugeConfig {
	return GaugeConfig{
		Width:         30,
		ThresholdWarn: 80,
		ThresholdCrit: 90,
		FilledChar:    "█",
		EmptyChar:     "░",
	}
}

// SeverityFor classifies percent against the given thresholds. Boundaries
// are non-strict on the upper bound of each tier: exactly warn is normal,
// exactly crit is warn.
func SeverityFor(percent, warn, crit float64) Severity {
	switch {
	case percent > crit:
		return SeverityCrit
	case percent > warn:
		return SeverityWarn
	default:
		return SeverityNormal
	}
}

// SeverityColor returns the lipgloss color for a severity tier.
func SeverityColor(s Severity) lipgloss.Color {
	switch s {
	case SeverityCrit:
		return lipgloss.Color("#EF4444")
	case SeverityWarn:
		return lipgloss.Color("#EAB308")
	default:
		return lipgloss.Color("#22C55E")
	}
}

// RenderGauge renders a bracketed bar with a trailing percentage.
// Format: [██████░░░░░░]  50.0%
// The fill count is floor(width * percent / 100), clamped to the bar width
// so out-of-range input cannot overflow the bar.
func RenderGauge(cfg GaugeConfig) string {
	filledChar := cfg.FilledChar
	if filledChar == "" {
		filledChar = "█"
	}
	emptyChar := cfg.EmptyChar
	if emptyChar == "" {
		emptyChar = "░"
	}

	width := cfg.Width
	if width <= 0 {
		width = 30
	}

	filled := int(float64(width) * cfg.Percent / 100.0)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, empty)

	return fmt.Sprintf("[%s] %5.1f%%", bar, cfg.Percent)
}

// GaugeSeverity classifies the config's percent using its thresholds,
// resolving zero thresholds to the defaults.
func (cfg GaugeConfig) GaugeSeverity() Severity {
	warn := cfg.ThresholdWarn
	if warn == 0 {
		warn = 80
	}
	crit := cfg.ThresholdCrit
	if crit == 0 {
		crit = 90
	}
	return SeverityFor(cfg.Percent, warn, crit)
}
