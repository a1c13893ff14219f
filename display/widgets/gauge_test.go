package widgets

import (
	"strings"
	"testing"
)

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    Severity
	}{
		{0, SeverityNormal},
		{50, SeverityNormal},
		{80.0, SeverityNormal}, // boundary: exactly warn threshold stays normal
		{80.1, SeverityWarn},
		{90.0, SeverityWarn}, // boundary: exactly crit threshold stays warn
		{90.1, SeverityCrit},
		{100, SeverityCrit},
	}

	for _, tt := range tests {
		if got := SeverityFor(tt.percent, 80, 90); got != tt.want {
			t.Errorf("SeverityFor(%.1f) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestRenderGaugeFillCounts(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		wantFilled int
		wantEmpty  int
	}{
		{"half", 50.0, 15, 15},
		{"ninety-five floors down", 95.0, 28, 2},
		{"zero", 0.0, 0, 30},
		{"full", 100.0, 30, 0},
		{"over range clamps", 120.0, 30, 0},
		{"negative clamps", -5.0, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGaugeConfig()
			cfg.Percent = tt.percent
			out := RenderGauge(cfg)

			filled := strings.Count(out, "█")
			empty := strings.Count(out, "░")
			if filled != tt.wantFilled {
				t.Errorf("filled = %d, want %d (output %q)", filled, tt.wantFilled, out)
			}
			if empty != tt.wantEmpty {
				t.Errorf("empty = %d, want %d (output %q)", empty, tt.wantEmpty, out)
			}
		})
	}
}

func TestRenderGaugeFormat(t *testing.T) {
	cfg := DefaultGaugeConfig()
	cfg.Percent = 42.3
	out := RenderGauge(cfg)

	if !strings.HasPrefix(out, "[") {
		t.Errorf("expected leading bracket, got %q", out)
	}
	if !strings.HasSuffix(out, "]  42.3%") {
		t.Errorf("expected right-aligned percentage suffix, got %q", out)
	}
}

func TestRenderGaugeDefaults(t *testing.T) {
	// Zero-value chars and width resolve to the standard bar.
	out := RenderGauge(GaugeConfig{Percent: 50})

	if got := strings.Count(out, "█") + strings.Count(out, "░"); got != 30 {
		t.Errorf("bar width = %d, want 30 (output %q)", got, out)
	}
}

func TestGaugeSeverityResolvesDefaults(t *testing.T) {
	cfg := GaugeConfig{Percent: 95}
	if got := cfg.GaugeSeverity(); got != SeverityCrit {
		t.Errorf("GaugeSeverity() = %v, want crit", got)
	}

	cfg.Percent = 85
	if got := cfg.GaugeSeverity(); got != SeverityWarn {
		t.Errorf("GaugeSeverity() = %v, want warn", got)
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityNormal, "normal"},
		{SeverityWarn, "warn"},
		{SeverityCrit, "crit"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
