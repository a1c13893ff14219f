package widgets

import "strings"

// sparkBlocks is the 9-glyph ramp used for sparkline rendering, from blank
// (no load) to full block, indexed by tenths of the 0-100 range.
var sparkBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SparklineConfig controls the appearance of a sparkline trend graph.
type SparklineConfig struct {
	// Data points to render, oldest first. Values are percentages on a
	// fixed 0-100 scale.
	Data []float64
	// Width is the character width of the graph body. Shorter data is
	// right-justified with leading spaces so a filling buffer grows in
	// from the right. If 0, uses len(Data).
	Width int
	// Label is the text shown before the bracketed graph.
	Label string
}

// RenderSparkline renders a bracketed sparkline with a label prefix.
// Format: CPU: [      ▁▂▅█]
// Each value maps to floor(v/100*10) on the glyph ramp; values at or above
// 100 hit past the ramp end and fall back to the heaviest glyph, negatives
// to the blank glyph.
func RenderSparkline(cfg SparklineConfig) string {
	width := cfg.Width
	if width <= 0 {
		width = len(cfg.Data)
	}

	data := cfg.Data
	if len(data) > width {
		data = data[len(data)-width:]
	}

	runes := make([]rune, 0, len(data))
	for _, v := range data {
		level := int(v / 100.0 * 10.0)
		if level >= len(sparkBlocks) {
			level = len(sparkBlocks) - 1
		}
		if level < 0 {
			level = 0
		}
		runes = append(runes, sparkBlocks[level])
	}

	body := string(runes)
	if pad := width - len(runes); pad > 0 {
		body = strings.Repeat(" ", pad) + body
	}

	return cfg.Label + ": [" + body + "]"
}
