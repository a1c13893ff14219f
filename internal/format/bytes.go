// Package format provides small display formatting helpers shared across
// the dashboard and banner output.
package format

import "fmt"

// gib is one gibibyte in bytes.
const gib = 1 << 30

// Gibibytes converts a byte count to fractional GiB.
func Gibibytes(bytes uint64) float64 {
	return float64(bytes) / float64(gib)
}

// UsageGiB renders an absolute memory usage line, e.g. "12.4 / 31.9 GiB".
func UsageGiB(usedBytes, totalBytes uint64) string {
	return fmt.Sprintf("%.1f / %.1f GiB", Gibibytes(usedBytes), Gibibytes(totalBytes))
}
