//go:build !linux

package sysmetrics

import "time"

// Uptime is unavailable on non-Linux platforms and reports 0.
func Uptime() time.Duration {
	return 0
}
