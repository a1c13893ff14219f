// Package sysmetrics provides the local system metrics collector for vitals.
// It reads CPU and memory utilization from /proc (Linux). Each call returns a
// single instantaneous snapshot; history is kept by the sampling engine, not
// here.
package sysmetrics

// Data holds one snapshot of system metrics.
type Data struct {
	// CPU is the current CPU usage percentage (0-100).
	CPU float64 `json:"cpu"`

	// RAM is the current RAM usage percentage (0-100).
	RAM float64 `json:"ram"`

	// RAMUsedBytes is the amount of memory in use, in bytes.
	RAMUsedBytes uint64 `json:"ram_used_bytes"`

	// RAMTotalBytes is the total installed memory, in bytes.
	RAMTotalBytes uint64 `json:"ram_total_bytes"`
}
