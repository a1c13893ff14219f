// Package engine implements the sampling-and-rendering core of vitals: the
// per-metric history buffers, the sample engine that turns raw collector
// readings into a display model, and the fixed-rate scheduler that drives
// the refresh loop.
package engine

// DefaultHistorySize is the number of samples retained per metric. At the
// 250ms tick interval this covers the last 12.5 seconds.
const DefaultHistorySize = 50

// HistoryBuffer is a fixed-capacity FIFO of metric samples. Appending beyond
// capacity evicts the oldest value, so the buffer always holds the most
// recent window, oldest first. Values are stored as given; range validation
// is the caller's concern.
type HistoryBuffer struct {
	values   []float64
	capacity int
}

// NewHistoryBuffer creates an empty buffer holding at most capacity samples.
// A non-positive capacity falls back to DefaultHistorySize.
func NewHistoryBuffer(capacity int) *HistoryBuffer {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &HistoryBuffer{
		values:   make([]float64, 0, capacity),
		capacity: capacity,
	}
}

// Append adds value as the newest sample, evicting the oldest if full.
func (b *HistoryBuffer) Append(value float64) {
	b.values = append(b.values, value)
	if len(b.values) > b.capacity {
		b.values = b.values[len(b.values)-b.capacity:]
	}
}

// Values returns the stored samples oldest-to-newest. The returned slice is
// a copy; mutating it does not affect the buffer.
func (b *HistoryBuffer) Values() []float64 {
	out := make([]float64, len(b.values))
	copy(out, b.values)
	return out
}

// Len returns the number of stored samples.
func (b *HistoryBuffer) Len() int {
	return len(b.values)
}

// Cap returns the buffer capacity.
func (b *HistoryBuffer) Cap() int {
	return b.capacity
}
