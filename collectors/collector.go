// Package collectors provides the data collection interface and registration
// for vitals metrics gathering. Each collector is responsible for one local
// metric source and returns structured, self-describing results.
package collectors

import (
	"context"
	"time"
)

// Collector is the interface that all metric collectors must implement.
// A collector gathers readings from a single source (e.g., /proc on Linux)
// and returns them as a structured payload.
type Collector interface {
	// Name returns the collector's unique identifier (e.g., "sysmetrics").
	// Names must be unique within a Registry.
	Name() string

	// Description returns a human-readable description of what this collector gathers.
	Description() string

	// Interval returns the recommended polling interval for this collector.
	Interval() time.Duration

	// Collect gathers metrics and returns structured data.
	// Non-fatal issues should be reported as Warnings rather than errors;
	// an error means no usable reading was produced this cycle.
	// The context should be respected for cancellation.
	Collect(ctx context.Context) (*CollectResult, error)
}

// CollectResult holds the output of a collection run.
type CollectResult struct {
	// Collector is the name of the collector that produced this result.
	Collector string `json:"collector"`

	// Timestamp records when the collection completed.
	Timestamp time.Time `json:"timestamp"`

	// Data is the collector-specific structured payload.
	Data interface{} `json:"data"`

	// Warnings contains non-fatal issues encountered during collection.
	// For example, one of several readings failing while others succeed.
	Warnings []string `json:"warnings,omitempty"`
}

// Registry holds registered collectors and provides lookup by name.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a new empty collector registry.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make([]Collector, 0),
	}
}

// Register adds a collector to the registry.
// If a collector with the same name already exists, it is replaced.
func (r *Registry) Register(c Collector) {
	for i, existing := range r.collectors {
		if existing.Name() == c.Name() {
			r.collectors[i] = c
			return
		}
	}
	r.collectors = append(r.collectors, c)
}

// Get returns a collector by name. The second return value indicates
// whether the collector was found.
func (r *Registry) Get(name string) (Collector, bool) {
	for _, c := range r.collectors {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// All returns all registered collectors.
func (r *Registry) All() []Collector {
	result := make([]Collector, len(r.collectors))
	copy(result, r.collectors)
	return result
}
