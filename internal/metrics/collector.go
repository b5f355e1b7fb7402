// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-obs-kit/internal/logger"
	"github.com/rs/zerolog"
)

// DefaultCapacity is the per-metric sample limit used when a Collector is
// created with a non-positive capacity.
const DefaultCapacity = 10000

// Sample is a single recorded measurement. Immutable once recorded.
type Sample struct {
	// Value is the measured quantity.
	Value float64 `json:"value"`

	// Timestamp is the record time in epoch seconds.
	Timestamp float64 `json:"timestamp"`
}

// Collector accumulates named numeric samples emitted at
// [logger.MetricLevel].
//
// It implements zerolog's LevelWriter contract so it can be attached as a
// logging sink via [logger.NewLoggerWithSink]: every event below MetricLevel
// is discarded, and metric events are parsed for their "metric_name" and
// "value" fields.
//
// Each metric name holds at most capacity samples; when full, the oldest
// sample is evicted first. All operations are safe for concurrent use from
// multiple request-handling goroutines; a single mutex guards the store,
// which is acceptable because recording is not a hot path.
type Collector struct {
	mu       sync.Mutex
	capacity int
	samples  map[string][]Sample
}

// NewCollector creates an empty Collector with the given per-metric
// capacity. A non-positive capacity falls back to [DefaultCapacity].
func NewCollector(capacity int) *Collector {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Collector{
		capacity: capacity,
		samples:  make(map[string][]Sample),
	}
}

// metricEvent is the subset of a metric log event the collector cares about.
type metricEvent struct {
	MetricName string   `json:"metric_name"`
	Value      *float64 `json:"value"`
}

// Write implements io.Writer. Events arriving without level information
// cannot be metric events and are discarded.
func (c *Collector) Write(p []byte) (int, error) {
	return len(p), nil
}

// WriteLevel implements zerolog.LevelWriter. It is a no-op unless the event
// was emitted at [logger.MetricLevel] and carries both a metric name and a
// numeric value; malformed metric events are dropped silently so a bad call
// site can never break the logging pipeline.
func (c *Collector) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level != logger.MetricLevel {
		return len(p), nil
	}

	var event metricEvent
	if err := json.Unmarshal(p, &event); err != nil {
		return len(p), nil
	}
	if event.MetricName == "" || event.Value == nil {
		return len(p), nil
	}

	c.Record(event.MetricName, *event.Value)
	return len(p), nil
}

// Record appends a sample for the given metric name, timestamped now.
// When the metric already holds capacity samples the oldest one is evicted.
func (c *Collector) Record(name string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sequence := append(c.samples[name], Sample{
		Value:     value,
		Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
	})
	if len(sequence) > c.capacity {
		sequence = sequence[len(sequence)-c.capacity:]
	}
	c.samples[name] = sequence
}

// Clear atomically drops every accumulated sample.
func (c *Collector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.samples = make(map[string][]Sample)
}

// Snapshot returns a deep copy of the current store. The returned map is
// owned by the caller and never mutated by the collector afterwards.
func (c *Collector) Snapshot() map[string][]Sample {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make(map[string][]Sample, len(c.samples))
	for name, sequence := range c.samples {
		copied := make([]Sample, len(sequence))
		copy(copied, sequence)
		snapshot[name] = copied
	}

	return snapshot
}

// Export serializes the full current store as JSON to the given path.
// The store mutex is held across serialization so concurrent Record calls
// can never produce a torn snapshot. A write failure is returned to the
// caller, never swallowed.
func (c *Collector) Export(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.MarshalIndent(c.samples, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling metrics: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error saving metrics to %s: %w", path, err)
	}

	return nil
}
