// Package metrics implements the in-memory metrics sink of the application.
//
// The Collector subscribes to the custom metric log severity as a zerolog
// sink and accumulates bounded, per-name sample sequences that can be
// cleared on demand or exported to a JSON file. Instrument provides the
// companion higher-order wrapper that times any operation and feeds the
// result through the logging pipeline into the collector.
package metrics
