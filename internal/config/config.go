// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-obs-kit service. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string
	// exposed by the /api/version/ endpoint.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Metrics holds settings of the in-memory metrics collector and its
	// periodic export worker.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Metrics holds configuration of the metrics collector and export worker.
type Metrics struct {
	// Capacity is the per-metric sample limit of the in-memory collector.
	// Zero means the collector default (10000).
	// Env: METRICS_CAPACITY
	Capacity int `env:"CAPACITY"`

	// ExportPath is the file the collected metrics snapshot is written to
	// by the export worker and on shutdown (e.g. "metrics.json").
	// Env: METRICS_EXPORT_PATH
	ExportPath string `env:"EXPORT_PATH"`

	// ExportInterval is how often the export worker flushes the snapshot
	// to ExportPath. Zero disables periodic flushing; the snapshot is then
	// written only on shutdown.
	// Env: METRICS_EXPORT_INTERVAL
	ExportInterval time.Duration `env:"EXPORT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from environment variables, command-line flags, and an
// optional JSON file referenced by either of the first two sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
