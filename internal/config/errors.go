package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidMetricsConfigs indicates invalid metrics collector settings
	// (for example, a negative capacity or export interval).
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
