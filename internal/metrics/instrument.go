// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"context"
	"time"

	"github.com/MKhiriev/go-obs-kit/internal/logger"
)

// Operation is any unit of work that can be instrumented.
type Operation func(ctx context.Context) error

// Instrument wraps op so that its wall-clock execution time is emitted at
// [logger.MetricLevel] under the given metric name.
//
// The sample is emitted unconditionally: on success, on returned error, and
// on panic (the deferred emit runs before the panic propagates). The wrapped
// operation's return value and any propagated failure are left untouched.
// The recorded value is elapsed seconds.
//
// Usage:
//
//	flush := metrics.Instrument(log, "metrics_flush", func(ctx context.Context) error {
//		return collector.Export(path)
//	})
//	err := flush(ctx)
func Instrument(l *logger.Logger, name string, op Operation) Operation {
	return func(ctx context.Context) error {
		start := time.Now()
		defer func() {
			l.Metric(name, time.Since(start).Seconds())
		}()

		return op(ctx)
	}
}
