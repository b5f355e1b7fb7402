// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-obs-kit application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// On top of the standard levels the package defines [MetricLevel], a custom
// severity used exclusively for numeric performance samples. Events emitted
// at MetricLevel carry a "metric_name" and "value" field and are consumed by
// a metrics sink attached via [NewLoggerWithSink]; ordinary sinks render them
// with level "metric".
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MetricLevel is the custom zerolog severity for performance samples.
// The numeric value is above every standard level so metric events are never
// suppressed by level filtering, and it is rendered as "metric" in the JSON
// level field.
const MetricLevel = zerolog.Level(25)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "server", "worker").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation;
//   - [MetricLevel] registered so it renders as "metric".
//
// Output is written to os.Stdout in JSON format. Setup is explicit: this
// constructor is called once at process start and there is no lazy
// first-use initialization anywhere else.
func NewLogger(role string) *Logger {
	configureGlobals()

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLoggerWithSink behaves like [NewLogger] but fans every event out to the
// provided sink in addition to os.Stdout. The sink receives the event bytes
// together with their level via zerolog's LevelWriter contract, which is how
// the metrics collector subscribes to [MetricLevel] events.
func NewLoggerWithSink(role string, sink zerolog.LevelWriter) *Logger {
	configureGlobals()

	logger := zerolog.New(zerolog.MultiLevelWriter(os.Stdout, sink)).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		if l == MetricLevel {
			return "metric"
		}
		return l.String()
	}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Metric emits a performance sample at [MetricLevel].
//
// The event carries the metric name under "metric_name" and the numeric
// value under "value", the exact field pair the metrics collector looks for.
// Value is the measured quantity itself (for the instrumentation wrapper:
// elapsed seconds).
func (l *Logger) Metric(name string, value float64) {
	l.WithLevel(MetricLevel).
		Str("metric_name", name).
		Float64("value", value).
		Msgf("%s recorded %.4f", name, value)
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
