// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"
)

// requestState is the per-request mutable attribute bag threaded through the
// middleware pipeline. One state is created at pipeline entry per request and
// is owned exclusively by that request's goroutine, so no locking is needed.
//
// Fields follow a set-once discipline: every field, once written, is never
// overwritten within the same request. The only exception is traceID, which
// the error-handling layer may read back to force onto an error value so the
// response header and body always carry the same id.
type requestState struct {
	// traceID is the request's opaque unique identifier, assigned by the
	// trace identity middleware.
	traceID string

	// durationMS is the measured handling duration in milliseconds,
	// recorded by the timing middleware on both success and failure.
	durationMS float64

	// durationSet guards the set-once discipline of durationMS.
	durationSet bool

	// clientIP and userAgent describe the originating client, extracted by
	// the client identity middleware.
	clientIP  string
	userAgent string
}

// setDuration records the handling duration exactly once; later calls are
// ignored.
func (s *requestState) setDuration(elapsed time.Duration) {
	if s.durationSet {
		return
	}

	s.durationMS = float64(elapsed) / float64(time.Millisecond)
	s.durationSet = true
}

type requestStateCtxKey struct{}

// withRequestState returns a context carrying the given state. The state is
// stored by pointer so enrichments made by inner middlewares are visible to
// outer ones after the chain unwinds.
func withRequestState(ctx context.Context, state *requestState) context.Context {
	return context.WithValue(ctx, requestStateCtxKey{}, state)
}

// stateFromContext returns the request state attached to ctx, or nil when the
// request did not pass through the pipeline entry point. Callers must handle
// nil: the error-handling layer, in particular, does not assume the enriching
// middlewares ran.
func stateFromContext(ctx context.Context) *requestState {
	state, _ := ctx.Value(requestStateCtxKey{}).(*requestState)
	return state
}
