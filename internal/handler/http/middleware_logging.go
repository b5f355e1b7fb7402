package http

import (
	"net/http"
	"strconv"
)

// withLogging emits exactly one structured log entry per request - never
// zero, never duplicated. It is the outermost observing layer of the
// pipeline, so by the time it logs, the trace, timing, and client-identity
// middlewares have all written into the shared request state and the
// error-handling layer has already converted any failure into a response.
//
// The entry is emitted from a deferred block so it cannot be skipped by any
// failure path, and carries: trace id, duration (0 if never recorded),
// client ip, user agent, resulting status code (or the literal "error" when
// no response could be produced), HTTP method, and path.
func (h *Handler) withLogging(next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) (err error) {
		lw := &responseWriter{ResponseWriter: w}

		defer func() {
			h.logRequest(r, lw, err)
		}()

		return next(lw, r)
	}
}

func (h *Handler) logRequest(r *http.Request, lw *responseWriter, err error) {
	state := stateFromContext(r.Context())

	var status string
	switch {
	case lw.wroteHeader:
		status = strconv.Itoa(lw.status)
	case err == nil:
		// a handler that returns without writing commits an implicit 200
		status = strconv.Itoa(http.StatusOK)
	default:
		status = "error"
	}

	var traceID, clientIP, userAgent string
	var durationMS float64
	if state != nil {
		traceID = state.traceID
		clientIP = state.clientIP
		userAgent = state.userAgent
		durationMS = state.durationMS
	}

	h.logger.Info().
		Str("trace_id", traceID).
		Float64("duration_ms", durationMS).
		Str("client_ip", clientIP).
		Str("user_agent", userAgent).
		Str("status", status).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("size", lw.size).
		Msgf("%s %s | status=%s | %.2fms", r.Method, r.URL.Path, status, durationMS)
}
