// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-obs-kit/internal/logger"
	"github.com/MKhiriev/go-obs-kit/internal/utils"
	"github.com/MKhiriev/go-obs-kit/models"
	"github.com/rs/zerolog"
)

// internalErrorMessage is the only message ever sent to a client for an
// unexpected failure. The original failure text is logged server-side and
// deliberately never transmitted.
const internalErrorMessage = "Internal server error"

// withErrorHandling is the single point where failures become responses.
//
// It distinguishes two kinds of failure:
//   - a *models.AppError anywhere in the returned error chain is a domain
//     error carrying a deliberate status code and safe-to-expose context; it
//     is propagated to the client verbatim;
//   - anything else - including a recovered panic - is an unexpected failure:
//     full detail and a captured stack are logged at error severity, while
//     the client receives a fixed generic 500 body exposing only the
//     failure's type name.
//
// In both cases the request's authoritative trace id (assigned by
// withTraceID) overrides whatever id the error value carried, so the
// X-Trace-ID header and the JSON body never disagree. The layer sits between
// the trace and timing middlewares: a failing handler has already had its
// duration recorded by the time the response is built, which is why error
// responses still carry X-Process-Time.
//
// This is a terminal handler - it never returns a failure of its own.
func (h *Handler) withErrorHandling(next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		defer func() {
			if rec := recover(); rec != nil {
				h.handleUnexpectedFailure(w, r, recoveredError(rec), fmt.Sprintf("%T", rec), debug.Stack())
			}
		}()

		err := next(w, r)
		if err == nil {
			return nil
		}

		var appErr *models.AppError
		if errors.As(err, &appErr) {
			h.handleAppError(w, r, appErr)
		} else {
			h.handleUnexpectedFailure(w, r, err, fmt.Sprintf("%T", err), debug.Stack())
		}

		return nil
	}
}

// handleAppError converts a structured application error into the uniform
// JSON envelope, logging it with full request context first.
func (h *Handler) handleAppError(w http.ResponseWriter, r *http.Request, appErr *models.AppError) {
	state := stateFromContext(r.Context())

	// the request's trace id is authoritative; the error's own id is only
	// kept when the trace middleware never ran
	if state != nil && state.traceID != "" {
		appErr.TraceID = state.traceID
	}

	log := logger.FromRequest(r)
	h.logErrorEvent(log, r, state, appErr.TraceID).
		Msgf("%s | context=%v", appErr.Error(), appErr.Context)

	writeErrorHeaders(w, appErr.TraceID, state)

	body := appErr.ToWire()
	if _, err := utils.WriteJSON(w, models.AppErrorResponse{Error: body}, body.StatusCode); err != nil {
		log.Error().Err(err).Msg("error writing app error response")
	}
}

// handleUnexpectedFailure converts any non-AppError failure (returned error
// or recovered panic) into a fixed, generic 500 response. typeName is the
// failure's Go type name, exposed as a diagnostic hint; stack is the
// captured stack trace for operator diagnosis.
func (h *Handler) handleUnexpectedFailure(w http.ResponseWriter, r *http.Request, failure error, typeName string, stack []byte) {
	state := stateFromContext(r.Context())

	// this path does not assume the trace middleware ran
	var traceID string
	if state != nil {
		traceID = state.traceID
	}
	if traceID == "" {
		traceID = h.uuid.Generate()
	}

	log := logger.FromRequest(r)
	h.logErrorEvent(log, r, state, traceID).
		Bytes("stack", stack).
		Msgf("UNHANDLED ERROR: %v", failure)

	writeErrorHeaders(w, traceID, state)

	response := models.UnexpectedErrorResponse{
		Error: models.UnexpectedErrorBody{
			Message: internalErrorMessage,
			Type:    typeName,
			TraceID: traceID,
		},
	}
	if _, err := utils.WriteJSON(w, response, http.StatusInternalServerError); err != nil {
		log.Error().Err(err).Msg("error writing unexpected failure response")
	}
}

// logErrorEvent starts an error-severity event enriched with the request
// context gathered so far: trace id, path, method, and - when the timing and
// client-identity middlewares ran - duration, client ip, and user agent.
func (h *Handler) logErrorEvent(log *logger.Logger, r *http.Request, state *requestState, traceID string) *zerolog.Event {
	event := log.Error().
		Str("trace_id", traceID).
		Str("path", r.URL.Path).
		Str("method", r.Method)

	if state != nil {
		if state.durationSet {
			event = event.Float64("duration_ms", state.durationMS)
		}
		if state.clientIP != "" {
			event = event.Str("client_ip", state.clientIP)
		}
		if state.userAgent != "" {
			event = event.Str("user_agent", state.userAgent)
		}
	}

	return event
}

// writeErrorHeaders sets the trace header and, when a duration has been
// recorded, the process-time header on an error response.
func writeErrorHeaders(w http.ResponseWriter, traceID string, state *requestState) {
	w.Header().Set(traceIDHeader, traceID)
	if state != nil && state.durationSet {
		w.Header().Set(processTimeHeader, formatProcessTime(state.durationMS))
	}
}

// recoveredError normalizes a recovered panic value into an error.
func recoveredError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", rec)
}
