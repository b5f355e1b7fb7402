// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the domain types shared across the application:
// the structured application error and the wire representations of
// responses.
package models

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// DefaultAppErrorMessage is used when an AppError is constructed with an
// empty message.
const DefaultAppErrorMessage = "An application error occurred"

// AppError is a structured application error that is safe to expose to
// clients. Domain and handler code returns *AppError when a failure carries a
// deliberate HTTP status and context that may be shown to the caller;
// everything else is treated as an unexpected failure and redacted by the
// error-handling middleware.
//
// Invariant: Context is always a non-nil map and ToWire always produces the
// same four keys, regardless of how the error was constructed.
type AppError struct {
	// Message is the human-readable error text returned to the client.
	Message string

	// StatusCode is the HTTP status code of the resulting response.
	StatusCode int

	// Context carries additional safe-to-expose key/value detail.
	Context map[string]any

	// TraceID correlates the error with the request that produced it.
	// It is generated at construction time and overwritten with the
	// request's authoritative trace id when the error is handled.
	TraceID string
}

// NewAppError constructs an *AppError, applying defaults and normalizing the
// context value:
//   - an empty message becomes [DefaultAppErrorMessage];
//   - a zero status code becomes 500;
//   - a map context is shallow-copied, a nil context becomes an empty map,
//     and any other value is wrapped as {"detail": value}.
func NewAppError(message string, statusCode int, context any) *AppError {
	if message == "" {
		message = DefaultAppErrorMessage
	}
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	return &AppError{
		Message:    message,
		StatusCode: statusCode,
		Context:    normalizeErrorContext(context),
		TraceID:    uuid.NewString(),
	}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("AppError(status=%d, msg='%s', trace_id='%s')", e.StatusCode, e.Message, e.TraceID)
}

// ToWire returns the stable JSON representation of the error.
func (e *AppError) ToWire() AppErrorBody {
	statusCode := e.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	context := e.Context
	if context == nil {
		context = map[string]any{}
	}

	message := e.Message
	if message == "" {
		message = DefaultAppErrorMessage
	}

	return AppErrorBody{
		Message:    message,
		StatusCode: statusCode,
		Context:    context,
		TraceID:    e.TraceID,
	}
}

func normalizeErrorContext(context any) map[string]any {
	switch c := context.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		copied := make(map[string]any, len(c))
		for key, value := range c {
			copied[key] = value
		}
		return copied
	default:
		return map[string]any{"detail": c}
	}
}
