package http

import (
	"net/http"

	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns a fresh globally-unique trace id to every inbound
// request. Client-supplied X-Trace-ID headers are deliberately ignored -
// trusting them would let callers forge correlation ids across tenants.
//
// The id is written into the request state, bound to a request-scoped child
// logger attached to the context, and set on the response header before the
// downstream stage runs (response headers are immutable once the first body
// byte is written). The error-handling layer re-reads the state's id when
// converting a failure, so the header and the error body always match.
// This middleware never fails itself.
func (h *Handler) withTraceID(next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		ctx := r.Context()

		traceID := h.uuid.Generate()
		if state := stateFromContext(ctx); state != nil {
			state.traceID = traceID
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		return next(w, r)
	}
}
