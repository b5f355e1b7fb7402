package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", h.pipeline(h.health))
	router.Get("/api/version/", h.pipeline(h.getServerVersion))

	// Prometheus exposition is served outside the pipeline: scrapes should
	// not pollute request logs or the request metrics themselves.
	router.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// pipeline assembles the observability chain around a handler and adapts it
// to a plain http.HandlerFunc.
//
// Layer order, outermost first:
//
//	logging → request metrics → trace identity → error handling → timing → client identity → handler
//
// The order is load-bearing. Logging stays outermost so it observes the
// final status, whoever wrote it. Error handling sits between trace and
// timing: when a handler fails, timing has already recorded the duration
// into the state by the time the failure is converted, so error responses
// carry X-Process-Time; and the trace id is already in the state, so the
// converted body matches the X-Trace-ID header. Client identity runs
// innermost of the enrichers, writing its fields before the handler starts.
func (h *Handler) pipeline(hf handlerFunc) http.HandlerFunc {
	chain := hf
	for _, mw := range []middleware{
		h.withClientInfo,
		h.withTiming,
		h.withErrorHandling,
		h.withTraceID,
		h.withRequestMetrics,
		h.withLogging,
	} {
		chain = mw(chain)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(withRequestState(r.Context(), &requestState{}))
		_ = chain(w, r)
	}
}
