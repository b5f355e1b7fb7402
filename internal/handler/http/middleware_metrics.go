package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// requestMetrics holds the Prometheus instruments for the HTTP pipeline.
// Instruments are created once per Handler against its own registry, so
// tests can construct handlers freely without duplicate-registration panics.
type requestMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newRequestMetrics(registry prometheus.Registerer) *requestMetrics {
	return &requestMetrics{
		requestsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Namespace: "obskit",
			Name:      "http_requests_total",
			Help:      "Total number of handled HTTP requests.",
		}, []string{"method", "path", "status"}),
		requestDuration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "obskit",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP request handling in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// withRequestMetrics records one counter increment and one duration
// observation per request. It sits directly inside the logging layer, so the
// observed writer is the logging responseWriter and the status label matches
// what gets logged - including responses produced by the error-handling
// layer.
func (h *Handler) withRequestMetrics(next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		start := time.Now()

		err := next(w, r)

		status := "error"
		if lw, ok := w.(*responseWriter); ok && lw.wroteHeader {
			status = strconv.Itoa(lw.status)
		} else if err == nil {
			status = strconv.Itoa(http.StatusOK)
		}

		h.httpMetrics.requestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		h.httpMetrics.requestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())

		return err
	}
}
