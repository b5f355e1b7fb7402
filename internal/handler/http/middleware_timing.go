package http

import (
	"fmt"
	"net/http"
	"time"
)

const processTimeHeader = "X-Process-Time"

// formatProcessTime renders a duration for the X-Process-Time header:
// a float with two decimal places and a literal "ms" suffix.
func formatProcessTime(durationMS float64) string {
	return fmt.Sprintf("%.2fms", durationMS)
}

// withTiming measures the wall-clock duration of request handling using the
// monotonic clock (time.Since), robust to handler failure: the duration is
// recorded into the request state exactly once whether downstream returns
// normally, returns an error, or panics, and a failure is re-propagated
// unchanged.
//
// On the success path the X-Process-Time header is stamped at the moment the
// downstream handler commits the response, since headers become immutable
// once the first body byte is written. On the failure path no response has
// been written yet; the error-handling layer reads the recorded duration
// from the state and sets the header itself.
func (h *Handler) withTiming(next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		start := time.Now()

		defer func() {
			if state := stateFromContext(r.Context()); state != nil {
				state.setDuration(time.Since(start))
			}
		}()

		tw := &timedWriter{ResponseWriter: w, start: start}
		return next(tw, r)
	}
}

// timedWriter stamps the X-Process-Time header on the first WriteHeader or
// Write call, right before headers are committed.
type timedWriter struct {
	http.ResponseWriter

	start   time.Time
	stamped bool
}

func (w *timedWriter) WriteHeader(statusCode int) {
	if !w.stamped {
		w.stamped = true
		elapsedMS := float64(time.Since(w.start)) / float64(time.Millisecond)
		w.Header().Set(processTimeHeader, formatProcessTime(elapsedMS))
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	if !w.stamped {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
