package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLines(t *testing.T, raw string) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log output must be line-delimited JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestWithLogging_ExactlyOneEntryPerRequest(t *testing.T) {
	tests := []struct {
		name       string
		handler    handlerFunc
		wantStatus string
	}{
		{
			name:       "explicit status",
			handler:    okHandler,
			wantStatus: "200",
		},
		{
			name: "implicit 200 when nothing written",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return nil
			},
			wantStatus: "200",
		},
		{
			name: "failure without response",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return errors.New("downstream failed")
			},
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandlerWithBuffer()
			middleware := h.withLogging(tt.handler)

			req, _ := newStateRequest(http.MethodGet, "/test")
			rr := httptest.NewRecorder()
			_ = middleware(rr, req)

			entries := logLines(t, buf.String())
			require.Len(t, entries, 1, "every request must produce exactly one log entry")
			assert.Equal(t, tt.wantStatus, entries[0]["status"])
		})
	}
}

func TestWithLogging_EntryFields(t *testing.T) {
	h, buf := newTestHandlerWithBuffer()
	middleware := h.withLogging(okHandler)

	req, state := newStateRequest(http.MethodGet, "/api/items")
	state.traceID = "trace-123"
	state.clientIP = "192.0.2.1"
	state.userAgent = "go-test-agent"
	state.setDuration(0)

	rr := httptest.NewRecorder()
	require.NoError(t, middleware(rr, req))

	entries := logLines(t, buf.String())
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "trace-123", entry["trace_id"])
	assert.Equal(t, "192.0.2.1", entry["client_ip"])
	assert.Equal(t, "go-test-agent", entry["user_agent"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/items", entry["path"])
	assert.Contains(t, entry, "duration_ms")
	assert.Contains(t, entry, "size")
}

func TestWithLogging_VisibleThroughDecoratedWriter(t *testing.T) {
	h, buf := newTestHandlerWithBuffer()

	var sawDecorated bool
	inner := func(w http.ResponseWriter, r *http.Request) error {
		_, sawDecorated = w.(*responseWriter)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
		return nil
	}

	middleware := h.withLogging(inner)
	req, _ := newStateRequest(http.MethodPost, "/test")
	rr := httptest.NewRecorder()
	require.NoError(t, middleware(rr, req))

	assert.True(t, sawDecorated, "downstream must see the status-recording writer")

	entries := logLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "201", entries[0]["status"])
	assert.Equal(t, float64(len("created")), entries[0]["size"])
}
