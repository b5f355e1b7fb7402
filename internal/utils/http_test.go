package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "map payload",
			data:       map[string]string{"key": "value"},
			statusCode: http.StatusOK,
			wantBody:   `{"key":"value"}`,
		},
		{
			name:       "error payload with custom status",
			data:       map[string]string{"error": "not found"},
			statusCode: http.StatusNotFound,
			wantBody:   `{"error":"not found"}`,
		},
		{
			name:       "nil payload",
			data:       nil,
			statusCode: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name:       "empty struct payload",
			data:       struct{}{},
			statusCode: http.StatusTeapot,
			wantBody:   `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.statusCode)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_NonSerializableData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
