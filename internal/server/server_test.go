package server

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-obs-kit/internal/config"
	"github.com/MKhiriev/go-obs-kit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(http.NewServeMux(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoListenAddress)
}

func TestNewServer_WithAddress(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), config.Server{HTTPAddress: "localhost:0"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestServer_ShutdownRunsHooksInOrder(t *testing.T) {
	var order []int
	srv, err := NewServer(
		http.NewServeMux(),
		config.Server{HTTPAddress: "localhost:0"},
		logger.Nop(),
		func() { order = append(order, 1) },
		func() { order = append(order, 2) },
	)
	require.NoError(t, err)

	srv.Shutdown()
	assert.Equal(t, []int{1, 2}, order)
}
