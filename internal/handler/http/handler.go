package http

import (
	"net/http"

	"github.com/MKhiriev/go-obs-kit/internal/config"
	"github.com/MKhiriev/go-obs-kit/internal/logger"
	"github.com/MKhiriev/go-obs-kit/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// handlerFunc is an HTTP handler that reports failures to the middleware
// pipeline instead of writing error responses itself. Returning a
// *models.AppError produces the structured error envelope; any other error
// is treated as an unexpected failure and redacted.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// middleware wraps a handlerFunc with a cross-cutting concern.
type middleware func(next handlerFunc) handlerFunc

type Handler struct {
	version string

	logger      *logger.Logger
	uuid        *utils.UUIDGenerator
	registry    *prometheus.Registry
	httpMetrics *requestMetrics
}

func NewHandler(cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	registry := prometheus.NewRegistry()

	return &Handler{
		version:     cfg.Version,
		logger:      logger,
		uuid:        utils.NewUUIDGenerator(),
		registry:    registry,
		httpMetrics: newRequestMetrics(registry),
	}
}
