package http

import (
	"net/http"

	"github.com/MKhiriev/go-obs-kit/internal/utils"
	"github.com/MKhiriev/go-obs-kit/models"
)

// health is the liveness endpoint. It carries no dependencies and always
// reports ok while the process is serving.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
	return err
}
