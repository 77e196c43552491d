package handlers

import (
	"net/http"

	"github.com/startright-uk/startright/internal/api/rest/response"
	"github.com/startright-uk/startright/internal/catalogue"
)

// ServicesHandler serves the price list in JSON format.
type ServicesHandler struct {
	services []catalogue.Service
}

// ServeHTTP responds with the price list wrapped in a data envelope.
func (h *ServicesHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response.JSONResponse(w, http.StatusOK, map[string]any{"data": h.services})
}

// NewServicesHandler creates a new HTTP handler that serves the given services.
func NewServicesHandler(services []catalogue.Service) http.Handler {
	return &ServicesHandler{
		services: services,
	}
}

// HealthHandler reports that the process is up.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}
