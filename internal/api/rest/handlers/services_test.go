package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startright-uk/startright/internal/catalogue"
)

func TestServicesHandler_ServeHTTP(t *testing.T) {
	services := []catalogue.Service{
		{ID: "company-formation", Title: "Company Formation", Price: "£99", Features: []string{"24-hour turnaround"}},
		{ID: "trademark", Title: "Trademark Registration", Price: "£199"},
	}

	w := httptest.NewRecorder()
	NewServicesHandler(services).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body struct {
		Data []catalogue.Service `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, services, body.Data)
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler(w, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}
