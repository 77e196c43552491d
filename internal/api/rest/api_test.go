package rest

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/startright-uk/startright/internal/api/rest/middlewares"
)

func namedHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(name))
	})
}

func TestNewMuxWithHandlers(t *testing.T) {
	cases := map[string]struct {
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		"Order":                     {http.MethodPost, OrderPath, http.StatusOK, "order"},
		"Order Alias":               {http.MethodPost, OrderAliasPath, http.StatusOK, "order"},
		"Chat":                      {http.MethodPost, ChatPath, http.StatusOK, "chat"},
		"Services":                  {http.MethodGet, ServicesPath, http.StatusOK, "services"},
		"Health":                    {http.MethodGet, HealthPath, http.StatusOK, `{"status":"healthy"}` + "\n"},
		"Order GET Not Allowed":     {http.MethodGet, OrderPath, http.StatusMethodNotAllowed, `{"error":"Method not allowed"}` + "\n"},
		"Chat DELETE Not Allowed":   {http.MethodDelete, ChatPath, http.StatusMethodNotAllowed, `{"error":"Method not allowed"}` + "\n"},
		"Unknown Path":              {http.MethodGet, "/api/unknown", http.StatusNotFound, ""},
		"Services POST Not Allowed": {http.MethodPost, ServicesPath, http.StatusMethodNotAllowed, ""},
	}

	var buf bytes.Buffer
	mux := NewMuxWithHandlers(&RouterConfig{
		OrderHandler:    namedHandler("order"),
		ChatHandler:     namedHandler("chat"),
		ServicesHandler: namedHandler("services"),
		Logger:          slog.New(slog.NewJSONHandler(&buf, nil)),
	})

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, http.NoBody))

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middlewares.RequestIDHeader))
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, w.Body.String())
			}
		})
	}

	assert.Contains(t, buf.String(), `"msg":"request handled"`)
}
