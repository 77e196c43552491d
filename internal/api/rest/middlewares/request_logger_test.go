package middlewares

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerMiddleware_Handle(t *testing.T) {
	cases := map[string]struct {
		inboundID      string
		status         int
		keepInboundID  bool
		expectedStatus string
	}{
		"Should generate request ID when none is sent": {
			status:         http.StatusOK,
			expectedStatus: "200",
		},
		"Should keep inbound request ID": {
			inboundID:      "abc-123",
			status:         http.StatusInternalServerError,
			keepInboundID:  true,
			expectedStatus: "500",
		},
		"Should replace oversized inbound request ID": {
			inboundID:      strings.Repeat("x", maxInboundRequestID+1),
			status:         http.StatusBadRequest,
			expectedStatus: "400",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			start := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
			calls := 0

			mw := &RequestLoggerMiddleware{
				logger: slog.New(slog.NewJSONHandler(&buf, nil)),
				now: func() time.Time {
					calls++
					return start.Add(time.Duration(calls-1) * 250 * time.Millisecond)
				},
			}

			var seenID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := GetRequestIDFromContext(r.Context())
				require.True(t, ok)
				seenID = id
				w.WriteHeader(tc.status)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/orders", http.NoBody)
			if tc.inboundID != "" {
				req.Header.Set(RequestIDHeader, tc.inboundID)
			}

			rr := httptest.NewRecorder()
			mw.Handle(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, seenID, rr.Header().Get(RequestIDHeader))
			if tc.keepInboundID {
				assert.Equal(t, tc.inboundID, seenID)
			} else {
				_, err := uuid.Parse(seenID)
				assert.NoError(t, err)
			}

			log := buf.String()
			for k, v := range map[string]string{
				"msg":        "request handled",
				"request_id": seenID,
				"method":     http.MethodPost,
				"path":       "/api/orders",
			} {
				assert.Contains(t, log, fmt.Sprintf("%q:%q", k, v))
			}
			assert.Contains(t, log, fmt.Sprintf(`"status":%s`, tc.expectedStatus))
			assert.Contains(t, log, `"duration_ms":250`)
		})
	}
}

func TestRequestLoggerMiddleware_DefaultsStatusToOK(t *testing.T) {
	var buf bytes.Buffer
	h := NewRequestLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil))).Handle(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}),
	)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	_, ok := GetRequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody).Context())
	assert.False(t, ok)
}
