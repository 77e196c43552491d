package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDHeader                 = "X-Request-ID"
	RequestIDContextKey  contextKey = "request_id"
	maxInboundRequestID             = 128
)

// RequestLoggerMiddleware tags every request with an ID and logs its outcome.
type RequestLoggerMiddleware struct {
	logger *slog.Logger
	now    func() time.Time
}

// Handle assigns the request ID, serves next and logs method, path, status and duration.
func (m *RequestLoggerMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := m.now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxInboundRequestID {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), RequestIDContextKey, requestID)))

		m.logger.InfoContext(
			r.Context(),
			"request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", m.now().Sub(start).Milliseconds(),
		)
	})
}

// GetRequestIDFromContext returns the request ID set by RequestLoggerMiddleware.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDContextKey).(string)
	return id, ok
}

// NewRequestLoggerMiddleware creates a request logging middleware.
func NewRequestLoggerMiddleware(logger *slog.Logger) Middleware {
	return &RequestLoggerMiddleware{logger: logger, now: time.Now}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}

	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
