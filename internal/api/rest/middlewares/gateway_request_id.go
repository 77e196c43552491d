package middlewares

import (
	"net/http"

	"github.com/awslabs/aws-lambda-go-api-proxy/core"
)

// GatewayRequestIDMiddleware copies the API Gateway request ID into X-Request-ID
// so the request log matches the gateway's access log.
type GatewayRequestIDMiddleware struct{}

// Handle sets X-Request-ID from the proxied gateway context when the client sent none.
func (m *GatewayRequestIDMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(RequestIDHeader) == "" {
			if gw, ok := core.GetAPIGatewayV2ContextFromContext(r.Context()); ok && gw.RequestID != "" {
				r.Header.Set(RequestIDHeader, gw.RequestID)
			}
		}

		next.ServeHTTP(w, r)
	})
}

// NewGatewayRequestIDMiddleware creates a middleware for handlers served through httpadapter.
func NewGatewayRequestIDMiddleware() Middleware {
	return &GatewayRequestIDMiddleware{}
}
