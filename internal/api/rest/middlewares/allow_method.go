package middlewares

import (
	"net/http"
	"slices"

	"github.com/startright-uk/startright/internal/api/rest/response"
)

// AllowMethodMiddleware rejects requests whose method is not in the allowed set.
type AllowMethodMiddleware struct {
	methods []string
}

// Handle responds with a JSON 405 before next is reached when the method is not allowed.
func (m *AllowMethodMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !slices.Contains(m.methods, r.Method) {
			response.MethodNotAllowed(w, m.methods...)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewAllowMethodMiddleware creates a middleware accepting only the given methods.
func NewAllowMethodMiddleware(methods ...string) Middleware {
	return &AllowMethodMiddleware{methods: methods}
}
