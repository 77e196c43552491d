package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const (
	MethodNotAllowedMessage   = "Method not allowed"
	InvalidRequestBodyMessage = "invalid request body"

	// MaxBodyBytes caps decoded request bodies.
	MaxBodyBytes = 1 << 20
)

// JSONResponse writes the given data as a JSON response with the specified status code.
func JSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// JSONErrorResponse writes an error message as a JSON response with the specified status code.
func JSONErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, map[string]string{"error": message})
}

// MethodNotAllowed writes a 405 listing the allowed methods in the Allow header.
func MethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}

	JSONErrorResponse(w, http.StatusMethodNotAllowed, MethodNotAllowedMessage)
}

// DecodeJSON reads at most MaxBodyBytes of the request body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}

	return json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(v)
}
