// Package httpx provides JSON response utilities for the REST API.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape every failure response uses.
type ErrorBody struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends a failure response with a user-facing message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// DecodeJSON decodes the JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
