// Package httpx holds the JSON response helpers shared by all handlers.
package httpx

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ayush/pet-qa-forum/internal/apperr"
)

// errorBody is the JSON shape of every error response: a human-readable
// message plus a field tag when a specific input is at fault.
type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a service error to its status code and JSON body.
// Storage-kind errors are logged with their cause; the client only ever
// sees the fixed message.
func WriteError(w http.ResponseWriter, err error) {
	code := apperr.Status(err)
	if code == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	WriteJSON(w, code, errorBody{
		Message: apperr.MessageOf(err),
		Field:   apperr.FieldOf(err),
	})
}

// Message writes a {"message": ...} body, the shape used by seed and
// wipe endpoints.
func Message(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, map[string]string{"message": msg})
}
