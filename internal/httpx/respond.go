// Package httpx holds the JSON response helpers shared by all handlers.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/fekuna/retail-backoffice/internal/apperr"
)

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes the {"message": ...} envelope the front-end expects.
func Message(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"message": msg})
}

// Error translates an error kind into its HTTP status and writes the
// message envelope. Unexpected errors surface as a 400 with a generic body.
func Error(w http.ResponseWriter, err error) {
	Message(w, StatusOf(err), apperr.MessageOf(err))
}

func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.InvalidInput, apperr.BusinessRule:
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
