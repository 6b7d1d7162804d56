// Package httputil implements the service's wire envelope. Successful
// responses carry {"status":"OK","details":...}; failures carry
// {"error":true,"details":"<CODE>"} with an optional fields map for
// validation errors.
package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON shape of every response body.
type Envelope struct {
	Status  string            `json:"status,omitempty"`
	Error   bool              `json:"error,omitempty"`
	Details any               `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// OK writes a success envelope with the given status code and payload.
func OK(w http.ResponseWriter, status int, details any) {
	writeJSON(w, status, Envelope{Status: "OK", Details: details})
}

// Fail writes a failure envelope carrying only the wire error code.
func Fail(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, Envelope{Error: true, Details: code})
}

// FailFields is Fail plus a field-to-message map for validation errors.
func FailFields(w http.ResponseWriter, status int, code string, fields map[string]string) {
	writeJSON(w, status, Envelope{Error: true, Details: code, Fields: fields})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}
