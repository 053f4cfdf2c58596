// Package httpx holds the JSON transport helpers shared by all endpoint
// handlers: tolerant body decoding, response writers and router middleware.
package httpx

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"creatorplus-server/modules/common/apperr"
)

// maxBodyBytes - request body cap, matches the web client's upload ceiling
const maxBodyBytes = 25 << 20

// ErrorBody - the `{"error": ...}` shape every failure response carries
type ErrorBody struct {
	Error string `json:"error"`
}

// DecodeBody - parse the JSON request body into v. An absent or unparsable
// body leaves v zero-valued (empty-object semantics) so that the subsequent
// field-presence validation reports the specific missing field instead.
func DecodeBody(w http.ResponseWriter, r *http.Request, v interface{}) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Printf("⚠️ [HTTP] Failed to read request body: %v", err)
		return
	}
	if len(body) == 0 || !json.Valid(body) {
		return
	}
	if err := json.Unmarshal(body, v); err != nil {
		log.Printf("⚠️ [HTTP] Ignoring malformed request body: %v", err)
	}
}

// WriteJSON - serialize v with the given status
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ [HTTP] Failed to encode response: %v", err)
	}
}

// WriteError - map err to its declared status (default 500) with an error body
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, apperr.StatusOf(err), ErrorBody{Error: err.Error()})
}

// WriteMethodNotAllowed - 405 response for non-POST requests on API endpoints
func WriteMethodNotAllowed(w http.ResponseWriter) {
	WriteJSON(w, http.StatusMethodNotAllowed, ErrorBody{Error: "Method not allowed"})
}
