package handler

import (
	"encoding/json"
	"net/http"
)

// StatusEnvelope is the response wrapper shared by the relay endpoints:
// a boolean outcome plus a human-readable message, never internal detail.
type StatusEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ConfigEnvelope wraps the public-key response for widget initialisation.
type ConfigEnvelope struct {
	Key string `json:"key"`
}

// MessageEnvelope is the generic response wrapper for non-relay endpoints.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeStatus(w http.ResponseWriter, status int, ok bool, msg string) {
	writeJSON(w, status, StatusEnvelope{Status: ok, Message: msg})
}
