package handler

import "net/http"

// ConfigHandler exposes the gateway public key for client-side widget setup.
type ConfigHandler struct {
	publicKey string
}

func NewConfigHandler(publicKey string) *ConfigHandler {
	return &ConfigHandler{publicKey: publicKey}
}

// Get returns the configured public key as-is; an unset key comes back empty.
func (h *ConfigHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ConfigEnvelope{Key: h.publicKey})
}
