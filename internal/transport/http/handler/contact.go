package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-payment-relay/internal/application/contact"
	"github.com/go-payment-relay/internal/domain"
)

// ContactHandler handles the contact-form endpoint.
type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler { return &ContactHandler{svc: svc} }

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, false, "All fields are required")
		return
	}
	err := h.svc.Send(r.Context(), req)
	switch {
	case err == nil:
		writeStatus(w, http.StatusOK, true, "Message sent successfully")
	case errors.Is(err, domain.ErrValidation):
		writeStatus(w, http.StatusBadRequest, false, "All fields are required")
	default:
		writeStatus(w, http.StatusInternalServerError, false, "Failed to send message. Please try again later.")
	}
}
