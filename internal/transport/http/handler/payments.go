package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-payment-relay/internal/application/payment"
	"github.com/go-payment-relay/internal/domain"
)

// PaymentHandler handles the payment verification endpoint.
type PaymentHandler struct {
	svc payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler { return &PaymentHandler{svc: svc} }

func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, false, "Missing transaction reference or email")
		return
	}
	err := h.svc.Verify(r.Context(), req)
	switch {
	case err == nil:
		writeStatus(w, http.StatusOK, true, "Payment verified and notification sent")
	case errors.Is(err, domain.ErrValidation):
		writeStatus(w, http.StatusBadRequest, false, "Missing transaction reference or email")
	case errors.Is(err, domain.ErrGatewayDeclined):
		writeStatus(w, http.StatusBadRequest, false, "Payment verification failed at gateway")
	default:
		writeStatus(w, http.StatusInternalServerError, false, "Internal server error during verification")
	}
}
