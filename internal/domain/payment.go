package domain

// VerifyPaymentRequest is the client-submitted body for payment verification.
// Amount is whatever the payment widget reported client-side; the gateway's
// figure is authoritative, so it plays no part in verification.
type VerifyPaymentRequest struct {
	Reference string  `json:"reference" validate:"required"`
	Email     string  `json:"email" validate:"required"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
}

// GatewayVerification is the gateway's reply to a transaction lookup.
// The top-level Status flag covers the API call itself; Data.Status carries
// the transaction outcome. Both must indicate success for a payment to count.
type GatewayVerification struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    GatewayTransaction `json:"data"`
}

// GatewayTransaction is the transaction record nested in a verification reply.
// Amount is in minor currency units (kobo); divide by 100 for display.
type GatewayTransaction struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}
