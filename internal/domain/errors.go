package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	// ErrValidation marks a request rejected before any outbound call is made.
	ErrValidation = errors.New("validation failed")
	// ErrGatewayDeclined marks a verification the gateway explicitly reported as unsuccessful.
	ErrGatewayDeclined = errors.New("gateway declined")
	// ErrTransport marks a network failure, non-2xx reply, or malformed body from an external call.
	ErrTransport = errors.New("transport failure")
)
