package payment

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-payment-relay/internal/domain"
	"github.com/go-payment-relay/internal/pkg/validate"
)

// gatewaySuccess is the transaction status Paystack reports for a settled payment.
const gatewaySuccess = "success"

type Service interface {
	// Verify checks a transaction reference against the gateway and, when the
	// payment is confirmed, notifies the operator chat. A nil return means the
	// payment is verified; the notification itself is best-effort.
	Verify(ctx context.Context, req domain.VerifyPaymentRequest) error
}

type gateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*domain.GatewayVerification, error)
}

type notifier interface {
	Send(ctx context.Context, text string) error
}

type service struct {
	gateway    gateway
	notifier   notifier
	identifier string
}

func NewService(gw gateway, n notifier, identifier string) Service {
	return &service{gateway: gw, notifier: n, identifier: identifier}
}

func (s *service) Verify(ctx context.Context, req domain.VerifyPaymentRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}

	v, err := s.gateway.VerifyTransaction(ctx, req.Reference)
	if err != nil {
		return err
	}
	if !v.Status || v.Data.Status != gatewaySuccess {
		return fmt.Errorf("gateway reported transaction status %q: %w", v.Data.Status, domain.ErrGatewayDeclined)
	}

	// Gateway amounts are in kobo (1/100 of a naira).
	amount := float64(v.Data.Amount) / 100

	// The payment is already confirmed at this point, so a lost notification
	// only costs an operator ping: log it and move on.
	if err := s.notifier.Send(ctx, s.receivedMessage(req, amount)); err != nil {
		log.Printf("payment notification failed for %s: %v", req.Reference, err)
	}
	return nil
}

func (s *service) receivedMessage(req domain.VerifyPaymentRequest, amount float64) string {
	name := req.Name
	if name == "" {
		name = "N/A"
	}
	var b strings.Builder
	b.WriteString("✅ *NEW PAYMENT RECEIVED*\n\n")
	fmt.Fprintf(&b, "🆔 *Identifier:* %s\n", s.identifier)
	fmt.Fprintf(&b, "👤 *Name:* %s\n", name)
	fmt.Fprintf(&b, "📧 *Email:* %s\n", req.Email)
	fmt.Fprintf(&b, "💰 *Amount:* ₦%s\n", strconv.FormatFloat(amount, 'f', -1, 64))
	fmt.Fprintf(&b, "REF: `%s`\n\n", req.Reference)
	b.WriteString("_Please check your dashboard._")
	return b.String()
}
