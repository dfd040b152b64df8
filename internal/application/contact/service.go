package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-payment-relay/internal/domain"
	"github.com/go-payment-relay/internal/pkg/id"
	"github.com/go-payment-relay/internal/pkg/validate"
)

type Service interface {
	// Send forwards a contact inquiry to the operator chat. Delivering the
	// notification is the whole point of the request, so a notifier failure
	// is returned to the caller.
	Send(ctx context.Context, req domain.ContactRequest) error
}

type notifier interface {
	Send(ctx context.Context, text string) error
}

type service struct {
	notifier notifier
}

func NewService(n notifier) Service {
	return &service{notifier: n}
}

func (s *service) Send(ctx context.Context, req domain.ContactRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}
	if err := s.notifier.Send(ctx, inquiryMessage(req, id.New())); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

func inquiryMessage(req domain.ContactRequest, inquiryID string) string {
	var b strings.Builder
	b.WriteString("📩 *NEW CONTACT INQUIRY*\n\n")
	fmt.Fprintf(&b, "🆔 *Inquiry:* `%s`\n", inquiryID)
	fmt.Fprintf(&b, "👤 *Name:* %s\n", req.Name)
	fmt.Fprintf(&b, "📧 *Email:* %s\n\n", req.Email)
	fmt.Fprintf(&b, "📝 *Message:*\n%s", req.Message)
	return b.String()
}
