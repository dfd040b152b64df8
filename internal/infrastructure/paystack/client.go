package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-payment-relay/internal/config"
	"github.com/go-payment-relay/internal/domain"
)

// Client calls the Paystack transaction API with the account's secret key.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.PaystackBaseURL,
		secretKey: cfg.PaystackSecretKey,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// VerifyTransaction looks up a transaction by its reference.
// Any failure to obtain a well-formed reply (network error, non-2xx status,
// undecodable body) wraps domain.ErrTransport; interpreting the reply's
// success flags is left to the caller.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*domain.GatewayVerification, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, url.PathEscape(reference))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %v: %w", err, domain.ErrTransport)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway returned HTTP %d: %w", resp.StatusCode, domain.ErrTransport)
	}

	var v domain.GatewayVerification
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode gateway reply: %v: %w", err, domain.ErrTransport)
	}
	return &v, nil
}
