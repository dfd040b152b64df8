package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-payment-relay/internal/config"
)

// Notifier delivers operator-facing messages to a messaging webhook.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type notifier struct {
	baseURL  string
	botToken string
	chatID   string
	http     *http.Client
}

// NewNotifier returns a Notifier posting to the Telegram bot API.
func NewNotifier(cfg *config.Config) Notifier {
	return &notifier{
		baseURL:  cfg.TelegramBaseURL,
		botToken: cfg.TelegramBotToken,
		chatID:   cfg.TelegramChatID,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts one sendMessage call to the configured chat. One attempt, no
// retry; the caller decides whether a failure is fatal to its request.
func (n *notifier) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("encode sendMessage payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("sendMessage request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Telegram returns a JSON description of what went wrong; keep it
		// for the log line.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendMessage returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
