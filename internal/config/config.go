package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
// It is read once at startup and treated as immutable afterwards.
type Config struct {
	AppPort string
	AppEnv  string

	AllowedOrigins []string // CORS allowed origins

	PaystackPublicKey string
	PaystackSecretKey string
	PaystackBaseURL   string // overridable so tests can point at a local server

	TelegramBotToken string
	TelegramChatID   string
	TelegramBaseURL  string

	// Free-text tag included in payment notifications so one chat can
	// receive messages from several deployments.
	NotificationIdentifier string

	StaticDir string // SPA asset directory served on unmatched routes
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),

		PaystackPublicKey: getEnv("PAYSTACK_PUBLIC_KEY", ""),
		PaystackSecretKey: getEnv("PAYSTACK_SECRET_KEY", ""),
		PaystackBaseURL:   getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		TelegramBaseURL:  getEnv("TELEGRAM_BASE_URL", "https://api.telegram.org"),

		NotificationIdentifier: getEnv("NOTIFICATION_IDENTIFIER", "PAYMENT_RECEIVED"),

		StaticDir: getEnv("STATIC_DIR", "./web"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
