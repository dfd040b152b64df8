package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/go-payment-relay/internal/application/contact"
	"github.com/go-payment-relay/internal/application/payment"
	"github.com/go-payment-relay/internal/config"
	"github.com/go-payment-relay/internal/infrastructure/paystack"
	"github.com/go-payment-relay/internal/infrastructure/telegram"
	"github.com/go-payment-relay/internal/transport/http/handler"
	appmiddleware "github.com/go-payment-relay/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Gateway  *paystack.Client
	Notifier telegram.Notifier
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — both POST endpoints trigger outbound
	// calls, so they get the same treatment as any sensitive public endpoint.
	publicRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	paymentSvc := payment.NewService(deps.Gateway, deps.Notifier, cfg.NotificationIdentifier)
	contactSvc := contact.NewService(deps.Notifier)

	healthH := handler.NewHealthHandler()
	configH := handler.NewConfigHandler(cfg.PaystackPublicKey)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	contactH := handler.NewContactHandler(contactSvc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthH.Ping)
		r.Get("/config", configH.Get)
		r.With(publicRL.Limit).Post("/verify", paymentH.Verify)
		r.With(publicRL.Limit).Post("/contact", contactH.Submit)
	})

	// Everything else is the SPA: real assets served directly, unmatched GETs
	// fall back to index.html.
	r.NotFound(handler.NewSPAHandler(cfg.StaticDir).ServeHTTP)

	return r
}
