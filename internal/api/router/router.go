package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/luxesalon/salon-platform/internal/booking"
	"github.com/luxesalon/salon-platform/internal/catalog"
	"github.com/luxesalon/salon-platform/internal/consultant"
	httpmiddleware "github.com/luxesalon/salon-platform/internal/http/middleware"
	"github.com/luxesalon/salon-platform/internal/referrals"
	"github.com/luxesalon/salon-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger           *logging.Logger
	CatalogHandler   *catalog.Handler
	ReferralsHandler *referrals.Handler
	BookingHandler   *booking.Handler
	ChatHandler      *consultant.Handler
	MetricsHandler   http.Handler

	CORSAllowedOrigins []string
	ChatRateLimitRPS   float64
	ChatRateLimitBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.CatalogHandler != nil {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/services", cfg.CatalogHandler.ListServices)
			r.Get("/services/{serviceID}", cfg.CatalogHandler.GetService)
			r.Get("/stylists", cfg.CatalogHandler.ListStylists)
			r.Get("/stylists/{stylistID}", cfg.CatalogHandler.GetStylist)
			r.Get("/slots", cfg.CatalogHandler.ListTimeSlots)
		})
	}

	if cfg.ReferralsHandler != nil {
		r.Route("/referrals", func(r chi.Router) {
			r.Get("/stats", cfg.ReferralsHandler.GetStats)
			r.Get("/history", cfg.ReferralsHandler.ListHistory)
		})
	}

	if cfg.BookingHandler != nil {
		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", cfg.BookingHandler.StartFlow)
			r.Route("/{flowID}", func(r chi.Router) {
				r.Get("/", cfg.BookingHandler.GetFlow)
				r.Delete("/", cfg.BookingHandler.AbandonFlow)
				r.Post("/service", cfg.BookingHandler.ChooseService)
				r.Post("/stylist", cfg.BookingHandler.ChooseStylist)
				r.Post("/back", cfg.BookingHandler.Back)
				r.Post("/date", cfg.BookingHandler.PickDate)
				r.Post("/time", cfg.BookingHandler.PickTime)
				r.Post("/confirm", cfg.BookingHandler.Confirm)
			})
		})
	}

	if cfg.ChatHandler != nil {
		r.Route("/chat", func(r chi.Router) {
			if cfg.ChatRateLimitRPS > 0 {
				r.Use(httpmiddleware.RateLimit(cfg.ChatRateLimitRPS, cfg.ChatRateLimitBurst))
			}
			r.Post("/message", cfg.ChatHandler.SendMessage)
			r.Get("/history", cfg.ChatHandler.GetHistory)
			r.Get("/ws", cfg.ChatHandler.HandleWebSocket)
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
