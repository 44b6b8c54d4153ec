// Package router assembles the HTTP surface of the chatbot service.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tatvax/edubot/internal/chatbot"
	"github.com/tatvax/edubot/internal/feedback"
	httpmiddleware "github.com/tatvax/edubot/internal/http/middleware"
	"github.com/tatvax/edubot/internal/translation"
	"github.com/tatvax/edubot/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *chatbot.Handler
	TranslationHandler *translation.Handler
	FeedbackHandler    *feedback.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	StaticDir          string

	// Requests/sec and burst per client IP on /api routes; zero disables.
	RateLimit      float64
	RateLimitBurst int
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

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

	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimit > 0 {
			api.Use(httpmiddleware.RateLimit(cfg.RateLimit, cfg.RateLimitBurst))
		}
		api.Mount("/", cfg.ChatHandler.Routes())
		api.Post("/translate", cfg.TranslationHandler.Translate)
		api.Post("/translate/batch", cfg.TranslationHandler.TranslateBatch)
		api.Post("/feedback", cfg.FeedbackHandler.Submit)
	})

	if cfg.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
