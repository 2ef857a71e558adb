package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wilsonfong56/ETF-Dashboard/internal/api/handlers"
)

// Config holds router configuration
type Config struct {
	HealthHandler  *handlers.HealthHandler
	QuoteHandler   *handlers.QuoteHandler
	OptionsHandler *handlers.OptionsHandler
	SignalsHandler *handlers.SignalsHandler
	ChartHandler   *handlers.ChartHandler
	ETFHandler     *handlers.ETFHandler
}

// NewRouter creates a new HTTP router
func NewRouter(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", cfg.HealthHandler.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Quotes and options
		r.Get("/quote/{ticker}", cfg.QuoteHandler.GetQuote)
		r.Get("/options/{ticker}", cfg.OptionsHandler.GetChain)

		// Market signals and charts
		r.Get("/signals", cfg.SignalsHandler.GetSignals)
		r.Get("/chart/{ticker}", cfg.ChartHandler.GetChart)

		// Static registries
		r.Get("/etfs", cfg.ETFHandler.GetETFs)
		r.Get("/intl-etfs", cfg.ETFHandler.GetIntlETFs)
		r.Get("/holdings/{ticker}", cfg.ETFHandler.GetHoldings)
		r.Get("/intl-holdings/{ticker}", cfg.ETFHandler.GetIntlHoldings)
	})

	return r
}
