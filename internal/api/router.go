package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cryptotracker/backend/internal/api/handlers"
	custommiddleware "github.com/cryptotracker/backend/internal/api/middleware"
	"github.com/cryptotracker/backend/internal/config"
	"github.com/cryptotracker/backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	positionService *service.PositionService,
	lotService *service.LotService,
	portfolioService *service.PortfolioService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/position", func(r chi.Router) {
			positionHandler := handlers.NewPositionHandler(positionService)
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/", positionHandler.Positions)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", positionHandler.Position)
				r.Get("/summary", positionHandler.Summary)
				r.Get("/narrative", portfolioHandler.Narrative)
			})
		})

		r.Route("/lot", func(r chi.Router) {
			lotHandler := handlers.NewLotHandler(lotService, positionService)
			r.Post("/", lotHandler.CreateLot)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", lotHandler.DeleteLot)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/overview", portfolioHandler.Overview)
			r.Get("/chart", portfolioHandler.Chart)
		})
	})

	return r
}
