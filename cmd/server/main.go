package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cryptotracker/backend/internal/api"
	"github.com/cryptotracker/backend/internal/config"
	"github.com/cryptotracker/backend/internal/database"
	"github.com/cryptotracker/backend/internal/repository"
	"github.com/cryptotracker/backend/internal/seed"
	"github.com/cryptotracker/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.DSN)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	positionRepo := repository.NewPositionRepository(db)
	lotRepo := repository.NewLotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	positionService := service.NewPositionService(positionRepo, lotRepo)
	lotService := service.NewLotService(db, positionRepo, lotRepo)
	portfolioService := service.NewPortfolioService(positionService)

	// Load the demo portfolio into the fresh store
	if cfg.Seed {
		if err := seed.Demo(context.Background(), lotService); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Seeded demo portfolio")
	}

	// Create router
	router := api.NewRouter(systemService, positionService, lotService, portfolioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
