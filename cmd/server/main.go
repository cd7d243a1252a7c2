package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/nightreign-guide/internal/api"
	"github.com/dom/nightreign-guide/internal/config"
	"github.com/dom/nightreign-guide/internal/repository/postgres"
	"github.com/dom/nightreign-guide/internal/seed"
	"github.com/dom/nightreign-guide/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Reseed the catalog. This is destructive: ratings and custom builds
	// from the previous run are cleared too.
	catalog, err := seed.Load(context.Background(), repos)
	if err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	log.Printf("Seeded %d bosses, %d characters, %d builds",
		len(catalog.Bosses), len(catalog.Characters), len(catalog.Builds))

	// Initialize services
	services := service.NewServices(repos)

	// Initialize router
	router := api.NewRouter(services)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
