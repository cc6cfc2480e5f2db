package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kaanyalova/draft-advisor/internal/api"
	"github.com/kaanyalova/draft-advisor/internal/config"
	"github.com/kaanyalova/draft-advisor/internal/knowledge"
	"github.com/kaanyalova/draft-advisor/internal/meta"
	"github.com/kaanyalova/draft-advisor/internal/repository/postgres"
	"github.com/kaanyalova/draft-advisor/internal/service"
	"github.com/kaanyalova/draft-advisor/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Load and validate the knowledge base before anything else; a broken
	// table should stop the process, not degrade scoring silently.
	kb, err := knowledge.Default()
	if err != nil {
		log.Fatalf("failed to load knowledge base: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Pick the meta provider
	var provider meta.Provider
	if cfg.UseLiveMeta {
		store := meta.NewStoreProvider(repos.MetaStats)
		if err := store.Refresh(context.Background()); err != nil {
			log.Printf("meta refresh failed, serving bundled snapshot: %v", err)
		}
		provider = store
	} else {
		provider = meta.NewStaticProvider()
	}

	// Initialize services
	services := service.NewServices(repos, kb, provider, cfg)

	if cfg.SeedMetaOnStart {
		if n, err := services.Champion.SeedMetaStats(context.Background()); err != nil {
			log.Printf("meta seed failed: %v", err)
		} else if n > 0 {
			log.Printf("Seeded %d meta stat rows", n)
			if err := services.Advisor.RefreshMeta(context.Background()); err != nil {
				log.Printf("meta refresh after seed failed: %v", err)
			}
		}
	}

	if cfg.SyncOnStart {
		if n, version, err := services.Champion.SyncFromDataDragon(context.Background()); err != nil {
			log.Printf("champion sync failed: %v", err)
		} else {
			log.Printf("Synced %d champions (Data Dragon %s)", n, version)
		}
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub(services.Advisor)
	go hub.Run()

	// Initialize router
	router := api.NewRouter(services, hub)

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

	hub.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
