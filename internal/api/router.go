package api

import (
	"net/http"

	"github.com/kaanyalova/draft-advisor/internal/api/handlers"
	"github.com/kaanyalova/draft-advisor/internal/api/middleware"
	"github.com/kaanyalova/draft-advisor/internal/service"
	"github.com/kaanyalova/draft-advisor/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	recommendationHandler := handlers.NewRecommendationHandler(services.Advisor)
	championHandler := handlers.NewChampionHandler(services.Champion, services.Advisor)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Recommendation routes
		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/picks", recommendationHandler.Picks)
			r.Post("/bans", recommendationHandler.Bans)
			r.Post("/smart-bans", recommendationHandler.SmartBans)
		})

		// Champion routes
		r.Route("/champions", func(r chi.Router) {
			r.Get("/", championHandler.GetAll)
			r.Get("/catalog", championHandler.GetCatalog)
			r.Get("/catalog/{key}", championHandler.GetCatalogChampion)
			r.Get("/{id}", championHandler.Get)
			r.Post("/sync", championHandler.Sync)
			r.Post("/sync-meta", championHandler.SyncMeta)
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
