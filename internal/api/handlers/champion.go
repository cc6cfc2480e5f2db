package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/service"
	"github.com/go-chi/chi/v5"
)

type ChampionHandler struct {
	championService *service.ChampionService
	advisorService  *service.AdvisorService
}

func NewChampionHandler(championService *service.ChampionService, advisorService *service.AdvisorService) *ChampionHandler {
	return &ChampionHandler{
		championService: championService,
		advisorService:  advisorService,
	}
}

type ChampionResponse struct {
	ID       string   `json:"id"`
	Key      int      `json:"key"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	ImageURL string   `json:"imageUrl"`
	Tags     []string `json:"tags"`
}

type ChampionsResponse struct {
	Champions []ChampionResponse `json:"champions"`
	Version   string             `json:"version"`
}

type SyncResponse struct {
	Synced  int    `json:"synced"`
	Version string `json:"version"`
}

type MetaSyncResponse struct {
	Seeded int `json:"seeded"`
}

type CatalogResponse struct {
	Champions []domain.Champion `json:"champions"`
}

func (h *ChampionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.GetAllChampions(r.Context())
	if err != nil {
		log.Printf("ERROR [champion.GetAll]: %v", err)
		http.Error(w, "Failed to get champions", http.StatusInternalServerError)
		return
	}

	version, _ := h.championService.GetLatestVersion()

	resp := ChampionsResponse{
		Champions: make([]ChampionResponse, len(champions)),
		Version:   version,
	}
	for i, c := range champions {
		resp.Champions[i] = toChampionResponse(c)
	}

	writeJSON(w, resp)
}

func (h *ChampionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	champion, err := h.championService.GetChampion(r.Context(), id)
	if err != nil {
		log.Printf("ERROR [champion.Get] championID=%s: %v", id, err)
		http.Error(w, "Champion not found", http.StatusNotFound)
		return
	}

	writeJSON(w, toChampionResponse(champion))
}

func (h *ChampionHandler) Sync(w http.ResponseWriter, r *http.Request) {
	count, version, err := h.championService.SyncFromDataDragon(r.Context())
	if err != nil {
		log.Printf("ERROR [champion.Sync]: %v", err)
		http.Error(w, "Failed to sync champions", http.StatusInternalServerError)
		return
	}

	writeJSON(w, SyncResponse{Synced: count, Version: version})
}

// SyncMeta seeds the meta statistics table and reloads the live provider
// so new stats take effect without a restart.
func (h *ChampionHandler) SyncMeta(w http.ResponseWriter, r *http.Request) {
	count, err := h.championService.SeedMetaStats(r.Context())
	if err != nil {
		log.Printf("ERROR [champion.SyncMeta]: %v", err)
		http.Error(w, "Failed to sync meta stats", http.StatusInternalServerError)
		return
	}

	if err := h.advisorService.RefreshMeta(r.Context()); err != nil {
		log.Printf("ERROR [champion.SyncMeta] refresh: %v", err)
		http.Error(w, "Failed to refresh meta snapshot", http.StatusInternalServerError)
		return
	}

	writeJSON(w, MetaSyncResponse{Seeded: count})
}

// GetCatalog serves the engine's curated catalog, optionally filtered by
// the role query parameter.
func (h *ChampionHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	role := domain.Role(r.URL.Query().Get("role"))

	champions, err := h.advisorService.CatalogChampions(role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			http.Error(w, "Unknown role", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [champion.GetCatalog]: %v", err)
		http.Error(w, "Failed to get catalog", http.StatusInternalServerError)
		return
	}

	writeJSON(w, CatalogResponse{Champions: champions})
}

func (h *ChampionHandler) GetCatalogChampion(w http.ResponseWriter, r *http.Request) {
	key, err := strconv.Atoi(chi.URLParam(r, "key"))
	if err != nil {
		http.Error(w, "Invalid champion key", http.StatusBadRequest)
		return
	}

	champion, err := h.advisorService.CatalogChampion(key)
	if err != nil {
		http.Error(w, "Champion not found", http.StatusNotFound)
		return
	}

	writeJSON(w, champion)
}

func toChampionResponse(c *domain.ChampionRecord) ChampionResponse {
	var tags []string
	json.Unmarshal(c.Tags, &tags)

	return ChampionResponse{
		ID:       c.ID,
		Key:      c.Key,
		Name:     c.Name,
		Title:    c.Title,
		ImageURL: c.ImageURL,
		Tags:     tags,
	}
}
