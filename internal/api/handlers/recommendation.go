package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/service"
)

type RecommendationHandler struct {
	advisorService *service.AdvisorService
}

func NewRecommendationHandler(advisorService *service.AdvisorService) *RecommendationHandler {
	return &RecommendationHandler{advisorService: advisorService}
}

type RecommendationsResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

func (h *RecommendationHandler) decodeSnapshot(w http.ResponseWriter, r *http.Request) (domain.DraftSnapshot, bool) {
	var snap domain.DraftSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		http.Error(w, "Invalid draft snapshot", http.StatusBadRequest)
		return snap, false
	}
	if snap.Phase == "" {
		snap.Phase = domain.PhaseNone
	}
	return snap, true
}

func (h *RecommendationHandler) Picks(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}

	recs, err := h.advisorService.PickSuggestions(r.Context(), snap)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPhase) {
			http.Error(w, "Unknown draft phase", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [recommendation.Picks]: %v", err)
		http.Error(w, "Failed to compute pick recommendations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, RecommendationsResponse{Recommendations: recs})
}

func (h *RecommendationHandler) Bans(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}

	recs, err := h.advisorService.BanSuggestions(r.Context(), snap)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPhase) {
			http.Error(w, "Unknown draft phase", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [recommendation.Bans]: %v", err)
		http.Error(w, "Failed to compute ban recommendations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, RecommendationsResponse{Recommendations: recs})
}

func (h *RecommendationHandler) SmartBans(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}

	recs, err := h.advisorService.SmartBanSuggestions(r.Context(), snap)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPhase) {
			http.Error(w, "Unknown draft phase", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [recommendation.SmartBans]: %v", err)
		http.Error(w, "Failed to compute smart bans", http.StatusInternalServerError)
		return
	}

	writeJSON(w, RecommendationsResponse{Recommendations: recs})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
