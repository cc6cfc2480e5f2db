package service

import (
	"context"
	"fmt"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/engine"
	"github.com/kaanyalova/draft-advisor/internal/knowledge"
	"github.com/kaanyalova/draft-advisor/internal/meta"
)

// MetaRefresher is implemented by providers that can reload their snapshot
// from storage; the static provider simply is not one.
type MetaRefresher interface {
	Refresh(ctx context.Context) error
}

// AdvisorService is the draft-facing API over the recommendation engines.
// It owns the knowledge base and the engine; handlers and the websocket
// hub only ever talk to this service.
type AdvisorService struct {
	kb        *knowledge.Base
	engine    *engine.Engine
	refresher MetaRefresher // nil when the provider is static
}

func NewAdvisorService(kb *knowledge.Base, provider meta.Provider) *AdvisorService {
	s := &AdvisorService{
		kb:     kb,
		engine: engine.New(kb, provider),
	}
	if r, ok := provider.(MetaRefresher); ok {
		s.refresher = r
	}
	return s
}

// PickSuggestions returns the best champions to pick for the given draft
// state, strongest first.
func (s *AdvisorService) PickSuggestions(ctx context.Context, snap domain.DraftSnapshot) ([]domain.Recommendation, error) {
	recs, err := s.engine.PickRecommendations(snap)
	if err != nil {
		return nil, fmt.Errorf("pick recommendations: %w", err)
	}
	return recs, nil
}

// BanSuggestions returns the biggest threats worth removing from the draft.
func (s *AdvisorService) BanSuggestions(ctx context.Context, snap domain.DraftSnapshot) ([]domain.Recommendation, error) {
	if !snap.Phase.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPhase, snap.Phase)
	}
	return s.engine.BanRecommendations(snap), nil
}

// SmartBanSuggestions returns bans protecting the declared pick intents.
func (s *AdvisorService) SmartBanSuggestions(ctx context.Context, snap domain.DraftSnapshot) ([]domain.Recommendation, error) {
	if !snap.Phase.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPhase, snap.Phase)
	}
	return s.engine.SmartBanRecommendations(snap), nil
}

// CatalogChampions lists the engine's champion catalog, optionally
// filtered by role.
func (s *AdvisorService) CatalogChampions(role domain.Role) ([]domain.Champion, error) {
	if role == "" {
		return s.kb.All(), nil
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	eligible := s.kb.ByRole(role)
	out := make([]domain.Champion, 0, len(eligible))
	for _, c := range eligible {
		out = append(out, *c)
	}
	return out, nil
}

// CatalogChampion looks up one catalog entry by engine id.
func (s *AdvisorService) CatalogChampion(id int) (domain.Champion, error) {
	c, ok := s.kb.ByID(id)
	if !ok {
		return domain.Champion{}, fmt.Errorf("%w: %d", domain.ErrChampionNotFound, id)
	}
	return *c, nil
}

// RefreshMeta reloads the live meta snapshot from storage. A static
// provider makes this a no-op.
func (s *AdvisorService) RefreshMeta(ctx context.Context) error {
	if s.refresher == nil {
		return nil
	}
	return s.refresher.Refresh(ctx)
}
