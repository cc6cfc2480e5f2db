package engine

import (
	"fmt"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

// PickRecommendations scores every available champion against the current
// draft and returns the strongest candidates, best first. Outside an
// active draft phase the result is empty; an unrecognized phase is an
// error.
func (e *Engine) PickRecommendations(snap domain.DraftSnapshot) ([]domain.Recommendation, error) {
	if !snap.Phase.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPhase, snap.Phase)
	}
	if snap.Phase == domain.PhaseNone {
		return []domain.Recommendation{}, nil
	}

	unavailable := make(map[int]bool)
	for _, id := range snap.AllBans() {
		unavailable[id] = true
	}
	for _, id := range filledIDs(snap.MyTeam) {
		unavailable[id] = true
	}
	for _, id := range filledIDs(snap.TheirTeam) {
		unavailable[id] = true
	}

	recs := make([]domain.Recommendation, 0, maxPickResults)
	for _, c := range e.kb.All() {
		if unavailable[c.ID] {
			continue
		}
		if snap.UserRole != "" && !c.HasRole(snap.UserRole) {
			continue
		}
		recs = append(recs, e.scoreChampion(c, snap.MyTeam, snap.TheirTeam, snap.UserRole))
	}

	sortRecommendations(recs)
	if len(recs) > maxPickResults {
		recs = recs[:maxPickResults]
	}
	return recs, nil
}
