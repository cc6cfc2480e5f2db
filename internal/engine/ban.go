package engine

import (
	"fmt"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

// BanRecommendations ranks the enemy champions most worth removing from
// the draft: meta powerhouses, threats to the user's role, champions that
// break an allied synergy, and engage the team cannot answer. Only
// champions with a positive threat score are returned, best first.
func (e *Engine) BanRecommendations(snap domain.DraftSnapshot) []domain.Recommendation {
	unavailable := make(map[int]bool)
	for _, id := range snap.AllBans() {
		unavailable[id] = true
	}
	allyIDs := filledIDs(snap.MyTeam)
	for _, id := range allyIDs {
		unavailable[id] = true
	}
	for _, id := range filledIDs(snap.TheirTeam) {
		unavailable[id] = true
	}

	recs := make([]domain.Recommendation, 0, maxBanResults)
	for _, c := range e.kb.All() {
		if unavailable[c.ID] {
			continue
		}

		reasons := []domain.ScoringReason{
			e.evaluateMetaThreat(c),
			e.evaluateRoleThreat(c, snap.UserRole),
			e.evaluateSynergyBreaker(c, allyIDs),
			e.evaluateEngageThreat(c),
		}

		total := 0
		positive := reasons[:0]
		for _, r := range reasons {
			total += r.Score
			if r.Score > 0 {
				positive = append(positive, r)
			}
		}
		if total <= 0 {
			continue
		}
		sortReasons(positive)
		recs = append(recs, domain.Recommendation{
			ChampionID: c.ID,
			Score:      clampScore(total),
			Reasons:    truncateReasons(positive),
		})
	}

	sortRecommendations(recs)
	if len(recs) > maxBanResults {
		recs = recs[:maxBanResults]
	}
	return recs
}

// evaluateMetaThreat measures raw statistical dominance. The description
// reports the first threshold the champion clears.
func (e *Engine) evaluateMetaThreat(c domain.Champion) domain.ScoringReason {
	score := 0
	description := ""
	award := func(bonus int, desc string) {
		score += bonus
		if description == "" {
			description = desc
		}
	}

	if c.Stats.WinRate >= 52 {
		award(15, fmt.Sprintf("%.1f%% win rate - statistically dominant", c.Stats.WinRate))
	}
	if c.Stats.PickRate >= 10 {
		award(10, "Picked in a large share of games")
	}
	if c.Stats.BanRate >= 8 {
		award(10, "Already a respected ban target")
	}
	if e.kb.IsHighPriorityBan(c.ID) {
		award(15, "Flagged as a priority ban this patch")
	}

	return domain.ScoringReason{Category: domain.ReasonProData, Score: score, Description: description}
}

// evaluateRoleThreat measures how much the champion endangers the user's
// own lane.
func (e *Engine) evaluateRoleThreat(c domain.Champion, role domain.Role) domain.ScoringReason {
	if role == "" {
		return domain.ScoringReason{Category: domain.ReasonLaneMatchup}
	}

	score := 0
	description := ""
	if e.kb.IsRoleThreat(role, c.ID) {
		score += 25
		description = fmt.Sprintf("Notorious threat in the %s role", role.DisplayName())
	}
	if c.HasRole(role) && c.Stats.WinRate >= 51 {
		score += 10
		if description == "" {
			description = fmt.Sprintf("Strong %s you may have to lane against", role.DisplayName())
		}
	}

	return domain.ScoringReason{Category: domain.ReasonLaneMatchup, Score: score, Description: description}
}

// evaluateSynergyBreaker flags champions that specifically dismantle a
// combo an already-picked ally depends on.
func (e *Engine) evaluateSynergyBreaker(c domain.Champion, allyIDs []int) domain.ScoringReason {
	for _, allyID := range allyIDs {
		if !e.kb.IsSynergyBreaker(allyID, c.ID) {
			continue
		}
		description := "Shuts down an allied combo"
		if ally, ok := e.kb.ByID(allyID); ok {
			description = fmt.Sprintf("Shuts down %s's game plan", ally.Name)
		}
		return domain.ScoringReason{Category: domain.ReasonSynergy, Score: 30, Description: description}
	}
	return domain.ScoringReason{Category: domain.ReasonSynergy}
}

// evaluateEngageThreat flags hard engage and statistically strong
// frontline the enemy could build a comp around.
func (e *Engine) evaluateEngageThreat(c domain.Champion) domain.ScoringReason {
	score := 0
	description := ""
	if e.kb.IsHardEngage(c.ID) {
		score += 15
		description = "Hard engage that dictates when fights start"
	}
	if e.kb.IsFrontline(c.ID) && c.Stats.WinRate >= 51 {
		score += 10
		if description == "" {
			description = "High win-rate frontline"
		}
	}
	return domain.ScoringReason{Category: domain.ReasonComposition, Score: score, Description: description}
}
