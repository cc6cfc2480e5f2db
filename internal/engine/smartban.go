package engine

import (
	"fmt"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

// smartBanMinResults is the fill threshold between scenarios: a later
// scenario only runs while fewer suggestions than this have been
// collected.
const smartBanMinResults = 3

// teammateIntentScale discounts bans protecting a teammate's plan
// relative to the user's own.
const teammateIntentScale = 0.8

// SmartBanRecommendations suggests bans around declared pick intent:
// counters to the user's hovered champion first, then counters to
// teammate hovers, then general meta terrors to fill out the list.
func (e *Engine) SmartBanRecommendations(snap domain.DraftSnapshot) []domain.Recommendation {
	banned := make(map[int]bool)
	for _, id := range snap.AllBans() {
		banned[id] = true
	}

	seen := make(map[int]bool)
	recs := make([]domain.Recommendation, 0, maxBanResults)
	add := func(rec domain.Recommendation) {
		if banned[rec.ChampionID] || seen[rec.ChampionID] {
			return
		}
		seen[rec.ChampionID] = true
		recs = append(recs, rec)
	}

	if snap.UserIntent != nil && snap.UserIntent.ChampionID > 0 {
		for _, rec := range e.intentCounterBans(snap.UserIntent.ChampionID, 1, "") {
			add(rec)
		}
	}

	if len(recs) < smartBanMinResults {
		for _, intent := range snap.TeamIntents {
			if intent.ChampionID <= 0 {
				continue
			}
			for _, rec := range e.intentCounterBans(intent.ChampionID, teammateIntentScale, "Teammate plan: ") {
				add(rec)
			}
		}
	}

	if len(recs) < smartBanMinResults {
		for _, rec := range e.metaTerrorBans() {
			add(rec)
		}
	}

	sortRecommendations(recs)
	if len(recs) > maxBanResults {
		recs = recs[:maxBanResults]
	}
	return recs
}

// intentCounterBans builds ban suggestions protecting one intended pick.
// The counter's lane win rate doubles as the ban score, scaled down for
// teammate intents.
func (e *Engine) intentCounterBans(intentID int, scale float64, prefix string) []domain.Recommendation {
	counters := e.kb.CounterBansFor(intentID)
	recs := make([]domain.Recommendation, 0, len(counters))
	intentName := ""
	if intent, ok := e.kb.ByID(intentID); ok {
		intentName = intent.Name
	}

	for _, cb := range counters {
		description := cb.Reason
		if intentName != "" {
			description = fmt.Sprintf("%sprotects %s: %s", prefix, intentName, cb.Reason)
		} else if prefix != "" {
			description = prefix + cb.Reason
		}
		recs = append(recs, domain.Recommendation{
			ChampionID: cb.ChampionID,
			Score:      clampScore(round(cb.WinRate * scale)),
			Reasons: []domain.ScoringReason{{
				Category:    domain.ReasonCounter,
				Score:       round(cb.WinRate * scale),
				Description: description,
			}},
		})
	}
	return recs
}

// metaTerrorBans fills the list with champions that are simply too strong
// this patch: the curated overpowered list blended with the provider's
// live stats, then the most banned champions overall.
func (e *Engine) metaTerrorBans() []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, maxBanResults)

	for _, op := range e.kb.MetaOPList() {
		score := 70.0
		if e.meta != nil {
			if stats, ok := e.meta.StatsFor(op.ChampionID, ""); ok {
				score = stats.BanRate*0.5 + stats.WinRate*0.3 + stats.PickRate*0.2
			}
		}
		recs = append(recs, domain.Recommendation{
			ChampionID: op.ChampionID,
			Score:      clampScore(round(score)),
			Reasons: []domain.ScoringReason{{
				Category:    domain.ReasonProData,
				Score:       clampScore(round(score)),
				Description: op.Reason,
			}},
		})
	}

	if e.meta != nil {
		for _, stats := range e.meta.TopBanned(10) {
			name := fmt.Sprintf("Champion %d", stats.ChampionID)
			if c, ok := e.kb.ByID(stats.ChampionID); ok {
				name = c.Name
			}
			score := clampScore(round(stats.BanRate + stats.WinRate*0.5))
			recs = append(recs, domain.Recommendation{
				ChampionID: stats.ChampionID,
				Score:      score,
				Reasons: []domain.ScoringReason{{
					Category:    domain.ReasonLiveMeta,
					Score:       score,
					Description: fmt.Sprintf("%s: %s tier, %.1f%% win rate, %.1f%% ban rate", name, stats.Tier, stats.WinRate, stats.BanRate),
				}},
			})
		}
	}

	return recs
}
