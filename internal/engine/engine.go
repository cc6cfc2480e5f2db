package engine

import (
	"math"
	"sort"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/knowledge"
	"github.com/kaanyalova/draft-advisor/internal/meta"
)

const (
	maxPickResults   = 6
	maxBanResults    = 5
	maxReasonsShown  = 4
	laneCounteredPen = 10
)

// Engine scores draft candidates against an immutable knowledge base and an
// optional live meta provider. Every method is a pure function of its
// inputs: the engine holds no draft state and performs no I/O.
type Engine struct {
	kb   *knowledge.Base
	meta meta.Provider // nil disables the live meta rule
}

// New builds an engine. The meta provider may be nil; the engine then
// relies on the catalog's embedded statistics only.
func New(kb *knowledge.Base, provider meta.Provider) *Engine {
	return &Engine{kb: kb, meta: provider}
}

// filledIDs extracts the champion ids of occupied slots
func filledIDs(team []domain.TeamSlot) []int {
	ids := make([]int, 0, len(team))
	for _, slot := range team {
		if slot.ChampionID > 0 {
			ids = append(ids, slot.ChampionID)
		}
	}
	return ids
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func round(f float64) int {
	return int(math.Round(f))
}

// sortRecommendations orders by score descending, breaking ties by champion
// id ascending so equal inputs always produce the same order.
func sortRecommendations(recs []domain.Recommendation) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].ChampionID < recs[j].ChampionID
	})
}

// sortReasons orders reasons by score descending, preserving rule order on
// ties (SliceStable keeps the aggregation order deterministic).
func sortReasons(reasons []domain.ScoringReason) {
	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Score > reasons[j].Score
	})
}

func truncateReasons(reasons []domain.ScoringReason) []domain.ScoringReason {
	if len(reasons) > maxReasonsShown {
		return reasons[:maxReasonsShown]
	}
	return reasons
}
