package domain

// ReasonCategory identifies which scoring rule produced a reason
type ReasonCategory string

const (
	ReasonComposition ReasonCategory = "composition"
	ReasonSynergy     ReasonCategory = "synergy"
	ReasonCounter     ReasonCategory = "counter"
	ReasonPowerSpike  ReasonCategory = "powerSpike"
	ReasonProData     ReasonCategory = "proData"
	ReasonWomboCombo  ReasonCategory = "womboCombo"
	ReasonLaneMatchup ReasonCategory = "laneMatchup"
	ReasonLiveMeta    ReasonCategory = "liveMeta"
)

// ScoringReason is one rule's contribution to a recommendation. Score is
// never negative in the surfaced result.
type ScoringReason struct {
	Category    ReasonCategory `json:"category"`
	Score       int            `json:"score"`
	Description string         `json:"description"`
}

// Recommendation is a single ranked suggestion. Score is clamped to [0,100]
// and Reasons holds at most the four highest-scoring justifications.
type Recommendation struct {
	ChampionID int             `json:"championId"`
	Score      int             `json:"score"`
	Reasons    []ScoringReason `json:"reasons"`
}
