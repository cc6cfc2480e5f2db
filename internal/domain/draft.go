package domain

// DraftPhase is the phase value reported by the game client. The advisor
// never advances phases itself, it only reacts to the value it is handed.
type DraftPhase string

const (
	PhaseNone         DraftPhase = "none"
	PhasePlanning     DraftPhase = "planning"
	PhaseBanning      DraftPhase = "banning"
	PhasePicking      DraftPhase = "picking"
	PhaseFinalization DraftPhase = "finalization"
)

// IsValid checks if a phase is one of the defined draft phases
func (p DraftPhase) IsValid() bool {
	switch p {
	case PhaseNone, PhasePlanning, PhaseBanning, PhasePicking, PhaseFinalization:
		return true
	}
	return false
}

// TeamSlot is one position in a 5-member roster. ChampionID 0 means the
// slot is still unfilled.
type TeamSlot struct {
	Role       Role `json:"role"`
	ChampionID int  `json:"championId"`
	IsSelf     bool `json:"isSelf"` // at most one slot per draft
}

// IntentSource distinguishes a self-declared pick intent from one the
// connector inferred (e.g. from hover state).
type IntentSource string

const (
	IntentDeclared IntentSource = "declared"
	IntentInferred IntentSource = "inferred"
)

// PickIntent is a signal that a player plans to select a specific champion
type PickIntent struct {
	ChampionID int          `json:"championId"`
	Source     IntentSource `json:"source"`
}

// DraftSnapshot is an immutable view of the draft handed to the advisor on
// every state change. The advisor never mutates it; a new snapshot replaces
// the previous one wholesale.
type DraftSnapshot struct {
	Phase         DraftPhase   `json:"phase"`
	MyTeam        []TeamSlot   `json:"myTeam"`
	TheirTeam     []TeamSlot   `json:"theirTeam"`
	MyTeamBans    []int        `json:"myTeamBans"`
	TheirTeamBans []int        `json:"theirTeamBans"`
	UserRole      Role         `json:"userRole,omitempty"` // empty = unknown
	UserIntent    *PickIntent  `json:"userIntent,omitempty"`
	TeamIntents   []PickIntent `json:"teamIntents,omitempty"`
}

// AllBans returns the union of both teams' ban lists
func (s *DraftSnapshot) AllBans() []int {
	bans := make([]int, 0, len(s.MyTeamBans)+len(s.TheirTeamBans))
	bans = append(bans, s.MyTeamBans...)
	bans = append(bans, s.TheirTeamBans...)
	return bans
}

// AllyPickedIDs returns the champion ids already locked on the user's team
func (s *DraftSnapshot) AllyPickedIDs() []int {
	ids := make([]int, 0, len(s.MyTeam))
	for _, slot := range s.MyTeam {
		if slot.ChampionID > 0 {
			ids = append(ids, slot.ChampionID)
		}
	}
	return ids
}
