package meta

import (
	"sort"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

// Stats is a live meta snapshot for one champion, optionally role-scoped
type Stats struct {
	ChampionID int         `json:"championId"`
	Role       domain.Role `json:"role,omitempty"`
	Tier       domain.Tier `json:"tier"`
	WinRate    float64     `json:"winRate"`
	PickRate   float64     `json:"pickRate"`
	BanRate    float64     `json:"banRate"`
	Patch      string      `json:"patch"`
}

// Provider serves refreshed meta statistics to the engines. Implementations
// must be fully loaded before the engine runs: no call performs I/O.
type Provider interface {
	// StatsFor returns stats for a champion, preferring the given role's
	// entry when role is non-empty.
	StatsFor(championID int, role domain.Role) (Stats, bool)
	// TopBanned returns the n most banned champions, descending
	TopBanned(n int) []Stats
	// TopWinRate returns the n highest win-rate champions, optionally
	// scoped to a role
	TopWinRate(role domain.Role, n int) []Stats
}

// snapshot is the shared in-memory implementation behind both the static
// and the store-backed providers.
type snapshot struct {
	byChampion map[int][]Stats
	all        []Stats
}

func newSnapshot(entries []Stats) *snapshot {
	s := &snapshot{
		byChampion: make(map[int][]Stats),
		all:        make([]Stats, len(entries)),
	}
	copy(s.all, entries)
	for _, e := range entries {
		s.byChampion[e.ChampionID] = append(s.byChampion[e.ChampionID], e)
	}
	return s
}

func (s *snapshot) StatsFor(championID int, role domain.Role) (Stats, bool) {
	entries := s.byChampion[championID]
	if len(entries) == 0 {
		return Stats{}, false
	}
	if role != "" {
		for _, e := range entries {
			if e.Role == role {
				return e, true
			}
		}
	}
	return entries[0], true
}

func (s *snapshot) TopBanned(n int) []Stats {
	out := make([]Stats, len(s.all))
	copy(out, s.all)
	sort.Slice(out, func(i, j int) bool {
		if out[i].BanRate != out[j].BanRate {
			return out[i].BanRate > out[j].BanRate
		}
		return out[i].ChampionID < out[j].ChampionID
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

func (s *snapshot) TopWinRate(role domain.Role, n int) []Stats {
	out := make([]Stats, 0, len(s.all))
	for _, e := range s.all {
		if role == "" || e.Role == role {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		return out[i].ChampionID < out[j].ChampionID
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
