package knowledge

import (
	"fmt"
	"sort"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

// Combo is a named group of champions whose joint presence on one team
// unlocks an outsized synergy bonus.
type Combo struct {
	Name        string
	Description string
	Champions   []int
	Score       int // 0-100
	Timing      string
}

// ProStats are pro-play and high-elo statistics for one champion
type ProStats struct {
	ChampionID    int
	Role          domain.Role
	Tier          domain.Tier
	WinRate       float64 // high elo, 0-100
	PickRate      float64
	BanRate       float64
	ProPickRate   float64
	ProBanRate    float64
	BlindPickSafe bool
}

// CounterBan is a precomputed ban suggestion against a declared pick intent
type CounterBan struct {
	ChampionID int
	WinRate    float64 // matchup win rate of the counter, doubles as score
	Reason     string
}

// MetaOPEntry is a curated always-worth-banning champion
type MetaOPEntry struct {
	ChampionID int
	Reason     string
}

// Dataset is the raw, declarative form of the knowledge base. All the
// built-in tables live in this package; tests may construct smaller ones.
type Dataset struct {
	Champions []domain.Champion

	// Pairwise edges, keyed by the owning champion id
	Synergies map[int][]domain.SynergyEdge
	Counters  map[int][]domain.CounterEdge

	// LaneMatchups[role][victim] lists the champions that beat victim in
	// that role's lane, with matchup strength and reason.
	LaneMatchups map[domain.Role]map[int][]domain.CounterEdge

	Combos []Combo

	// Team-composition capability lists
	HardEngage []int
	Divers     []int
	Peel       []int
	Frontline  []int
	Knockup    []int // champions with displacement or knock-up

	ProStats []ProStats

	// Ban heuristics
	HighPriorityBans []int
	RoleThreats      map[domain.Role][]int
	SynergyBreakers  map[int][]int // ally id -> champions that ruin its game plan
	CounterBans      map[int][]CounterBan
	MetaOP           []MetaOPEntry
}

// Base is the loaded, indexed knowledge base. It is immutable after New
// returns and safe for concurrent readers.
type Base struct {
	champions []domain.Champion // sorted by id
	byID      map[int]*domain.Champion
	byRole    map[domain.Role][]*domain.Champion

	synergies    map[int][]domain.SynergyEdge
	counters     map[int][]domain.CounterEdge
	laneMatchups map[domain.Role]map[int][]domain.CounterEdge

	combosByChampion map[int][]Combo

	hardEngage map[int]bool
	divers     map[int]bool
	peel       map[int]bool
	frontline  map[int]bool
	knockup    map[int]bool

	proStats map[int]ProStats

	highPriorityBans map[int]bool
	roleThreats      map[domain.Role]map[int]bool
	synergyBreakers  map[int][]int
	counterBans      map[int][]CounterBan
	metaOP           []MetaOPEntry
}

// New indexes and validates a dataset. Every champion id referenced by any
// table must exist in the catalog; a dangling id is a load-time error, not
// a silent zero at scoring time.
func New(ds Dataset) (*Base, error) {
	b := &Base{
		champions:        make([]domain.Champion, len(ds.Champions)),
		byID:             make(map[int]*domain.Champion, len(ds.Champions)),
		byRole:           make(map[domain.Role][]*domain.Champion),
		synergies:        ds.Synergies,
		counters:         ds.Counters,
		laneMatchups:     ds.LaneMatchups,
		combosByChampion: make(map[int][]Combo),
		hardEngage:       idSet(ds.HardEngage),
		divers:           idSet(ds.Divers),
		peel:             idSet(ds.Peel),
		frontline:        idSet(ds.Frontline),
		knockup:          idSet(ds.Knockup),
		proStats:         make(map[int]ProStats, len(ds.ProStats)),
		highPriorityBans: idSet(ds.HighPriorityBans),
		roleThreats:      make(map[domain.Role]map[int]bool),
		synergyBreakers:  ds.SynergyBreakers,
		counterBans:      ds.CounterBans,
		metaOP:           ds.MetaOP,
	}

	copy(b.champions, ds.Champions)
	sort.Slice(b.champions, func(i, j int) bool { return b.champions[i].ID < b.champions[j].ID })

	for i := range b.champions {
		c := &b.champions[i]
		if c.ID <= 0 {
			return nil, fmt.Errorf("champion %q: non-positive id %d", c.Name, c.ID)
		}
		if _, dup := b.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate champion id %d", c.ID)
		}
		if len(c.Roles) == 0 {
			return nil, fmt.Errorf("champion %s (%d): no eligible roles", c.Name, c.ID)
		}
		b.byID[c.ID] = c
		for _, role := range c.Roles {
			if !role.IsValid() {
				return nil, fmt.Errorf("champion %s (%d): %w: %q", c.Name, c.ID, domain.ErrInvalidRole, role)
			}
			b.byRole[role] = append(b.byRole[role], c)
		}
	}

	for _, stats := range ds.ProStats {
		b.proStats[stats.ChampionID] = stats
	}
	for i := range ds.Combos {
		for _, id := range ds.Combos[i].Champions {
			b.combosByChampion[id] = append(b.combosByChampion[id], ds.Combos[i])
		}
	}
	for role, ids := range ds.RoleThreats {
		b.roleThreats[role] = idSet(ids)
	}

	if err := b.validateRefs(ds); err != nil {
		return nil, err
	}
	return b, nil
}

// Default loads the built-in knowledge base
func Default() (*Base, error) {
	return New(defaultDataset())
}

func (b *Base) validateRefs(ds Dataset) error {
	check := func(table string, id int) error {
		if _, ok := b.byID[id]; !ok {
			return fmt.Errorf("%s references unknown champion id %d", table, id)
		}
		return nil
	}

	for i := range b.champions {
		c := &b.champions[i]
		for _, edge := range c.Synergies {
			if err := check(fmt.Sprintf("champion %d synergies", c.ID), edge.ChampionID); err != nil {
				return err
			}
		}
		for _, edge := range c.Counters {
			if err := check(fmt.Sprintf("champion %d counters", c.ID), edge.ChampionID); err != nil {
				return err
			}
		}
	}
	for owner, edges := range ds.Synergies {
		if err := check("synergy table", owner); err != nil {
			return err
		}
		for _, e := range edges {
			if err := check("synergy table", e.ChampionID); err != nil {
				return err
			}
		}
	}
	for owner, edges := range ds.Counters {
		if err := check("counter table", owner); err != nil {
			return err
		}
		for _, e := range edges {
			if err := check("counter table", e.ChampionID); err != nil {
				return err
			}
		}
	}
	for role, table := range ds.LaneMatchups {
		for victim, counters := range table {
			if err := check(fmt.Sprintf("%s matchups", role), victim); err != nil {
				return err
			}
			for _, e := range counters {
				if err := check(fmt.Sprintf("%s matchups", role), e.ChampionID); err != nil {
					return err
				}
			}
		}
	}
	for _, combo := range ds.Combos {
		for _, id := range combo.Champions {
			if err := check(fmt.Sprintf("combo %q", combo.Name), id); err != nil {
				return err
			}
		}
	}
	for _, lists := range [][]int{ds.HardEngage, ds.Divers, ds.Peel, ds.Frontline, ds.Knockup, ds.HighPriorityBans} {
		for _, id := range lists {
			if err := check("capability list", id); err != nil {
				return err
			}
		}
	}
	for _, stats := range ds.ProStats {
		if err := check("pro stats", stats.ChampionID); err != nil {
			return err
		}
	}
	for role, ids := range ds.RoleThreats {
		for _, id := range ids {
			if err := check(fmt.Sprintf("%s threats", role), id); err != nil {
				return err
			}
		}
	}
	for ally, breakers := range ds.SynergyBreakers {
		if err := check("synergy breakers", ally); err != nil {
			return err
		}
		for _, id := range breakers {
			if err := check("synergy breakers", id); err != nil {
				return err
			}
		}
	}
	for intent, bans := range ds.CounterBans {
		if err := check("counter bans", intent); err != nil {
			return err
		}
		for _, ban := range bans {
			if err := check("counter bans", ban.ChampionID); err != nil {
				return err
			}
		}
	}
	for _, op := range ds.MetaOP {
		if err := check("meta OP list", op.ChampionID); err != nil {
			return err
		}
	}
	return nil
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// All returns every champion, sorted by id
func (b *Base) All() []domain.Champion {
	return b.champions
}

// ByID looks up a champion by its numeric id
func (b *Base) ByID(id int) (*domain.Champion, bool) {
	c, ok := b.byID[id]
	return c, ok
}

// ByRole returns all champions eligible for a role
func (b *Base) ByRole(role domain.Role) []*domain.Champion {
	return b.byRole[role]
}

// SynergiesFor returns the synergy edges owned by a champion in the
// pairwise table. The champion's own embedded list is separate.
func (b *Base) SynergiesFor(id int) []domain.SynergyEdge {
	return b.synergies[id]
}

// CountersFor returns the counter edges owned by a champion
func (b *Base) CountersFor(id int) []domain.CounterEdge {
	return b.counters[id]
}

// LaneCounter reports whether attacker beats victim in the given role's
// lane, and with what strength.
func (b *Base) LaneCounter(role domain.Role, attacker, victim int) (domain.CounterEdge, bool) {
	table, ok := b.laneMatchups[role]
	if !ok {
		return domain.CounterEdge{}, false
	}
	for _, edge := range table[victim] {
		if edge.ChampionID == attacker {
			return edge, true
		}
	}
	return domain.CounterEdge{}, false
}

// CombosFor returns every combo that includes the champion
func (b *Base) CombosFor(id int) []Combo {
	return b.combosByChampion[id]
}

// ProStatsFor returns pro-play statistics, if curated for this champion
func (b *Base) ProStatsFor(id int) (ProStats, bool) {
	s, ok := b.proStats[id]
	return s, ok
}

// Capability predicates

func (b *Base) IsHardEngage(id int) bool { return b.hardEngage[id] }
func (b *Base) IsDiver(id int) bool      { return b.divers[id] }
func (b *Base) IsPeel(id int) bool       { return b.peel[id] }
func (b *Base) IsFrontline(id int) bool  { return b.frontline[id] }
func (b *Base) IsKnockup(id int) bool    { return b.knockup[id] }

// KnockupCount counts how many of the given champions can set up airborne
// followups
func (b *Base) KnockupCount(ids []int) int {
	n := 0
	for _, id := range ids {
		if b.knockup[id] {
			n++
		}
	}
	return n
}

// TeamNeedsEngage reports whether no picked champion can start a fight
func (b *Base) TeamNeedsEngage(teamIDs []int) bool {
	for _, id := range teamIDs {
		if b.hardEngage[id] {
			return false
		}
	}
	return true
}

// TeamNeedsFrontline reports whether the team has no damage soaker
func (b *Base) TeamNeedsFrontline(teamIDs []int) bool {
	for _, id := range teamIDs {
		if b.frontline[id] {
			return false
		}
	}
	return true
}

// TeamNeedsPeel reports whether nobody on the team can protect a carry
func (b *Base) TeamNeedsPeel(teamIDs []int) bool {
	for _, id := range teamIDs {
		if b.peel[id] {
			return false
		}
	}
	return true
}

// IsHighPriorityBan reports whether the champion is on the curated
// always-dangerous list
func (b *Base) IsHighPriorityBan(id int) bool {
	return b.highPriorityBans[id]
}

// IsRoleThreat reports whether the champion is curated as dangerous to lane
// against in the given role
func (b *Base) IsRoleThreat(role domain.Role, id int) bool {
	return b.roleThreats[role][id]
}

// IsSynergyBreaker reports whether candidate ruins the game plan of an
// already-picked ally
func (b *Base) IsSynergyBreaker(allyID, candidateID int) bool {
	for _, id := range b.synergyBreakers[allyID] {
		if id == candidateID {
			return true
		}
	}
	return false
}

// CounterBansFor returns the precomputed counter-ban list for a pick intent
func (b *Base) CounterBansFor(intentID int) []CounterBan {
	return b.counterBans[intentID]
}

// MetaOPList returns the curated list of ban-worthy meta champions
func (b *Base) MetaOPList() []MetaOPEntry {
	return b.metaOP
}
