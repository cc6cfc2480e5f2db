package domain

// Archetype is a coarse playstyle tag for a champion
type Archetype string

const (
	ArchetypeTank       Archetype = "Tank"
	ArchetypeFighter    Archetype = "Fighter"
	ArchetypeAssassin   Archetype = "Assassin"
	ArchetypeMage       Archetype = "Mage"
	ArchetypeMarksman   Archetype = "Marksman"
	ArchetypeEnchanter  Archetype = "Enchanter"
	ArchetypeHyperCarry Archetype = "HyperCarry"
	ArchetypeSkirmisher Archetype = "Skirmisher"
	ArchetypeCatcher    Archetype = "Catcher"
	ArchetypeWarden     Archetype = "Warden"
)

// DamageType describes where a champion's damage comes from
type DamageType string

const (
	DamagePhysical DamageType = "Physical"
	DamageMagic    DamageType = "Magic"
	DamageMixed    DamageType = "Mixed"
)

// PowerSpike tags the phase of a match where a champion is strongest
type PowerSpike string

const (
	SpikeEarlyGame    PowerSpike = "EarlyGame"
	SpikeMidGame      PowerSpike = "MidGame"
	SpikeLateGame     PowerSpike = "LateGame"
	SpikeTeamfightGod PowerSpike = "TeamfightGod"
	Spike1v1Beast     PowerSpike = "1v1Beast"
)

// Tier is a coarse meta-strength ranking
type Tier string

const (
	TierSPlus Tier = "S+"
	TierS     Tier = "S"
	TierA     Tier = "A"
	TierB     Tier = "B"
	TierC     Tier = "C"
	TierD     Tier = "D"
)

// SynergyEdge is a positive interaction a champion has with a specific ally
type SynergyEdge struct {
	ChampionID int    `json:"championId"`
	Score      int    `json:"score"` // 0-100
	Reason     string `json:"reason"`
}

// CounterEdge is an advantage a champion has against a specific enemy
type CounterEdge struct {
	ChampionID int    `json:"championId"`
	Score      int    `json:"score"` // 0-100
	Reason     string `json:"reason"`
}

// ChampionStats are aggregate ladder statistics embedded in the catalog.
// They are the fallback when no live meta provider is available.
type ChampionStats struct {
	WinRate    float64 `json:"winRate"`    // 0-100
	PickRate   float64 `json:"pickRate"`   // 0-100
	BanRate    float64 `json:"banRate"`    // 0-100
	Popularity int     `json:"popularity"` // 0-10, coarse
}

// Champion is an immutable catalog entry. The catalog is loaded once at
// startup and never mutated.
type Champion struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Roles       []Role        `json:"roles"`
	Archetypes  []Archetype   `json:"archetypes"`
	DamageType  DamageType    `json:"damageType"`
	PowerSpikes []PowerSpike  `json:"powerSpikes"`
	Synergies   []SynergyEdge `json:"synergies,omitempty"`
	Counters    []CounterEdge `json:"counters,omitempty"`
	Stats       ChampionStats `json:"stats"`
}

// HasRole reports whether the champion can be played in the given role
func (c *Champion) HasRole(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasArchetype reports whether the champion carries the given archetype tag
func (c *Champion) HasArchetype(a Archetype) bool {
	for _, arch := range c.Archetypes {
		if arch == a {
			return true
		}
	}
	return false
}

// HasSpike reports whether the champion carries the given power-spike tag
func (c *Champion) HasSpike(s PowerSpike) bool {
	for _, spike := range c.PowerSpikes {
		if spike == s {
			return true
		}
	}
	return false
}
