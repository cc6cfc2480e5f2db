package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/knowledge"
	"github.com/kaanyalova/draft-advisor/internal/meta"
)

// Test champion ids. 157 keeps its real id because the engine special-cases
// Yasuo's airborne interactions.
const (
	malthar = 10 // top tank, hard engage, frontline, knockup
	vexa    = 11 // mid mage, dominant stats, high-priority ban
	dran    = 12 // ADC hypercarry, late game
	lum     = 13 // enchanter support, peel
	kess    = 14 // assassin jungler, early 1v1
	bram    = 15 // tank support, frontline, knockup
	ryn     = 16 // physical mid skirmisher
	shade   = 18 // assassin mid with curated pro stats
	morr    = 19 // control mage mid, lane bully
	yasuo   = 157
)

func testDataset() knowledge.Dataset {
	return knowledge.Dataset{
		Champions: []domain.Champion{
			{
				ID: malthar, Name: "Malthar", Roles: []domain.Role{domain.RoleTop},
				Archetypes:  []domain.Archetype{domain.ArchetypeTank, domain.ArchetypeWarden},
				DamageType:  domain.DamageMagic,
				PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
				Stats:       domain.ChampionStats{WinRate: 50.5, PickRate: 4.0, BanRate: 2.0, Popularity: 5},
			},
			{
				ID: vexa, Name: "Vexa", Roles: []domain.Role{domain.RoleMid},
				Archetypes:  []domain.Archetype{domain.ArchetypeMage},
				DamageType:  domain.DamageMagic,
				PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame},
				Stats:       domain.ChampionStats{WinRate: 53.5, PickRate: 12.0, BanRate: 9.0, Popularity: 8},
			},
			{
				ID: dran, Name: "Dran", Roles: []domain.Role{domain.RoleADC},
				Archetypes:  []domain.Archetype{domain.ArchetypeMarksman, domain.ArchetypeHyperCarry},
				DamageType:  domain.DamagePhysical,
				PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame},
				Stats:       domain.ChampionStats{WinRate: 50.0, PickRate: 8.0, BanRate: 3.0, Popularity: 6},
			},
			{
				ID: lum, Name: "Lum", Roles: []domain.Role{domain.RoleSupport},
				Archetypes:  []domain.Archetype{domain.ArchetypeEnchanter},
				DamageType:  domain.DamageMagic,
				PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
				Stats:       domain.ChampionStats{WinRate: 49.5, PickRate: 5.0, BanRate: 1.0, Popularity: 4},
			},
			{
				ID: kess, Name: "Kess", Roles: []domain.Role{domain.RoleJungle},
				Archetypes:  []domain.Archetype{domain.ArchetypeAssassin},
				DamageType:  domain.DamagePhysical,
				PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.Spike1v1Beast},
				Stats:       domain.ChampionStats{WinRate: 50.8, PickRate: 6.0, BanRate: 4.0, Popularity: 6},
			},
			{
				ID: bram, Name: "Bram", Roles: []domain.Role{domain.RoleSupport},
				Archetypes:  []domain.Archetype{domain.ArchetypeTank, domain.ArchetypeCatcher},
				DamageType:  domain.DamageMagic,
				PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
				Stats:       domain.ChampionStats{WinRate: 51.5, PickRate: 5.5, BanRate: 2.5, Popularity: 5},
			},
			{
				ID: ryn, Name: "Ryn", Roles: []domain.Role{domain.RoleMid},
				Archetypes:  []domain.Archetype{domain.ArchetypeSkirmisher},
				DamageType:  domain.DamagePhysical,
				PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.Spike1v1Beast},
				Stats:       domain.ChampionStats{WinRate: 49.0, PickRate: 3.0, BanRate: 1.0, Popularity: 3},
			},
			{
				ID: shade, Name: "Shade", Roles: []domain.Role{domain.RoleMid},
				Archetypes:  []domain.Archetype{domain.ArchetypeAssassin},
				DamageType:  domain.DamagePhysical,
				PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
				Stats:       domain.ChampionStats{WinRate: 50.2, PickRate: 9.0, BanRate: 11.0, Popularity: 9},
			},
			{
				ID: morr, Name: "Morr", Roles: []domain.Role{domain.RoleMid},
				Archetypes:  []domain.Archetype{domain.ArchetypeMage},
				DamageType:  domain.DamageMagic,
				PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
				Stats:       domain.ChampionStats{WinRate: 50.1, PickRate: 4.5, BanRate: 2.0, Popularity: 4},
			},
			{
				ID: yasuo, Name: "Yasuo", Roles: []domain.Role{domain.RoleMid, domain.RoleTop},
				Archetypes:  []domain.Archetype{domain.ArchetypeSkirmisher},
				DamageType:  domain.DamagePhysical,
				PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.Spike1v1Beast},
				Stats:       domain.ChampionStats{WinRate: 49.8, PickRate: 15.0, BanRate: 22.0, Popularity: 10},
			},
		},
		Synergies: map[int][]domain.SynergyEdge{
			dran: {{ChampionID: lum, Score: 40, Reason: "Lum keeps Dran alive through skirmishes"}},
			lum:  {{ChampionID: dran, Score: 40, Reason: "Dran converts Lum's shields into damage uptime"}},
		},
		Counters: map[int][]domain.CounterEdge{
			vexa: {{ChampionID: shade, Score: 70, Reason: "Outranges Shade and punishes roam timers"}},
		},
		LaneMatchups: map[domain.Role]map[int][]domain.CounterEdge{
			domain.RoleMid: {
				shade: {{ChampionID: vexa, Score: 60, Reason: "Shoves Shade under tower all game"}},
				vexa:  {{ChampionID: morr, Score: 50, Reason: "Spell shield blanks Vexa's pick pattern"}},
			},
		},
		Combos: []knowledge.Combo{
			{
				Name: "Gravity Slam", Description: "Knockup into guaranteed carry follow-up",
				Champions: []int{malthar, dran}, Score: 100, Timing: "Teamfights",
			},
			{
				Name: "Chain Storm", Description: "Layered crowd control into area burst",
				Champions: []int{malthar, bram, vexa}, Score: 90, Timing: "Mid game",
			},
		},
		HardEngage: []int{malthar},
		Divers:     []int{kess},
		Peel:       []int{lum},
		Frontline:  []int{malthar, bram},
		Knockup:    []int{malthar, bram},
		ProStats: []knowledge.ProStats{
			{
				ChampionID: shade, Role: domain.RoleMid, Tier: domain.TierS,
				WinRate: 54.0, PickRate: 9.0, BanRate: 11.0,
				ProPickRate: 32.0, BlindPickSafe: true,
			},
		},
		HighPriorityBans: []int{vexa},
		RoleThreats: map[domain.Role][]int{
			domain.RoleMid: {shade},
		},
		SynergyBreakers: map[int][]int{
			dran: {kess},
		},
		CounterBans: map[int][]knowledge.CounterBan{
			yasuo: {
				{ChampionID: morr, WinRate: 54.2, Reason: "Bullies him before his core item"},
				{ChampionID: kess, WinRate: 52.0, Reason: "Snowballs the lane with early ganks"},
			},
			dran: {
				{ChampionID: shade, WinRate: 51.0, Reason: "Deletes him the moment he steps up"},
			},
		},
		MetaOP: []knowledge.MetaOPEntry{
			{ChampionID: vexa, Reason: "Overloaded kit on the current patch"},
		},
	}
}

func newTestBase(t *testing.T) *knowledge.Base {
	t.Helper()
	kb, err := knowledge.New(testDataset())
	require.NoError(t, err)
	return kb
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(newTestBase(t), nil)
}

func newTestEngineWithMeta(t *testing.T, entries []meta.Stats) *Engine {
	t.Helper()
	return New(newTestBase(t), meta.NewProviderFromStats(entries))
}

func slot(role domain.Role, championID int) domain.TeamSlot {
	return domain.TeamSlot{Role: role, ChampionID: championID}
}
