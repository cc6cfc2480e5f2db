package knowledge

import "github.com/kaanyalova/draft-advisor/internal/domain"

// catalogChampions is the built-in champion catalog, curated for the
// current patch from high elo and pro play data. Ids are Riot numeric keys.
func catalogChampions() []domain.Champion {
	return []domain.Champion{
		{
			ID: 266, Name: "Aatrox",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.2, PickRate: 12.5, BanRate: 18.3, Popularity: 8},
		},
		{
			ID: 122, Name: "Darius",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 51.5, PickRate: 8.5, BanRate: 12.0, Popularity: 8},
		},
		{
			ID: 24, Name: "Jax",
			Roles:       []domain.Role{domain.RoleTop, domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeSkirmisher},
			DamageType:  domain.DamageMixed,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 51.0, PickRate: 7.2, BanRate: 9.5, Popularity: 7},
		},
		{
			ID: 114, Name: "Fiora",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeSkirmisher},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 50.8, PickRate: 6.8, BanRate: 10.2, Popularity: 7},
		},
		{
			ID: 39, Name: "Irelia",
			Roles:       []domain.Role{domain.RoleTop, domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeSkirmisher},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 49.5, PickRate: 7.5, BanRate: 11.0, Popularity: 7},
		},
		{
			ID: 92, Name: "Riven",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 50.2, PickRate: 5.5, BanRate: 6.0, Popularity: 6},
		},
		{
			ID: 86, Name: "Garen",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeTank},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Stats:       domain.ChampionStats{WinRate: 51.8, PickRate: 6.0, BanRate: 3.5, Popularity: 6},
		},
		{
			ID: 164, Name: "Camille",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 50.8, PickRate: 8.2, BanRate: 12.1, Popularity: 7},
		},
		{
			ID: 54, Name: "Malphite",
			Roles:       []domain.Role{domain.RoleTop, domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 52.3, PickRate: 6.5, BanRate: 8.0, Popularity: 6},
		},
		{
			ID: 17, Name: "Teemo",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
			Counters: []domain.CounterEdge{
				{ChampionID: 122, Score: 85, Reason: "Blind denies Noxian Might trades"},
				{ChampionID: 86, Score: 80, Reason: "Kite and poke beat the silence all-in"},
			},
			Stats:       domain.ChampionStats{WinRate: 50.5, PickRate: 4.5, BanRate: 7.0, Popularity: 5},
		},
		{
			ID: 85, Name: "Kennen",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.9, PickRate: 3.2, BanRate: 2.0, Popularity: 4},
		},
		{
			ID: 150, Name: "Gnar",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeTank},
			DamageType:  domain.DamageMixed,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.1, PickRate: 4.0, BanRate: 2.5, Popularity: 5},
		},
		{
			ID: 58, Name: "Renekton",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
			Stats:       domain.ChampionStats{WinRate: 49.8, PickRate: 6.5, BanRate: 5.0, Popularity: 6},
		},
		{
			ID: 78, Name: "Poppy",
			Roles:       []domain.Role{domain.RoleTop, domain.RoleJungle, domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank, domain.ArchetypeWarden},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Stats:       domain.ChampionStats{WinRate: 51.2, PickRate: 3.5, BanRate: 2.0, Popularity: 4},
		},
		{
			ID: 8, Name: "Vladimir",
			Roles:       []domain.Role{domain.RoleTop, domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage, domain.ArchetypeHyperCarry},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.6, PickRate: 4.8, BanRate: 4.5, Popularity: 5},
		},
		{
			ID: 516, Name: "Ornn",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 52.0, PickRate: 5.5, BanRate: 6.5, Popularity: 6},
		},
		{
			ID: 98, Name: "Shen",
			Roles:       []domain.Role{domain.RoleTop, domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank, domain.ArchetypeWarden},
			DamageType:  domain.DamageMixed,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.4, PickRate: 4.8, BanRate: 3.0, Popularity: 5},
		},
		{
			ID: 14, Name: "Sion",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank},
			DamageType:  domain.DamageMixed,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame},
			Stats:       domain.ChampionStats{WinRate: 51.0, PickRate: 4.2, BanRate: 2.5, Popularity: 5},
		},
		{
			ID: 240, Name: "Kled",
			Roles:       []domain.Role{domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 52.1, PickRate: 3.0, BanRate: 2.0, Popularity: 4},
		},
		{
			ID: 64, Name: "Lee Sin",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeSkirmisher},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 48.9, PickRate: 14.5, BanRate: 18.0, Popularity: 9},
		},
		{
			ID: 121, Name: "Kha'Zix",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 51.3, PickRate: 11.0, BanRate: 15.5, Popularity: 8},
		},
		{
			ID: 104, Name: "Graves",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman, domain.ArchetypeFighter},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 50.7, PickRate: 9.5, BanRate: 10.0, Popularity: 7},
		},
		{
			ID: 254, Name: "Vi",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeTank},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Stats:       domain.ChampionStats{WinRate: 51.1, PickRate: 8.0, BanRate: 7.5, Popularity: 7},
		},
		{
			ID: 120, Name: "Hecarim",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeTank},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.9, PickRate: 7.0, BanRate: 9.0, Popularity: 7},
		},
		{
			ID: 154, Name: "Zac",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 52.5, PickRate: 7.5, BanRate: 10.5, Popularity: 7},
		},
		{
			ID: 141, Name: "Kayn",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeAssassin},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 52.0, PickRate: 12.0, BanRate: 20.0, Popularity: 9},
		},
		{
			ID: 113, Name: "Sejuani",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.6, PickRate: 5.0, BanRate: 3.5, Popularity: 5},
		},
		{
			ID: 32, Name: "Amumu",
			Roles:       []domain.Role{domain.RoleJungle, domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 52.2, PickRate: 4.5, BanRate: 3.0, Popularity: 5},
		},
		{
			ID: 59, Name: "Jarvan IV",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeTank},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.0, PickRate: 6.5, BanRate: 4.0, Popularity: 6},
		},
		{
			ID: 33, Name: "Rammus",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Stats:       domain.ChampionStats{WinRate: 52.8, PickRate: 3.5, BanRate: 4.5, Popularity: 4},
		},
		{
			ID: 60, Name: "Elise",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage, domain.ArchetypeAssassin},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
			Stats:       domain.ChampionStats{WinRate: 50.4, PickRate: 4.0, BanRate: 3.0, Popularity: 5},
		},
		{
			ID: 107, Name: "Rengar",
			Roles:       []domain.Role{domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 50.2, PickRate: 4.5, BanRate: 6.0, Popularity: 5},
		},
		{
			ID: 238, Name: "Zed",
			Roles:       []domain.Role{domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 50.1, PickRate: 13.5, BanRate: 25.0, Popularity: 9},
		},
		{
			ID: 55, Name: "Katarina",
			Roles:       []domain.Role{domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin, domain.ArchetypeMage},
			DamageType:  domain.DamageMixed,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.3, PickRate: 9.0, BanRate: 14.0, Popularity: 8},
		},
		{
			ID: 157, Name: "Yasuo",
			Roles:       []domain.Role{domain.RoleMid, domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeSkirmisher},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 49.2, PickRate: 15.0, BanRate: 22.0, Popularity: 9},
		},
		{
			ID: 777, Name: "Yone",
			Roles:       []domain.Role{domain.RoleMid, domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeAssassin},
			DamageType:  domain.DamageMixed,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 49.8, PickRate: 12.5, BanRate: 16.0, Popularity: 8},
		},
		{
			ID: 103, Name: "Ahri",
			Roles:       []domain.Role{domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage, domain.ArchetypeAssassin},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.7, PickRate: 10.5, BanRate: 12.0, Popularity: 8},
		},
		{
			ID: 7, Name: "LeBlanc",
			Roles:       []domain.Role{domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin, domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
			Stats:       domain.ChampionStats{WinRate: 49.5, PickRate: 6.0, BanRate: 8.0, Popularity: 6},
		},
		{
			ID: 91, Name: "Talon",
			Roles:       []domain.Role{domain.RoleMid, domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
			Stats:       domain.ChampionStats{WinRate: 50.8, PickRate: 5.5, BanRate: 6.5, Popularity: 6},
		},
		{
			ID: 245, Name: "Ekko",
			Roles:       []domain.Role{domain.RoleMid, domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin, domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.2, PickRate: 6.0, BanRate: 7.0, Popularity: 6},
		},
		{
			ID: 131, Name: "Diana",
			Roles:       []domain.Role{domain.RoleMid, domain.RoleJungle},
			Archetypes:  []domain.Archetype{domain.ArchetypeFighter, domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.9, PickRate: 7.5, BanRate: 9.0, Popularity: 7},
		},
		{
			ID: 84, Name: "Akali",
			Roles:       []domain.Role{domain.RoleMid, domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 49.0, PickRate: 8.5, BanRate: 13.5, Popularity: 7},
		},
		{
			ID: 61, Name: "Orianna",
			Roles:       []domain.Role{domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.6, PickRate: 7.0, BanRate: 3.0, Popularity: 6},
		},
		{
			ID: 134, Name: "Syndra",
			Roles:       []domain.Role{domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Stats:       domain.ChampionStats{WinRate: 50.4, PickRate: 6.5, BanRate: 5.5, Popularity: 6},
		},
		{
			ID: 90, Name: "Malzahar",
			Roles:       []domain.Role{domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Counters: []domain.CounterEdge{
				{ChampionID: 157, Score: 85, Reason: "Suppression ignores windwall"},
				{ChampionID: 55, Score: 88, Reason: "Ult interrupts the full reset chain"},
			},
			Stats:       domain.ChampionStats{WinRate: 51.5, PickRate: 4.5, BanRate: 5.0, Popularity: 5},
		},
		{
			ID: 127, Name: "Lissandra",
			Roles:       []domain.Role{domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.3, PickRate: 3.8, BanRate: 2.5, Popularity: 4},
		},
		{
			ID: 1, Name: "Annie",
			Roles:       []domain.Role{domain.RoleMid, domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 52.0, PickRate: 2.5, BanRate: 1.5, Popularity: 3},
		},
		{
			ID: 105, Name: "Fizz",
			Roles:       []domain.Role{domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 51.0, PickRate: 5.0, BanRate: 6.0, Popularity: 5},
		},
		{
			ID: 3, Name: "Galio",
			Roles:       []domain.Role{domain.RoleMid, domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank, domain.ArchetypeMage},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.9, PickRate: 3.5, BanRate: 2.0, Popularity: 4},
		},
		{
			ID: 222, Name: "Jinx",
			Roles:       []domain.Role{domain.RoleADC},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman, domain.ArchetypeHyperCarry},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 52.1, PickRate: 18.0, BanRate: 14.0, Popularity: 9},
		},
		{
			ID: 145, Name: "Kai'Sa",
			Roles:       []domain.Role{domain.RoleADC},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman, domain.ArchetypeHyperCarry},
			DamageType:  domain.DamageMixed,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame},
			Stats:       domain.ChampionStats{WinRate: 50.5, PickRate: 22.0, BanRate: 15.0, Popularity: 9},
		},
		{
			ID: 119, Name: "Draven",
			Roles:       []domain.Role{domain.RoleADC},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame, domain.Spike1v1Beast},
			Synergies: []domain.SynergyEdge{
				{ChampionID: 412, Score: 75, Reason: "Lantern keeps Draven's aggression safe"},
			},
			Stats:       domain.ChampionStats{WinRate: 50.9, PickRate: 7.0, BanRate: 10.5, Popularity: 6},
		},
		{
			ID: 67, Name: "Vayne",
			Roles:       []domain.Role{domain.RoleADC, domain.RoleTop},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman, domain.ArchetypeHyperCarry},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.Spike1v1Beast},
			Stats:       domain.ChampionStats{WinRate: 50.7, PickRate: 10.0, BanRate: 13.0, Popularity: 8},
		},
		{
			ID: 51, Name: "Caitlyn",
			Roles:       []domain.Role{domain.RoleADC},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
			Stats:       domain.ChampionStats{WinRate: 49.8, PickRate: 14.0, BanRate: 12.0, Popularity: 8},
		},
		{
			ID: 21, Name: "Miss Fortune",
			Roles:       []domain.Role{domain.RoleADC},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Synergies: []domain.SynergyEdge{
				{ChampionID: 89, Score: 80, Reason: "Leona engage + MF ulti on stacked targets"},
				{ChampionID: 32, Score: 85, Reason: "Amumu ult holds five targets for Bullet Time"},
			},
			Stats:       domain.ChampionStats{WinRate: 51.6, PickRate: 12.0, BanRate: 6.0, Popularity: 7},
		},
		{
			ID: 236, Name: "Lucian",
			Roles:       []domain.Role{domain.RoleADC},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
			Stats:       domain.ChampionStats{WinRate: 49.6, PickRate: 9.5, BanRate: 7.5, Popularity: 7},
		},
		{
			ID: 81, Name: "Ezreal",
			Roles:       []domain.Role{domain.RoleADC},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman},
			DamageType:  domain.DamageMixed,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Stats:       domain.ChampionStats{WinRate: 49.4, PickRate: 20.0, BanRate: 10.0, Popularity: 8},
		},
		{
			ID: 498, Name: "Xayah",
			Roles:       []domain.Role{domain.RoleADC},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.8, PickRate: 8.5, BanRate: 5.0, Popularity: 6},
		},
		{
			ID: 22, Name: "Ashe",
			Roles:       []domain.Role{domain.RoleADC},
			Archetypes:  []domain.Archetype{domain.ArchetypeMarksman},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.0, PickRate: 9.0, BanRate: 4.5, Popularity: 6},
		},
		{
			ID: 412, Name: "Thresh",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeCatcher, domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 49.9, PickRate: 14.5, BanRate: 12.5, Popularity: 9},
		},
		{
			ID: 111, Name: "Nautilus",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank, domain.ArchetypeCatcher},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.5, PickRate: 10.0, BanRate: 11.0, Popularity: 7},
		},
		{
			ID: 89, Name: "Leona",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.8, PickRate: 11.5, BanRate: 13.0, Popularity: 8},
		},
		{
			ID: 555, Name: "Pyke",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeAssassin, domain.ArchetypeCatcher},
			DamageType:  domain.DamagePhysical,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
			Stats:       domain.ChampionStats{WinRate: 49.7, PickRate: 9.0, BanRate: 12.0, Popularity: 7},
		},
		{
			ID: 53, Name: "Blitzcrank",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeCatcher, domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeEarlyGame},
			Stats:       domain.ChampionStats{WinRate: 51.4, PickRate: 7.5, BanRate: 14.5, Popularity: 6},
		},
		{
			ID: 497, Name: "Rakan",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeCatcher},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.8, PickRate: 8.0, BanRate: 6.0, Popularity: 7},
		},
		{
			ID: 117, Name: "Lulu",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeEnchanter},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame, domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 51.2, PickRate: 9.5, BanRate: 8.5, Popularity: 7},
		},
		{
			ID: 267, Name: "Nami",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeEnchanter},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Stats:       domain.ChampionStats{WinRate: 51.9, PickRate: 8.0, BanRate: 3.5, Popularity: 6},
		},
		{
			ID: 25, Name: "Morgana",
			Roles:       []domain.Role{domain.RoleSupport, domain.RoleMid},
			Archetypes:  []domain.Archetype{domain.ArchetypeMage, domain.ArchetypeCatcher},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Stats:       domain.ChampionStats{WinRate: 50.6, PickRate: 7.5, BanRate: 9.5, Popularity: 6},
		},
		{
			ID: 201, Name: "Braum",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank, domain.ArchetypeWarden},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.3, PickRate: 5.0, BanRate: 2.5, Popularity: 5},
		},
		{
			ID: 12, Name: "Alistar",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeTank},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeTeamfightGod},
			Stats:       domain.ChampionStats{WinRate: 50.1, PickRate: 5.5, BanRate: 3.0, Popularity: 5},
		},
		{
			ID: 40, Name: "Janna",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeEnchanter},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeMidGame},
			Stats:       domain.ChampionStats{WinRate: 52.4, PickRate: 6.5, BanRate: 2.0, Popularity: 5},
		},
		{
			ID: 350, Name: "Yuumi",
			Roles:       []domain.Role{domain.RoleSupport},
			Archetypes:  []domain.Archetype{domain.ArchetypeEnchanter},
			DamageType:  domain.DamageMagic,
			PowerSpikes: []domain.PowerSpike{domain.SpikeLateGame},
			Stats:       domain.ChampionStats{WinRate: 49.3, PickRate: 6.0, BanRate: 16.0, Popularity: 6},
		},
	}
}
