package knowledge

// defaultDataset assembles the built-in tables into a single dataset
func defaultDataset() Dataset {
	return Dataset{
		Champions:        catalogChampions(),
		Synergies:        synergyTable,
		Counters:         counterTable,
		LaneMatchups:     laneMatchupTables(),
		Combos:           womboCombos,
		HardEngage:       hardEngageChampions,
		Divers:           diverChampions,
		Peel:             peelChampions,
		Frontline:        frontlineChampions,
		Knockup:          knockupChampions,
		ProStats:         proPlayStats,
		HighPriorityBans: highPriorityBans,
		RoleThreats:      roleThreats,
		SynergyBreakers:  synergyBreakers,
		CounterBans:      counterBanTable,
		MetaOP:           metaOPList,
	}
}
