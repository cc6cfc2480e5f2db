package knowledge

import "github.com/kaanyalova/draft-advisor/internal/domain"

// Ban heuristics: curated threat lists, synergy breakers, precomputed
// counter bans for common pick intents and the meta-OP fallback list.

// highPriorityBans are champions strong enough to be ban-worthy in any game
var highPriorityBans = []int{
	// Jungle
	64, 121, 104, 254, 120, 154,
	// Mid
	238, 55, 157, 777, 103, 7,
	// Top
	122, 24, 114, 39, 92,
	// ADC
	222, 145, 119, 67,
	// Support
	412, 111, 89, 555, 53,
}

// roleThreats lists, per role, the champions most miserable to lane against
var roleThreats = map[domain.Role][]int{
	domain.RoleTop:     {122, 24, 114, 39, 92, 86, 240, 164},
	domain.RoleJungle:  {64, 121, 104, 141, 120, 254, 154, 60, 107},
	domain.RoleMid:     {238, 55, 157, 777, 103, 7, 91, 245, 131, 84},
	domain.RoleADC:     {222, 145, 119, 67, 51, 21, 236, 81, 498, 22},
	domain.RoleSupport: {412, 111, 89, 555, 53, 497, 117, 267, 25, 201},
}

// synergyBreakers maps an already-picked ally to the enemy picks that ruin
// its game plan and should be banned away.
var synergyBreakers = map[int][]int{
	157: {54, 89, 111, 154, 32}, // Yasuo wants the knockup enablers denied to the enemy
	777: {54, 89, 111},
	61:  {59, 254, 120, 154}, // Orianna loses her ball carriers
	21:  {32, 54, 59, 89},    // MF loses her Bullet Time setups
}

// counterBanTable maps a pick intent to the champions that counter it
// hardest; the matchup win rate doubles as the ban score.
var counterBanTable = map[int][]CounterBan{
	// Yasuo
	157: {
		{ChampionID: 54, WinRate: 67, Reason: "Armor stacking and the ult knockup crush Yasuo"},
		{ChampionID: 33, WinRate: 65, Reason: "Taunt plus thornmail is a nightmare matchup"},
		{ChampionID: 1, WinRate: 62, Reason: "Point-click stun ignores the dashes"},
		{ChampionID: 90, WinRate: 60, Reason: "Suppression locks Yasuo through Wind Wall"},
		{ChampionID: 127, WinRate: 58, Reason: "CC chain stops every dash window"},
	},
	// Zed
	238: {
		{ChampionID: 127, WinRate: 64, Reason: "Self-ult counters Death Mark"},
		{ChampionID: 90, WinRate: 63, Reason: "Passive shield breaks the burst combo"},
		{ChampionID: 84, WinRate: 58, Reason: "Shroud denies Zed's targeting"},
		{ChampionID: 245, WinRate: 57, Reason: "Chronobreak refunds the Death Mark damage"},
	},
	// Katarina
	55: {
		{ChampionID: 90, WinRate: 65, Reason: "Ult cuts Death Lotus short"},
		{ChampionID: 127, WinRate: 62, Reason: "CC spam denies every reset"},
		{ChampionID: 105, WinRate: 58, Reason: "Playful dodges the full ult"},
	},
	// Vayne
	67: {
		{ChampionID: 119, WinRate: 60, Reason: "Draven crushes Vayne before she scales"},
		{ChampionID: 51, WinRate: 58, Reason: "Range advantage suffocates the lane"},
		{ChampionID: 21, WinRate: 57, Reason: "Lane pressure denies the farm"},
	},
	// Darius
	122: {
		{ChampionID: 17, WinRate: 62, Reason: "Kites Darius into despair"},
		{ChampionID: 85, WinRate: 60, Reason: "Speed and stuns control the lane"},
		{ChampionID: 150, WinRate: 58, Reason: "Kite potential plus Mega disengage"},
	},
	// Lee Sin
	64: {
		{ChampionID: 33, WinRate: 58, Reason: "Taunt stops the kick line"},
		{ChampionID: 113, WinRate: 57, Reason: "CC chain locks the mobility down"},
		{ChampionID: 154, WinRate: 56, Reason: "Engage range matches the mobility"},
	},
	// Thresh
	412: {
		{ChampionID: 25, WinRate: 62, Reason: "Black Shield negates the hook"},
		{ChampionID: 12, WinRate: 58, Reason: "Tanks the hook and combos back"},
		{ChampionID: 89, WinRate: 56, Reason: "All-in punishes a missed hook"},
	},
	// Ahri
	103: {
		{ChampionID: 238, WinRate: 55, Reason: "Burst through charm range"},
		{ChampionID: 91, WinRate: 54, Reason: "Out-roams and out-bursts her"},
		{ChampionID: 55, WinRate: 53, Reason: "Resets punish the charm whiff"},
	},
	// Jinx
	222: {
		{ChampionID: 119, WinRate: 58, Reason: "Early game crushes the scaling"},
		{ChampionID: 236, WinRate: 56, Reason: "Mobility pressures the immobile carry"},
		{ChampionID: 145, WinRate: 55, Reason: "Dives Jinx in every fight"},
	},
	// Kayn
	141: {
		{ChampionID: 64, WinRate: 56, Reason: "Early invades stop the form farm"},
		{ChampionID: 107, WinRate: 55, Reason: "Wins the 1v1 before Rhaast completes"},
		{ChampionID: 121, WinRate: 54, Reason: "Isolation burst wins the jungle duels"},
	},
}

// metaOPList is the fallback ban suggestion set when no intent signal exists
var metaOPList = []MetaOPEntry{
	{ChampionID: 141, Reason: "Kayn - S+ tier jungle, 52% WR, 20% ban rate"},
	{ChampionID: 238, Reason: "Zed - S tier mid, 25% ban rate, universally hated"},
	{ChampionID: 412, Reason: "Thresh - S+ support, impactful in every game"},
	{ChampionID: 122, Reason: "Darius - S tier top, extreme lane dominance"},
	{ChampionID: 64, Reason: "Lee Sin - S+ jungle, early game dictates the map"},
	{ChampionID: 157, Reason: "Yasuo - high pick rate, tilts teams on both sides"},
	{ChampionID: 67, Reason: "Vayne - late game hypercarry, unstoppable if fed"},
	{ChampionID: 555, Reason: "Pyke - support assassin with snowball potential"},
	{ChampionID: 350, Reason: "Yuumi - the champion everyone loves to ban"},
	{ChampionID: 121, Reason: "Kha'Zix - S+ jungle, deletes isolated targets"},
}
