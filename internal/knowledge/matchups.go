package knowledge

import "github.com/kaanyalova/draft-advisor/internal/domain"

// Lane matchup tables. laneMatchups[role][victim] lists the champions that
// beat victim in that lane, with matchup strength.

var topMatchups = map[int][]domain.CounterEdge{
	// Darius
	122: {
		{ChampionID: 17, Score: 85, Reason: "Blind denies the passive stacking"},
		{ChampionID: 85, Score: 80, Reason: "Range, stun and kite"},
		{ChampionID: 150, Score: 80, Reason: "Range, kite and Mega disengage"},
		{ChampionID: 8, Score: 75, Reason: "Pool dodges the hook, sustain outlasts him"},
	},
	// Garen
	86: {
		{ChampionID: 67, Score: 90, Reason: "True damage and kite"},
		{ChampionID: 8, Score: 85, Reason: "Pool dodges the ult, scales harder"},
		{ChampionID: 17, Score: 85, Reason: "Blind, poke and kite"},
		{ChampionID: 85, Score: 80, Reason: "Range and stun deny the spin"},
	},
	// Fiora
	114: {
		{ChampionID: 78, Score: 90, Reason: "W blocks the lunge and the riposte bait"},
		{ChampionID: 54, Score: 85, Reason: "Attack-speed slow and armor"},
		{ChampionID: 58, Score: 80, Reason: "Point-click stun wins early"},
		{ChampionID: 240, Score: 75, Reason: "All-in sustain and dismount pressure"},
		{ChampionID: 122, Score: 70, Reason: "Early game pressure"},
	},
	// Camille
	164: {
		{ChampionID: 24, Score: 85, Reason: "Counter Strike and better scaling"},
		{ChampionID: 58, Score: 80, Reason: "Point-click stun and sustain"},
		{ChampionID: 78, Score: 80, Reason: "W blocks the hookshot"},
		{ChampionID: 122, Score: 75, Reason: "Early game pressure"},
	},
	// Jax
	24: {
		{ChampionID: 54, Score: 80, Reason: "Attack-speed slow breaks the duel plan"},
		{ChampionID: 114, Score: 75, Reason: "Riposte beats Counter Strike"},
		{ChampionID: 92, Score: 70, Reason: "Burst between his cooldown windows"},
	},
	// Irelia
	39: {
		{ChampionID: 78, Score: 85, Reason: "W stops the dash chain"},
		{ChampionID: 58, Score: 80, Reason: "Early stun pressure"},
		{ChampionID: 17, Score: 75, Reason: "Blind and kite"},
	},
	// Riven
	92: {
		{ChampionID: 78, Score: 80, Reason: "W denies the third Q engage"},
		{ChampionID: 58, Score: 75, Reason: "Matches the early all-in with sustain"},
		{ChampionID: 86, Score: 70, Reason: "Tenacity and spin through the combo"},
	},
	// Yasuo (flexed top)
	157: {
		{ChampionID: 54, Score: 90, Reason: "Armor and AS slow blunt the crits"},
		{ChampionID: 90, Score: 85, Reason: "Suppression ignores Wind Wall"},
		{ChampionID: 1, Score: 80, Reason: "Point-click stun ignores the dashes"},
	},
	// Aatrox
	266: {
		{ChampionID: 114, Score: 80, Reason: "Riposte the chain Q knockup"},
		{ChampionID: 24, Score: 75, Reason: "Dodge the Q sweet spots, win extended trades"},
		{ChampionID: 240, Score: 70, Reason: "Dismount sustain wins long fights"},
	},
}

var midMatchups = map[int][]domain.CounterEdge{
	// Zed
	238: {
		{ChampionID: 90, Score: 88, Reason: "Passive shield plus ult cancels the all-in"},
		{ChampionID: 127, Score: 85, Reason: "Self-ult denies Death Mark"},
		{ChampionID: 245, Score: 72, Reason: "Chronobreak refunds the burst"},
		{ChampionID: 84, Score: 70, Reason: "Shroud breaks the targeting"},
	},
	// Yasuo
	157: {
		{ChampionID: 1, Score: 80, Reason: "Point-click stun ignores the dashes"},
		{ChampionID: 90, Score: 85, Reason: "Suppression ignores Wind Wall"},
		{ChampionID: 127, Score: 75, Reason: "Root and claw stop the dash chain"},
	},
	// Katarina
	55: {
		{ChampionID: 90, Score: 88, Reason: "Ult interrupts the reset chain"},
		{ChampionID: 127, Score: 80, Reason: "CC spam denies every reset"},
		{ChampionID: 105, Score: 75, Reason: "Playful dodges Death Lotus"},
	},
	// Ahri
	103: {
		{ChampionID: 238, Score: 70, Reason: "Burst through charm range"},
		{ChampionID: 91, Score: 72, Reason: "Faster roams, wins the burst race"},
		{ChampionID: 105, Score: 68, Reason: "Troll pole dodges charm"},
	},
	// LeBlanc
	7: {
		{ChampionID: 3, Score: 85, Reason: "MR and taunt punish the chain snap"},
		{ChampionID: 90, Score: 80, Reason: "Suppression through the clone"},
	},
	// Akali
	84: {
		{ChampionID: 3, Score: 80, Reason: "Tanky with hard CC through shroud"},
		{ChampionID: 90, Score: 78, Reason: "Point-click suppression finds her"},
		{ChampionID: 127, Score: 75, Reason: "Area CC controls the shroud"},
	},
	// Orianna
	61: {
		{ChampionID: 105, Score: 80, Reason: "Gap close through the slow field"},
		{ChampionID: 238, Score: 75, Reason: "Energy burst beats the control mage"},
		{ChampionID: 91, Score: 70, Reason: "Roams around the ball"},
	},
	// Syndra
	134: {
		{ChampionID: 105, Score: 78, Reason: "Playful dodges the stun sphere"},
		{ChampionID: 238, Score: 72, Reason: "Shadow trades beat the immobile mage"},
	},
	// Yone
	777: {
		{ChampionID: 90, Score: 80, Reason: "Suppression cancels the soul form"},
		{ChampionID: 127, Score: 78, Reason: "Root chain punishes every E return"},
	},
}

var jungleMatchups = map[int][]domain.CounterEdge{
	// Lee Sin
	64: {
		{ChampionID: 33, Score: 80, Reason: "Taunt cancels the kick line"},
		{ChampionID: 113, Score: 75, Reason: "CC chain locks the mobility down"},
		{ChampionID: 154, Score: 70, Reason: "Engage matches his tempo, scales past him"},
	},
	// Kayn
	141: {
		{ChampionID: 64, Score: 75, Reason: "Early invades delay the form spike"},
		{ChampionID: 107, Score: 72, Reason: "Wins the 1v1 before Rhaast completes"},
		{ChampionID: 121, Score: 70, Reason: "Isolation damage wins the duel"},
	},
	// Kha'Zix
	121: {
		{ChampionID: 33, Score: 75, Reason: "Armor ball ignores isolation burst"},
		{ChampionID: 154, Score: 72, Reason: "Never isolated, never bursted"},
	},
	// Graves
	104: {
		{ChampionID: 33, Score: 78, Reason: "Armor stacks beat the AD burst"},
		{ChampionID: 113, Score: 70, Reason: "Frontloaded CC beats the dash window"},
	},
	// Hecarim
	120: {
		{ChampionID: 33, Score: 72, Reason: "Taunt turns the charge around"},
		{ChampionID: 113, Score: 68, Reason: "Matches the engage with harder CC"},
	},
}

var adcMatchups = map[int][]domain.CounterEdge{
	// Vayne
	67: {
		{ChampionID: 119, Score: 85, Reason: "Early game gap is enormous"},
		{ChampionID: 51, Score: 80, Reason: "Range advantage denies every trade"},
		{ChampionID: 21, Score: 75, Reason: "Lane bully into the scaling pick"},
	},
	// Jinx
	222: {
		{ChampionID: 119, Score: 80, Reason: "Early aggression denies the scaling"},
		{ChampionID: 236, Score: 75, Reason: "Mobility punishes the immobile carry"},
		{ChampionID: 145, Score: 70, Reason: "Dive potential on the backline"},
	},
	// Caitlyn
	51: {
		{ChampionID: 81, Score: 70, Reason: "Poke match with a safer kit"},
		{ChampionID: 145, Score: 72, Reason: "Outscales and dives the siege"},
	},
	// Ezreal
	81: {
		{ChampionID: 119, Score: 75, Reason: "All-in beats the poke pattern"},
		{ChampionID: 51, Score: 72, Reason: "Range and traps pin him down"},
	},
	// Kai'Sa
	145: {
		{ChampionID: 51, Score: 75, Reason: "Early range denies the scaling"},
		{ChampionID: 236, Score: 70, Reason: "Lane pressure before the evolves"},
	},
	// Miss Fortune
	21: {
		{ChampionID: 51, Score: 72, Reason: "Outranges the strut poke"},
		{ChampionID: 81, Score: 68, Reason: "Dodges Bullet Time for free"},
	},
}

var supportMatchups = map[int][]domain.CounterEdge{
	// Thresh
	412: {
		{ChampionID: 25, Score: 88, Reason: "Black Shield negates the hook"},
		{ChampionID: 12, Score: 75, Reason: "Tanks the hook, combos back"},
		{ChampionID: 89, Score: 70, Reason: "All-in punishes a missed hook"},
	},
	// Blitzcrank
	53: {
		{ChampionID: 25, Score: 90, Reason: "One shield invalidates the kit"},
		{ChampionID: 201, Score: 80, Reason: "Stands in front of every hook"},
	},
	// Leona
	89: {
		{ChampionID: 25, Score: 85, Reason: "Shield blocks the engage stun"},
		{ChampionID: 40, Score: 80, Reason: "Disengage beats the all-in"},
		{ChampionID: 267, Score: 72, Reason: "Bubble punishes the engage"},
	},
	// Nautilus
	111: {
		{ChampionID: 25, Score: 82, Reason: "Shield eats the hook"},
		{ChampionID: 40, Score: 78, Reason: "Tornado disengage resets the fight"},
	},
	// Pyke
	555: {
		{ChampionID: 89, Score: 78, Reason: "All-in through the low health pool"},
		{ChampionID: 111, Score: 75, Reason: "Chain CC ends the roam game"},
		{ChampionID: 201, Score: 72, Reason: "Shield wall blunts the execute"},
	},
	// Yuumi
	350: {
		{ChampionID: 53, Score: 85, Reason: "Hook the host, kill the cat"},
		{ChampionID: 89, Score: 80, Reason: "All-in before the heals stack"},
		{ChampionID: 555, Score: 78, Reason: "Execute ignores the attachment"},
	},
}

func laneMatchupTables() map[domain.Role]map[int][]domain.CounterEdge {
	return map[domain.Role]map[int][]domain.CounterEdge{
		domain.RoleTop:     topMatchups,
		domain.RoleJungle:  jungleMatchups,
		domain.RoleMid:     midMatchups,
		domain.RoleADC:     adcMatchups,
		domain.RoleSupport: supportMatchups,
	}
}
