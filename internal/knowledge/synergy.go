package knowledge

import "github.com/kaanyalova/draft-advisor/internal/domain"

// synergyTable lists, per champion, the allies it plays especially well
// with. Scores are 0-100; the synergy rule converts them to bonus points.
var synergyTable = map[int][]domain.SynergyEdge{
	// Vi
	254: {
		{ChampionID: 103, Score: 85, Reason: "Ult lockdown into charm is a guaranteed pick"},
		{ChampionID: 157, Score: 90, Reason: "Q knockup feeds Last Breath"},
		{ChampionID: 412, Score: 75, Reason: "Lantern makes every dive a safe dive"},
		{ChampionID: 134, Score: 80, Reason: "Point-click lockdown into full burst"},
		{ChampionID: 61, Score: 85, Reason: "Ball delivery straight onto the ult target"},
	},
	// Lee Sin
	64: {
		{ChampionID: 157, Score: 95, Reason: "Insec kick is the premier Last Breath setup"},
		{ChampionID: 92, Score: 75, Reason: "Early aggression and shared dive windows"},
		{ChampionID: 238, Score: 75, Reason: "Both snowball off early dives"},
		{ChampionID: 61, Score: 80, Reason: "Insec kick into Shockwave"},
		{ChampionID: 777, Score: 85, Reason: "Kick feeds Fate Sealed"},
	},
	// Jarvan IV
	59: {
		{ChampionID: 61, Score: 100, Reason: "Cataclysm plus Shockwave is the classic wombo"},
		{ChampionID: 134, Score: 85, Reason: "Cage into Unleashed Power"},
		{ChampionID: 21, Score: 85, Reason: "Cataclysm holds targets for Bullet Time"},
	},
	// Malphite
	54: {
		{ChampionID: 157, Score: 90, Reason: "Unstoppable Force feeds Last Breath"},
		{ChampionID: 777, Score: 85, Reason: "Knockup chains into Fate Sealed"},
		{ChampionID: 21, Score: 80, Reason: "AoE knockup into Bullet Time"},
	},
	// Amumu
	32: {
		{ChampionID: 21, Score: 90, Reason: "Curse of the Sad Mummy holds five for Bullet Time"},
		{ChampionID: 55, Score: 80, Reason: "AoE lockdown lets Death Lotus channel out"},
		{ChampionID: 157, Score: 85, Reason: "Bandage toss is a reliable airborne setup"},
	},
	// Thresh
	412: {
		{ChampionID: 119, Score: 80, Reason: "Lantern lets Draven play fearless"},
		{ChampionID: 67, Score: 75, Reason: "Peel and pick potential for the hypercarry"},
	},
	// Leona
	89: {
		{ChampionID: 21, Score: 85, Reason: "Chain CC start into Bullet Time"},
		{ChampionID: 67, Score: 70, Reason: "All-in lane with stun setup"},
		{ChampionID: 222, Score: 70, Reason: "Lockdown gives Jinx free rockets"},
	},
	// Nautilus
	111: {
		{ChampionID: 157, Score: 80, Reason: "Hook and ult are both airborne setups"},
		{ChampionID: 145, Score: 75, Reason: "Reliable CC for Kai'Sa follow-up dives"},
	},
	// Lulu
	117: {
		{ChampionID: 222, Score: 90, Reason: "Polymorph peel and Wild Growth on the hypercarry"},
		{ChampionID: 67, Score: 85, Reason: "Attack-speed buff scales Vayne's late game"},
		{ChampionID: 145, Score: 80, Reason: "Shield and knockup protect the dive"},
	},
	// Orianna
	61: {
		{ChampionID: 59, Score: 100, Reason: "Shockwave lands wherever Cataclysm does"},
		{ChampionID: 254, Score: 85, Reason: "Ball rides the ult into the backline"},
		{ChampionID: 64, Score: 80, Reason: "Kick into Shockwave"},
	},
	// Rakan
	497: {
		{ChampionID: 498, Score: 95, Reason: "Lovers' recall and layered engage windows"},
		{ChampionID: 157, Score: 75, Reason: "Grand Entrance is an airborne setup"},
	},
	// Blitzcrank
	53: {
		{ChampionID: 119, Score: 75, Reason: "A landed hook is a kill with Draven damage"},
	},
	// Sejuani
	113: {
		{ChampionID: 157, Score: 85, Reason: "Permafrost chains into Last Breath"},
	},
	// Janna
	40: {
		{ChampionID: 222, Score: 80, Reason: "Disengage keeps the hypercarry untouchable"},
	},
}

// counterTable lists, per champion, the enemies it is strong against in a
// general sense (lane-agnostic). Lane-scoped matchups live in matchups.go.
var counterTable = map[int][]domain.CounterEdge{
	// Malzahar
	90: {
		{ChampionID: 157, Score: 85, Reason: "Suppression ignores Wind Wall"},
		{ChampionID: 55, Score: 88, Reason: "Ult interrupts the full reset chain"},
		{ChampionID: 238, Score: 80, Reason: "Passive eats the burst, ult cancels the all-in"},
		{ChampionID: 105, Score: 75, Reason: "Point-click suppression beats the dodge kit"},
	},
	// Lissandra
	127: {
		{ChampionID: 238, Score: 80, Reason: "Self-ult denies Death Mark"},
		{ChampionID: 157, Score: 75, Reason: "Root and claw stop the dash chain"},
		{ChampionID: 105, Score: 78, Reason: "CC chain catches Fizz on landing"},
		{ChampionID: 84, Score: 72, Reason: "Point-click ult finds her inside the shroud"},
	},
	// Malphite
	54: {
		{ChampionID: 157, Score: 90, Reason: "Armor stacking blunts every crit"},
		{ChampionID: 238, Score: 80, Reason: "Full armor makes the burst tickle"},
		{ChampionID: 119, Score: 75, Reason: "Armor plus AS slow shuts the axes down"},
		{ChampionID: 122, Score: 70, Reason: "Rock solid into the all-in"},
	},
	// Rammus
	33: {
		{ChampionID: 157, Score: 85, Reason: "Taunt plus thornmail punishes every engage"},
		{ChampionID: 67, Score: 80, Reason: "Taunt locks the kite away"},
		{ChampionID: 119, Score: 78, Reason: "Defensive ball curl wins the 1v1"},
		{ChampionID: 104, Score: 75, Reason: "Armor stacks beat the AD burst"},
	},
	// Morgana
	25: {
		{ChampionID: 412, Score: 85, Reason: "Black Shield negates the hook"},
		{ChampionID: 53, Score: 88, Reason: "One shield invalidates the whole kit"},
		{ChampionID: 89, Score: 80, Reason: "Shield blocks the engage stun"},
		{ChampionID: 555, Score: 75, Reason: "Shield denies the stun, ult punishes the dive"},
	},
	// Teemo
	17: {
		{ChampionID: 122, Score: 85, Reason: "Blind denies Noxian Might trades"},
		{ChampionID: 86, Score: 80, Reason: "Kite and poke beat the silence all-in"},
		{ChampionID: 58, Score: 70, Reason: "Blind wins the short trades"},
	},
	// Fizz
	105: {
		{ChampionID: 55, Score: 80, Reason: "Playful dodges the full reset window"},
		{ChampionID: 103, Score: 70, Reason: "Troll pole dodges charm"},
	},
	// Annie
	1: {
		{ChampionID: 157, Score: 75, Reason: "Point-click stun ignores the dashes"},
	},
	// Darius
	122: {
		{ChampionID: 114, Score: 70, Reason: "Early pressure before Grand Challenge comes online"},
		{ChampionID: 58, Score: 72, Reason: "Outtrades once five stacks threaten"},
	},
	// Draven
	119: {
		{ChampionID: 67, Score: 80, Reason: "Early game gap crushes the scaling lane"},
		{ChampionID: 222, Score: 75, Reason: "Lane pressure denies Jinx farm"},
	},
	// Caitlyn
	51: {
		{ChampionID: 67, Score: 78, Reason: "Range advantage denies every trade window"},
		{ChampionID: 119, Score: 65, Reason: "Traps and range blunt the axe aggression"},
	},
	// Akali
	84: {
		{ChampionID: 238, Score: 70, Reason: "Shroud breaks Zed's targeting"},
	},
	// Ekko
	245: {
		{ChampionID: 238, Score: 72, Reason: "Chronobreak refunds the Death Mark damage"},
	},
	// Talon
	91: {
		{ChampionID: 103, Score: 72, Reason: "Roams faster and wins the burst race"},
	},
}
