package knowledge

// womboCombos are named champion groups whose joint presence unlocks an
// outsized teamfight. Scores are 0-100.
var womboCombos = []Combo{
	{
		Name:        "Yasuo-Malphite",
		Description: "Unstoppable Force into Last Breath on five targets",
		Champions:   []int{157, 54},
		Score:       100,
		Timing:      "Mid",
	},
	{
		Name:        "Cataclysmic Shockwave",
		Description: "Cataclysm walls the fight in, Shockwave ends it",
		Champions:   []int{59, 61},
		Score:       100,
		Timing:      "Mid",
	},
	{
		Name:        "Bullet Time Bandages",
		Description: "Curse of the Sad Mummy holds five for Bullet Time",
		Champions:   []int{32, 21},
		Score:       95,
		Timing:      "Mid",
	},
	{
		Name:        "Chain CC Bullet Time",
		Description: "Amumu and Leona layer CC so Bullet Time never misses",
		Champions:   []int{32, 21, 89},
		Score:       90,
		Timing:      "Late",
	},
	{
		Name:        "Insec Last Breath",
		Description: "Kick the carry airborne, Yasuo does the rest",
		Champions:   []int{64, 157},
		Score:       90,
		Timing:      "Early",
	},
	{
		Name:        "Special Delivery",
		Description: "Vi ult carries the ball into the backline",
		Champions:   []int{254, 61},
		Score:       85,
		Timing:      "Mid",
	},
	{
		Name:        "Protect the Jinx",
		Description: "Lulu turns Jinx into an unkillable win condition",
		Champions:   []int{117, 222},
		Score:       85,
		Timing:      "Late",
	},
	{
		Name:        "Lovers' Duo",
		Description: "Rakan engages off Xayah's feathers and recalls home",
		Champions:   []int{497, 498},
		Score:       90,
		Timing:      "Any",
	},
	{
		Name:        "Fate Sealed Force",
		Description: "Malphite knocks up the team, Yone seals their fate",
		Champions:   []int{54, 777},
		Score:       80,
		Timing:      "Mid",
	},
	{
		Name:        "Solar Bullet Time",
		Description: "Leona locks the frontline while MF channels",
		Champions:   []int{89, 21},
		Score:       80,
		Timing:      "Mid",
	},
}
