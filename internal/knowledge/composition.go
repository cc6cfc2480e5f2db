package knowledge

// Team-composition capability lists. These drive the composition-gap rule
// and the engage-threat ban heuristic.

// hardEngageChampions can start a five-man fight on their own
var hardEngageChampions = []int{
	54,  // Malphite
	89,  // Leona
	111, // Nautilus
	12,  // Alistar
	497, // Rakan
	154, // Zac
	113, // Sejuani
	32,  // Amumu
	59,  // Jarvan IV
	120, // Hecarim
	516, // Ornn
	78,  // Poppy
	254, // Vi
	164, // Camille
	141, // Kayn
	14,  // Sion
	98,  // Shen
	3,   // Galio
	150, // Gnar
	201, // Braum
	555, // Pyke
	127, // Lissandra
	131, // Diana
}

// diverChampions dive a single backline target
var diverChampions = []int{
	254, // Vi
	164, // Camille
	64,  // Lee Sin
	121, // Kha'Zix
	107, // Rengar
	131, // Diana
	245, // Ekko
	39,  // Irelia
	24,  // Jax
	104, // Graves
	60,  // Elise
	777, // Yone
}

// peelChampions keep a hypercarry alive
var peelChampions = []int{
	412, // Thresh
	117, // Lulu
	40,  // Janna
	267, // Nami
	201, // Braum
	350, // Yuumi
	497, // Rakan
}

// frontlineChampions soak damage at the front of a fight
var frontlineChampions = []int{
	54,  // Malphite
	516, // Ornn
	14,  // Sion
	33,  // Rammus
	113, // Sejuani
	154, // Zac
	32,  // Amumu
	111, // Nautilus
	89,  // Leona
	12,  // Alistar
	201, // Braum
	3,   // Galio
	78,  // Poppy
	98,  // Shen
}

// knockupChampions have a displacement or knock-up, the setup Yasuo and
// Yone ultimates key off
var knockupChampions = []int{
	54,  // Malphite
	89,  // Leona
	111, // Nautilus
	154, // Zac
	32,  // Amumu
	113, // Sejuani
	59,  // Jarvan IV
	516, // Ornn
	64,  // Lee Sin
	497, // Rakan
	12,  // Alistar
	131, // Diana
}
