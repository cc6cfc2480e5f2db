package engine

import (
	"fmt"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

// yasuoID gets special handling in the synergy and combo rules: his
// ultimate only needs an airborne target, so any knockup on the team is a
// setup even without an explicit synergy entry.
const yasuoID = 157

// evaluateComposition rewards candidates that fill gaps in the allied
// team: engage, frontline, peel for a hypercarry, damage balance and
// missing archetypes. The description reports the single largest bonus.
func (e *Engine) evaluateComposition(c domain.Champion, myTeam []domain.TeamSlot) domain.ScoringReason {
	allies := e.teamChampions(myTeam)

	score := 0
	bestBonus := 0
	description := ""
	award := func(bonus int, desc string) {
		score += bonus
		if bonus > bestBonus {
			bestBonus = bonus
			description = desc
		}
	}

	allyIDs := filledIDs(myTeam)
	if e.kb.TeamNeedsEngage(allyIDs) {
		if e.kb.IsHardEngage(c.ID) {
			award(30, "Team lacks hard engage - can start fights")
		} else if e.kb.IsDiver(c.ID) {
			award(15, "Adds dive threat to a team without engage")
		}
	}

	if e.kb.TeamNeedsFrontline(allyIDs) && e.kb.IsFrontline(c.ID) {
		award(25, "Team has no frontline - soaks damage for the carries")
	}

	if teamHasHyperCarry(allies) && e.kb.TeamNeedsPeel(allyIDs) && e.kb.IsPeel(c.ID) {
		award(20, "Protects the hypercarry through the fight")
	}

	physical, magic := teamDamageProfile(allies)
	if physical >= 3 && c.DamageType == domain.DamageMagic {
		award(20, "Balances a heavily physical damage profile")
	} else if magic >= 3 && c.DamageType == domain.DamagePhysical {
		award(20, "Balances a heavily magic damage profile")
	}

	if !teamHasArchetype(allies, domain.ArchetypeTank) && c.HasArchetype(domain.ArchetypeTank) {
		award(10, "Adds a tank the team is missing")
	}
	if !teamHasArchetype(allies, domain.ArchetypeAssassin) && c.HasArchetype(domain.ArchetypeAssassin) {
		award(5, "Adds assassin pressure the team is missing")
	}

	return domain.ScoringReason{Category: domain.ReasonComposition, Score: score, Description: description}
}

func (e *Engine) teamChampions(team []domain.TeamSlot) []domain.Champion {
	champs := make([]domain.Champion, 0, len(team))
	for _, id := range filledIDs(team) {
		if c, ok := e.kb.ByID(id); ok {
			champs = append(champs, *c)
		}
	}
	return champs
}

func teamHasArchetype(team []domain.Champion, a domain.Archetype) bool {
	for _, c := range team {
		if c.HasArchetype(a) {
			return true
		}
	}
	return false
}

func teamHasHyperCarry(team []domain.Champion) bool {
	for _, c := range team {
		if c.HasArchetype(domain.ArchetypeHyperCarry) || c.HasArchetype(domain.ArchetypeMarksman) {
			return true
		}
	}
	return false
}

// teamDamageProfile counts damage sources; mixed champions contribute half
// to each side.
func teamDamageProfile(team []domain.Champion) (physical, magic float64) {
	for _, c := range team {
		switch c.DamageType {
		case domain.DamagePhysical:
			physical++
		case domain.DamageMagic:
			magic++
		case domain.DamageMixed:
			physical += 0.5
			magic += 0.5
		}
	}
	return physical, magic
}

// evaluateSynergy sums pairwise synergy with every picked ally, scaled
// down so a single strong pairing does not dominate the total.
func (e *Engine) evaluateSynergy(c domain.Champion, myTeam []domain.TeamSlot) domain.ScoringReason {
	score := 0
	description := ""
	allyIDs := filledIDs(myTeam)

	for _, allyID := range allyIDs {
		edge, ok := e.synergyWith(c, allyID)
		if !ok {
			continue
		}
		score += round(float64(edge.Score) / 4)
		if description == "" {
			if ally, found := e.kb.ByID(allyID); found {
				description = fmt.Sprintf("With %s: %s", ally.Name, edge.Reason)
			} else {
				description = edge.Reason
			}
		}
	}

	if c.ID == yasuoID && score == 0 && e.kb.KnockupCount(allyIDs) > 0 {
		score = 20
		description = "An airborne setup is already on the team"
	}

	return domain.ScoringReason{Category: domain.ReasonSynergy, Score: score, Description: description}
}

func (e *Engine) synergyWith(c domain.Champion, allyID int) (domain.SynergyEdge, bool) {
	for _, edge := range e.kb.SynergiesFor(c.ID) {
		if edge.ChampionID == allyID {
			return edge, true
		}
	}
	for _, edge := range c.Synergies {
		if edge.ChampionID == allyID {
			return edge, true
		}
	}
	return domain.SynergyEdge{}, false
}

// evaluateCounters sums counter value against every revealed enemy, plus a
// frontline bonus when the enemy damage profile is lopsided.
func (e *Engine) evaluateCounters(c domain.Champion, theirTeam []domain.TeamSlot) domain.ScoringReason {
	score := 0
	description := ""

	for _, enemyID := range filledIDs(theirTeam) {
		edge, ok := e.counterOf(c, enemyID)
		if !ok {
			continue
		}
		score += round(float64(edge.Score) / 3.5)
		if description == "" {
			if enemy, found := e.kb.ByID(enemyID); found {
				description = fmt.Sprintf("Counters %s: %s", enemy.Name, edge.Reason)
			} else {
				description = edge.Reason
			}
		}
	}

	physical, magic := e.enemyDamageCounts(theirTeam)
	isFrontline := e.kb.IsFrontline(c.ID) || c.HasArchetype(domain.ArchetypeTank)
	if physical >= 3 && isFrontline {
		score += 25
		if description == "" {
			description = "Tanky pick against a full AD enemy team"
		}
	} else if magic >= 3 && isFrontline {
		score += 20
		if description == "" {
			description = "Tanky pick against a heavy AP enemy team"
		}
	}

	return domain.ScoringReason{Category: domain.ReasonCounter, Score: score, Description: description}
}

func (e *Engine) counterOf(c domain.Champion, enemyID int) (domain.CounterEdge, bool) {
	for _, edge := range e.kb.CountersFor(c.ID) {
		if edge.ChampionID == enemyID {
			return edge, true
		}
	}
	for _, edge := range c.Counters {
		if edge.ChampionID == enemyID {
			return edge, true
		}
	}
	return domain.CounterEdge{}, false
}

// enemyDamageCounts counts only committed damage types; mixed enemies do
// not push the team towards either itemization answer.
func (e *Engine) enemyDamageCounts(theirTeam []domain.TeamSlot) (physical, magic int) {
	for _, c := range e.teamChampions(theirTeam) {
		switch c.DamageType {
		case domain.DamagePhysical:
			physical++
		case domain.DamageMagic:
			magic++
		}
	}
	return physical, magic
}

// evaluatePowerCurve rewards candidates whose spike timing complements the
// allied team: early pressure for a late-scaling team, scaling for a team
// that already wins early, and teamfight stacking.
func (e *Engine) evaluatePowerCurve(c domain.Champion, myTeam []domain.TeamSlot) domain.ScoringReason {
	allies := e.teamChampions(myTeam)

	early, late, teamfight := 0, 0, 0
	for _, ally := range allies {
		if ally.HasSpike(domain.SpikeEarlyGame) {
			early++
		}
		if ally.HasSpike(domain.SpikeLateGame) {
			late++
		}
		if ally.HasSpike(domain.SpikeTeamfightGod) {
			teamfight++
		}
	}

	score := 0
	description := ""
	switch {
	case late >= 2 && c.HasSpike(domain.SpikeEarlyGame):
		score += 15
		description = "Early pressure while the team scales up"
	case early >= 2 && c.HasSpike(domain.SpikeLateGame):
		score += 15
		description = "Late-game insurance for an early-focused team"
	case teamfight >= 2 && c.HasSpike(domain.SpikeTeamfightGod):
		score += 10
		description = "Stacks the teamfight power this comp is built on"
	}

	if description == "" && c.HasSpike(domain.Spike1v1Beast) && c.HasSpike(domain.SpikeEarlyGame) {
		score += 10
		description = "Strong early duelist - wins lane on their own"
	}

	return domain.ScoringReason{Category: domain.ReasonPowerSpike, Score: score, Description: description}
}

// evaluateProData scores curated high-elo and pro-play statistics, falling
// back to the catalog's embedded stats when no curated entry exists.
func (e *Engine) evaluateProData(c domain.Champion) domain.ScoringReason {
	score := 0
	description := ""

	if ps, ok := e.kb.ProStatsFor(c.ID); ok {
		if ps.WinRate >= 52 {
			score += round((ps.WinRate - 50) * 3)
			description = fmt.Sprintf("%.1f%% win rate in high elo", ps.WinRate)
		}
		switch ps.Tier {
		case domain.TierSPlus:
			score += 15
			if description == "" {
				description = "S+ tier in pro play - a premier pick"
			}
		case domain.TierS:
			score += 10
			if description == "" {
				description = "S tier in pro play"
			}
		case domain.TierA:
			score += 5
			if description == "" {
				description = "A tier in pro play"
			}
		}
		if ps.ProPickRate >= 30 {
			score += 10
			if description == "" {
				description = "Heavily contested in pro play"
			}
		} else if ps.ProPickRate >= 15 {
			score += 5
		}
		if ps.BlindPickSafe {
			score += 5
			if description == "" {
				description = "Safe blind pick"
			}
		}
	} else {
		if c.Stats.WinRate >= 52 {
			score += round((c.Stats.WinRate - 50) * 2)
			description = fmt.Sprintf("%.1f%% win rate", c.Stats.WinRate)
		}
		if c.Stats.Popularity >= 7 {
			score += 5
			if description == "" {
				description = "A staple of the current meta"
			}
		}
	}

	if score > 0 && description == "" {
		description = "Strong pro-play track record"
	}

	return domain.ScoringReason{Category: domain.ReasonProData, Score: score, Description: description}
}

// evaluateCombos rewards completing a known multi-champion combo with the
// picked allies, with a smaller bonus for getting most of a small combo
// assembled.
func (e *Engine) evaluateCombos(c domain.Champion, myTeam []domain.TeamSlot) domain.ScoringReason {
	allyIDs := filledIDs(myTeam)
	allySet := make(map[int]bool, len(allyIDs))
	for _, id := range allyIDs {
		allySet[id] = true
	}

	score := 0
	description := ""
	for _, combo := range e.kb.CombosFor(c.ID) {
		others := 0
		present := 0
		for _, member := range combo.Champions {
			if member == c.ID {
				continue
			}
			others++
			if allySet[member] {
				present++
			}
		}
		if others == 0 {
			continue
		}
		if present == others {
			score += round(float64(combo.Score) / 2.5)
			if description == "" {
				description = fmt.Sprintf("Completes %s: %s", combo.Name, combo.Description)
			}
		} else if present >= 1 && others <= 2 {
			score += round(float64(combo.Score) / 5)
			if description == "" {
				description = fmt.Sprintf("Builds towards %s", combo.Name)
			}
		}
	}

	if c.ID == yasuoID && score == 0 && e.kb.KnockupCount(allyIDs) >= 2 {
		score = 25
		description = "Multiple knockups on the team - constant ult windows"
	}

	return domain.ScoringReason{Category: domain.ReasonWomboCombo, Score: score, Description: description}
}

// evaluateLaneMatchup scores the candidate's direct lane matchups against
// the revealed enemies in the user's role, with a flat penalty when an
// enemy counters the candidate without being countered back. The result
// never goes negative.
func (e *Engine) evaluateLaneMatchup(c domain.Champion, theirTeam []domain.TeamSlot, role domain.Role) domain.ScoringReason {
	score := 0
	description := ""
	enemyIDs := filledIDs(theirTeam)

	for _, enemyID := range enemyIDs {
		edge, ok := e.kb.LaneCounter(role, c.ID, enemyID)
		if !ok {
			continue
		}
		score += round(float64(edge.Score) / 3)
		if description == "" {
			if enemy, found := e.kb.ByID(enemyID); found {
				description = fmt.Sprintf("Wins lane against %s: %s", enemy.Name, edge.Reason)
			} else {
				description = edge.Reason
			}
		}
	}

	for _, enemyID := range enemyIDs {
		_, counteredBy := e.kb.LaneCounter(role, enemyID, c.ID)
		_, counters := e.kb.LaneCounter(role, c.ID, enemyID)
		if counteredBy && !counters {
			score -= laneCounteredPen
			if description == "" {
				if enemy, found := e.kb.ByID(enemyID); found {
					description = fmt.Sprintf("Rough lane against %s", enemy.Name)
				}
			}
			break
		}
	}

	if score < 0 {
		score = 0
	}
	return domain.ScoringReason{Category: domain.ReasonLaneMatchup, Score: score, Description: description}
}

// evaluateLiveMeta scores the candidate's current patch statistics from
// the live provider. Returns a zero reason when no provider is wired or
// the champion has no tracked stats.
func (e *Engine) evaluateLiveMeta(c domain.Champion, role domain.Role) domain.ScoringReason {
	reason := domain.ScoringReason{Category: domain.ReasonLiveMeta}
	if e.meta == nil {
		return reason
	}
	stats, ok := e.meta.StatsFor(c.ID, role)
	if !ok {
		return reason
	}

	score := 0
	description := ""
	tierBonus := 0
	switch stats.Tier {
	case domain.TierSPlus:
		tierBonus = 20
	case domain.TierS:
		tierBonus = 15
	case domain.TierA:
		tierBonus = 8
	case domain.TierB:
		tierBonus = 3
	}
	if tierBonus > 0 {
		score += tierBonus
		description = fmt.Sprintf("%s tier on patch %s", stats.Tier, stats.Patch)
	}

	switch {
	case stats.WinRate >= 53:
		score += 15
	case stats.WinRate >= 52:
		score += 10
	case stats.WinRate >= 51:
		score += 5
	case stats.WinRate < 48:
		score -= 5
	}
	if description == "" && stats.WinRate >= 51 {
		description = fmt.Sprintf("%.1f%% win rate this patch", stats.WinRate)
	}

	if stats.PickRate >= 10 {
		score += 5
	}
	if stats.BanRate >= 20 {
		score += 3
	}

	if score < 0 {
		score = 0
	}
	reason.Score = score
	reason.Description = description
	return reason
}

// mergeLiveMeta folds a live meta reason into the pro data reason: the
// larger score wins and the live description takes precedence. Half the
// raw live score is returned as the extra contribution to the total.
func mergeLiveMeta(reasons []domain.ScoringReason, live domain.ScoringReason) ([]domain.ScoringReason, int) {
	if live.Score <= 0 {
		return reasons, 0
	}
	merged := false
	for i := range reasons {
		if reasons[i].Category != domain.ReasonProData {
			continue
		}
		if live.Score > reasons[i].Score {
			reasons[i].Score = live.Score
		}
		if live.Description != "" {
			reasons[i].Description = live.Description
		}
		merged = true
		break
	}
	if !merged {
		reasons = append(reasons, live)
	}
	return reasons, round(float64(live.Score) / 2)
}

// scoreChampion runs every rule for one candidate and aggregates the
// result. Reasons with no contribution are dropped; the rest are ordered
// by impact.
func (e *Engine) scoreChampion(c domain.Champion, myTeam, theirTeam []domain.TeamSlot, role domain.Role) domain.Recommendation {
	reasons := []domain.ScoringReason{
		e.evaluateComposition(c, myTeam),
		e.evaluateSynergy(c, myTeam),
		e.evaluateCounters(c, theirTeam),
		e.evaluatePowerCurve(c, myTeam),
		e.evaluateProData(c),
		e.evaluateCombos(c, myTeam),
	}
	if role != "" {
		reasons = append(reasons, e.evaluateLaneMatchup(c, theirTeam, role))
	}

	total := 0
	for _, r := range reasons {
		total += r.Score
	}

	live := e.evaluateLiveMeta(c, role)
	var liveBonus int
	reasons, liveBonus = mergeLiveMeta(reasons, live)
	total += liveBonus

	positive := reasons[:0]
	for _, r := range reasons {
		if r.Score > 0 {
			positive = append(positive, r)
		}
	}
	sortReasons(positive)

	return domain.Recommendation{
		ChampionID: c.ID,
		Score:      clampScore(total),
		Reasons:    truncateReasons(positive),
	}
}
