package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

func TestBanRecommendations_Ranking(t *testing.T) {
	e := newTestEngine(t)

	snap := domain.DraftSnapshot{
		UserRole: domain.RoleMid,
		MyTeam:   []domain.TeamSlot{slot(domain.RoleADC, dran)},
	}
	recs := e.BanRecommendations(snap)
	require.NotEmpty(t, recs)

	// Vexa stacks win rate, pick rate, ban rate, the priority list and a
	// same-role bonus; nothing else comes close.
	assert.Equal(t, vexa, recs[0].ChampionID)
	assert.Equal(t, 60, recs[0].Score)

	assert.LessOrEqual(t, len(recs), maxBanResults)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
	for _, rec := range recs {
		assert.Positive(t, rec.Score, "only positive threat scores are surfaced")
		assert.LessOrEqual(t, rec.Score, 100)
	}
}

func TestBanRecommendations_ExcludesUnavailable(t *testing.T) {
	e := newTestEngine(t)

	snap := domain.DraftSnapshot{
		UserRole:      domain.RoleMid,
		MyTeam:        []domain.TeamSlot{slot(domain.RoleADC, dran)},
		TheirTeam:     []domain.TeamSlot{slot(domain.RoleMid, shade)},
		MyTeamBans:    []int{vexa},
		TheirTeamBans: []int{yasuo},
	}
	recs := e.BanRecommendations(snap)

	for _, rec := range recs {
		assert.NotContains(t, []int{dran, shade, vexa, yasuo}, rec.ChampionID)
	}
}

func TestBanRecommendations_SynergyBreaker(t *testing.T) {
	e := newTestEngine(t)

	snap := domain.DraftSnapshot{
		MyTeam: []domain.TeamSlot{slot(domain.RoleADC, dran)},
	}
	recs := e.BanRecommendations(snap)

	var kessRec *domain.Recommendation
	for i := range recs {
		if recs[i].ChampionID == kess {
			kessRec = &recs[i]
		}
	}
	require.NotNil(t, kessRec, "the champion that breaks Dran's plan should be flagged")

	found := false
	for _, r := range kessRec.Reasons {
		if r.Category == domain.ReasonSynergy {
			found = true
			assert.Equal(t, 30, r.Score)
			assert.Contains(t, r.Description, "Dran")
		}
	}
	assert.True(t, found)
}

func TestBanRecommendations_RoleThreat(t *testing.T) {
	e := newTestEngine(t)

	withRole := e.BanRecommendations(domain.DraftSnapshot{UserRole: domain.RoleMid})
	without := e.BanRecommendations(domain.DraftSnapshot{})

	scoreOf := func(recs []domain.Recommendation, id int) int {
		for _, rec := range recs {
			if rec.ChampionID == id {
				return rec.Score
			}
		}
		return 0
	}

	// Shade is a curated mid-lane terror: the role bonus only applies when
	// the user actually plays mid.
	assert.Equal(t, 35, scoreOf(withRole, shade))
	assert.Equal(t, 10, scoreOf(without, shade))
}
