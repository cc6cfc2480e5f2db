package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

func TestPickRecommendations_PhaseHandling(t *testing.T) {
	e := newTestEngine(t)

	t.Run("outside a draft returns an empty list", func(t *testing.T) {
		recs, err := e.PickRecommendations(domain.DraftSnapshot{Phase: domain.PhaseNone})
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("unknown phase is an error", func(t *testing.T) {
		_, err := e.PickRecommendations(domain.DraftSnapshot{Phase: "lobby"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownPhase)
	})

	t.Run("every draft phase produces results", func(t *testing.T) {
		for _, phase := range []domain.DraftPhase{
			domain.PhasePlanning, domain.PhaseBanning, domain.PhasePicking, domain.PhaseFinalization,
		} {
			recs, err := e.PickRecommendations(domain.DraftSnapshot{Phase: phase})
			require.NoError(t, err)
			assert.NotEmpty(t, recs, "phase %s", phase)
		}
	})
}

func TestPickRecommendations_Availability(t *testing.T) {
	e := newTestEngine(t)

	snap := domain.DraftSnapshot{
		Phase:         domain.PhasePicking,
		MyTeam:        []domain.TeamSlot{slot(domain.RoleADC, dran)},
		TheirTeam:     []domain.TeamSlot{slot(domain.RoleMid, shade)},
		MyTeamBans:    []int{yasuo},
		TheirTeamBans: []int{vexa},
	}
	recs, err := e.PickRecommendations(snap)
	require.NoError(t, err)

	for _, rec := range recs {
		assert.NotContains(t, []int{dran, shade, yasuo, vexa}, rec.ChampionID,
			"banned and picked champions must never be recommended")
	}
}

func TestPickRecommendations_RoleFilter(t *testing.T) {
	e := newTestEngine(t)

	snap := domain.DraftSnapshot{Phase: domain.PhasePicking, UserRole: domain.RoleMid}
	recs, err := e.PickRecommendations(snap)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	for _, rec := range recs {
		c, ok := e.kb.ByID(rec.ChampionID)
		require.True(t, ok)
		assert.True(t, c.HasRole(domain.RoleMid), "%s cannot play mid", c.Name)
	}
}

func TestPickRecommendations_Ranking(t *testing.T) {
	e := newTestEngine(t)

	snap := domain.DraftSnapshot{Phase: domain.PhasePicking}
	recs, err := e.PickRecommendations(snap)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(recs), maxPickResults)
	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		if prev.Score == cur.Score {
			assert.Less(t, prev.ChampionID, cur.ChampionID, "ties break by id")
		} else {
			assert.Greater(t, prev.Score, cur.Score)
		}
	}
	for _, rec := range recs {
		assert.GreaterOrEqual(t, rec.Score, 0)
		assert.LessOrEqual(t, rec.Score, 100)
		assert.LessOrEqual(t, len(rec.Reasons), maxReasonsShown)
	}
}

func TestPickRecommendations_Deterministic(t *testing.T) {
	e := newTestEngine(t)

	snap := domain.DraftSnapshot{
		Phase:     domain.PhasePicking,
		MyTeam:    []domain.TeamSlot{slot(domain.RoleADC, dran), slot(domain.RoleSupport, lum)},
		TheirTeam: []domain.TeamSlot{slot(domain.RoleMid, shade)},
		UserRole:  domain.RoleTop,
	}

	first, err := e.PickRecommendations(snap)
	require.NoError(t, err)
	second, err := e.PickRecommendations(snap)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPickRecommendations_GapScenario(t *testing.T) {
	e := newTestEngine(t)

	// All-physical team with no engage, no frontline and no tank: the
	// catalog tank should surface at the top on composition alone.
	snap := domain.DraftSnapshot{
		Phase: domain.PhasePicking,
		MyTeam: []domain.TeamSlot{
			slot(domain.RoleADC, dran),
			slot(domain.RoleJungle, kess),
			slot(domain.RoleMid, ryn),
		},
	}
	recs, err := e.PickRecommendations(snap)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	assert.Equal(t, malthar, recs[0].ChampionID)
	assert.GreaterOrEqual(t, recs[0].Score, 55)
}
