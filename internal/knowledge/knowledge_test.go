package knowledge_test

import (
	"testing"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsAndIndexes(t *testing.T) {
	kb, err := knowledge.Default()
	require.NoError(t, err)

	assert.NotEmpty(t, kb.All())

	// Every role has eligible champions
	for _, role := range domain.AllRoles {
		assert.NotEmpty(t, kb.ByRole(role), "no champions for role %s", role)
	}

	// Catalog is sorted by id for deterministic iteration
	all := kb.All()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	yasuo, ok := kb.ByID(157)
	require.True(t, ok)
	assert.Equal(t, "Yasuo", yasuo.Name)
	assert.True(t, yasuo.HasRole(domain.RoleMid))

	_, ok = kb.ByID(999999)
	assert.False(t, ok)
}

func TestNew_RejectsDanglingIDs(t *testing.T) {
	base := []domain.Champion{
		{ID: 1, Name: "Annie", Roles: []domain.Role{domain.RoleMid}, DamageType: domain.DamageMagic},
	}

	tests := []struct {
		name string
		ds   knowledge.Dataset
	}{
		{
			name: "synergy edge to unknown champion",
			ds: knowledge.Dataset{
				Champions: base,
				Synergies: map[int][]domain.SynergyEdge{1: {{ChampionID: 42, Score: 50}}},
			},
		},
		{
			name: "capability list with unknown champion",
			ds: knowledge.Dataset{
				Champions:  base,
				HardEngage: []int{42},
			},
		},
		{
			name: "combo with unknown champion",
			ds: knowledge.Dataset{
				Champions: base,
				Combos:    []knowledge.Combo{{Name: "ghost", Champions: []int{1, 42}}},
			},
		},
		{
			name: "counter ban for unknown intent",
			ds: knowledge.Dataset{
				Champions:   base,
				CounterBans: map[int][]knowledge.CounterBan{42: {{ChampionID: 1, WinRate: 55}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := knowledge.New(tt.ds)
			assert.Error(t, err)
		})
	}
}

func TestNew_RejectsInvalidChampions(t *testing.T) {
	_, err := knowledge.New(knowledge.Dataset{
		Champions: []domain.Champion{{ID: 1, Name: "NoRoles"}},
	})
	assert.Error(t, err, "champion without roles must be rejected")

	_, err = knowledge.New(knowledge.Dataset{
		Champions: []domain.Champion{
			{ID: 1, Name: "A", Roles: []domain.Role{domain.RoleMid}},
			{ID: 1, Name: "B", Roles: []domain.Role{domain.RoleTop}},
		},
	})
	assert.Error(t, err, "duplicate ids must be rejected")
}

func TestLaneCounter(t *testing.T) {
	kb, err := knowledge.Default()
	require.NoError(t, err)

	// Malzahar beats Zed mid
	edge, ok := kb.LaneCounter(domain.RoleMid, 90, 238)
	require.True(t, ok)
	assert.Equal(t, 90, edge.ChampionID)
	assert.Greater(t, edge.Score, 0)

	// Not the other way around
	_, ok = kb.LaneCounter(domain.RoleMid, 238, 90)
	assert.False(t, ok)

	// Role scoping: the mid matchup does not exist in the top table
	_, ok = kb.LaneCounter(domain.RoleADC, 90, 238)
	assert.False(t, ok)
}

func TestTeamNeeds(t *testing.T) {
	kb, err := knowledge.Default()
	require.NoError(t, err)

	// Zed, Caitlyn, Draven: no engage, no frontline, no peel
	squishy := []int{238, 51, 119}
	assert.True(t, kb.TeamNeedsEngage(squishy))
	assert.True(t, kb.TeamNeedsFrontline(squishy))
	assert.True(t, kb.TeamNeedsPeel(squishy))

	// Malphite covers engage and frontline, Lulu covers peel
	assert.False(t, kb.TeamNeedsEngage([]int{54, 51}))
	assert.False(t, kb.TeamNeedsFrontline([]int{54, 51}))
	assert.False(t, kb.TeamNeedsPeel([]int{117, 51}))

	// Empty team needs everything
	assert.True(t, kb.TeamNeedsEngage(nil))
}

func TestKnockupCount(t *testing.T) {
	kb, err := knowledge.Default()
	require.NoError(t, err)

	assert.Equal(t, 2, kb.KnockupCount([]int{54, 89, 238}))
	assert.Equal(t, 0, kb.KnockupCount([]int{238, 51}))
}
