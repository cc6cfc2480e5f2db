package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/repository/postgres"
	"github.com/kaanyalova/draft-advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaStatsRepository_UpsertMany(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMetaStatsRepository(testDB.DB)
	ctx := context.Background()

	stats := []*domain.MetaStatRecord{
		{ChampionKey: 157, Role: domain.RoleMid, Tier: domain.TierA, WinRate: 49.8, PickRate: 15.0, BanRate: 22.1, Patch: "14.18", UpdatedAt: time.Now()},
		{ChampionKey: 157, Role: domain.RoleTop, Tier: domain.TierB, WinRate: 48.9, PickRate: 5.0, BanRate: 22.1, Patch: "14.18", UpdatedAt: time.Now()},
	}
	require.NoError(t, repo.UpsertMany(ctx, stats))

	// Upserting the same champion/role pair updates in place
	stats[0].WinRate = 51.2
	stats[0].ID = 0
	require.NoError(t, repo.UpsertMany(ctx, stats[:1]))

	got, err := repo.GetByChampionKey(ctx, 157)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, s := range got {
		if s.Role == domain.RoleMid {
			assert.Equal(t, 51.2, s.WinRate)
		}
	}
}

func TestMetaStatsRepository_EmptyUpsertIsNoop(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMetaStatsRepository(testDB.DB)

	assert.NoError(t, repo.UpsertMany(context.Background(), nil))
}

func TestMetaStatsRepository_PatchLifecycle(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMetaStatsRepository(testDB.DB)
	ctx := context.Background()

	old := []*domain.MetaStatRecord{
		{ChampionKey: 64, Role: domain.RoleJungle, Tier: domain.TierS, WinRate: 49.5, Patch: "14.17", UpdatedAt: time.Now().Add(-time.Hour)},
	}
	current := []*domain.MetaStatRecord{
		{ChampionKey: 238, Role: domain.RoleMid, Tier: domain.TierS, WinRate: 50.9, Patch: "14.18", UpdatedAt: time.Now()},
	}
	require.NoError(t, repo.UpsertMany(ctx, old))
	require.NoError(t, repo.UpsertMany(ctx, current))

	patch, err := repo.GetLatestPatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "14.18", patch)

	require.NoError(t, repo.DeleteOlderThanPatch(ctx, "14.18"))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 238, all[0].ChampionKey)
}

func TestMetaStatsRepository_GetLatestPatchEmpty(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMetaStatsRepository(testDB.DB)

	patch, err := repo.GetLatestPatch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patch)
}
