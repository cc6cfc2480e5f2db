package meta

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

func testEntries() []Stats {
	return []Stats{
		{ChampionID: 1, Role: domain.RoleMid, Tier: domain.TierS, WinRate: 52.0, PickRate: 10.0, BanRate: 12.0, Patch: "14.18"},
		{ChampionID: 1, Role: domain.RoleTop, Tier: domain.TierA, WinRate: 50.0, PickRate: 4.0, BanRate: 12.0, Patch: "14.18"},
		{ChampionID: 2, Role: domain.RoleMid, Tier: domain.TierSPlus, WinRate: 53.5, PickRate: 14.0, BanRate: 25.0, Patch: "14.18"},
		{ChampionID: 3, Role: domain.RoleJungle, Tier: domain.TierB, WinRate: 49.0, PickRate: 6.0, BanRate: 3.0, Patch: "14.18"},
	}
}

func TestStatsFor(t *testing.T) {
	p := NewProviderFromStats(testEntries())

	t.Run("prefers the requested role", func(t *testing.T) {
		stats, ok := p.StatsFor(1, domain.RoleTop)
		require.True(t, ok)
		assert.Equal(t, domain.TierA, stats.Tier)
	})

	t.Run("falls back to any role entry", func(t *testing.T) {
		stats, ok := p.StatsFor(1, domain.RoleSupport)
		require.True(t, ok)
		assert.Equal(t, 1, stats.ChampionID)
	})

	t.Run("empty role returns the first entry", func(t *testing.T) {
		_, ok := p.StatsFor(2, "")
		assert.True(t, ok)
	})

	t.Run("unknown champion", func(t *testing.T) {
		_, ok := p.StatsFor(99, domain.RoleMid)
		assert.False(t, ok)
	})
}

func TestTopBanned(t *testing.T) {
	p := NewProviderFromStats(testEntries())

	top := p.TopBanned(2)
	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].ChampionID)
	// Both entries for champion 1 share a ban rate; ascending id breaks
	// the tie so repeated calls agree.
	assert.Equal(t, 1, top[1].ChampionID)
}

func TestTopWinRate(t *testing.T) {
	p := NewProviderFromStats(testEntries())

	t.Run("scoped to a role", func(t *testing.T) {
		top := p.TopWinRate(domain.RoleMid, 5)
		require.Len(t, top, 2)
		assert.Equal(t, 2, top[0].ChampionID)
		assert.Equal(t, 1, top[1].ChampionID)
	})

	t.Run("unscoped covers every entry", func(t *testing.T) {
		top := p.TopWinRate("", 1)
		require.Len(t, top, 1)
		assert.Equal(t, 53.5, top[0].WinRate)
	})
}

type fakeMetaStatsRepo struct {
	records []*domain.MetaStatRecord
	err     error
}

func (f *fakeMetaStatsRepo) UpsertMany(context.Context, []*domain.MetaStatRecord) error {
	return f.err
}

func (f *fakeMetaStatsRepo) GetAll(context.Context) ([]*domain.MetaStatRecord, error) {
	return f.records, f.err
}

func (f *fakeMetaStatsRepo) GetByChampionKey(context.Context, int) ([]*domain.MetaStatRecord, error) {
	return nil, f.err
}

func (f *fakeMetaStatsRepo) GetLatestPatch(context.Context) (string, error) {
	return "", f.err
}

func (f *fakeMetaStatsRepo) DeleteOlderThanPatch(context.Context, string) error {
	return f.err
}

func TestStoreProvider_Refresh(t *testing.T) {
	repo := &fakeMetaStatsRepo{
		records: []*domain.MetaStatRecord{
			{ChampionKey: 42, Role: domain.RoleMid, Tier: domain.TierSPlus, WinRate: 54.0, PickRate: 12.0, BanRate: 30.0, Patch: "14.19"},
		},
	}
	p := NewStoreProvider(repo)

	// Before refresh the bundled snapshot answers
	_, ok := p.StatsFor(42, domain.RoleMid)
	assert.False(t, ok)

	require.NoError(t, p.Refresh(context.Background()))

	stats, ok := p.StatsFor(42, domain.RoleMid)
	require.True(t, ok)
	assert.Equal(t, "14.19", stats.Patch)

	top := p.TopBanned(1)
	require.Len(t, top, 1)
	assert.Equal(t, 42, top[0].ChampionID)
}

func TestStoreProvider_RefreshKeepsSnapshotWhenEmpty(t *testing.T) {
	p := NewStoreProvider(&fakeMetaStatsRepo{})
	require.NoError(t, p.Refresh(context.Background()))

	// The bundled snapshot is still live
	_, ok := p.StatsFor(157, domain.RoleMid)
	assert.True(t, ok)
}
