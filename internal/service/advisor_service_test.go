package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/knowledge"
	"github.com/kaanyalova/draft-advisor/internal/meta"
)

func newTestAdvisor(t *testing.T) *AdvisorService {
	t.Helper()
	kb, err := knowledge.Default()
	require.NoError(t, err)
	return NewAdvisorService(kb, meta.NewStaticProvider())
}

func TestAdvisorService_PickSuggestions(t *testing.T) {
	svc := newTestAdvisor(t)
	ctx := context.Background()

	t.Run("active draft returns ranked suggestions", func(t *testing.T) {
		recs, err := svc.PickSuggestions(ctx, domain.DraftSnapshot{Phase: domain.PhasePicking})
		require.NoError(t, err)
		require.NotEmpty(t, recs)
		for _, rec := range recs {
			assert.GreaterOrEqual(t, rec.Score, 0)
			assert.LessOrEqual(t, rec.Score, 100)
		}
	})

	t.Run("unknown phase propagates the sentinel", func(t *testing.T) {
		_, err := svc.PickSuggestions(ctx, domain.DraftSnapshot{Phase: "scrims"})
		assert.ErrorIs(t, err, domain.ErrUnknownPhase)
	})
}

func TestAdvisorService_BanSuggestions(t *testing.T) {
	svc := newTestAdvisor(t)
	ctx := context.Background()

	recs, err := svc.BanSuggestions(ctx, domain.DraftSnapshot{Phase: domain.PhaseBanning, UserRole: domain.RoleMid})
	require.NoError(t, err)
	assert.NotEmpty(t, recs)

	_, err = svc.BanSuggestions(ctx, domain.DraftSnapshot{Phase: "scrims"})
	assert.ErrorIs(t, err, domain.ErrUnknownPhase)
}

func TestAdvisorService_SmartBanSuggestions(t *testing.T) {
	svc := newTestAdvisor(t)
	ctx := context.Background()

	snap := domain.DraftSnapshot{
		Phase:      domain.PhaseBanning,
		UserIntent: &domain.PickIntent{ChampionID: 157, Source: domain.IntentDeclared},
	}
	recs, err := svc.SmartBanSuggestions(ctx, snap)
	require.NoError(t, err)
	assert.NotEmpty(t, recs)
}

func TestAdvisorService_Catalog(t *testing.T) {
	svc := newTestAdvisor(t)

	t.Run("filters by role", func(t *testing.T) {
		mids, err := svc.CatalogChampions(domain.RoleMid)
		require.NoError(t, err)
		require.NotEmpty(t, mids)
		for _, c := range mids {
			assert.True(t, c.HasRole(domain.RoleMid))
		}
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		_, err := svc.CatalogChampions("feeder")
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("looks up by id", func(t *testing.T) {
		c, err := svc.CatalogChampion(157)
		require.NoError(t, err)
		assert.Equal(t, "Yasuo", c.Name)

		_, err = svc.CatalogChampion(99999)
		assert.ErrorIs(t, err, domain.ErrChampionNotFound)
	})
}

func TestAdvisorService_RefreshMeta(t *testing.T) {
	svc := newTestAdvisor(t)
	// the static provider cannot refresh; this must be a silent no-op
	assert.NoError(t, svc.RefreshMeta(context.Background()))
}
