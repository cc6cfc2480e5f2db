package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/repository/postgres"
	"github.com/kaanyalova/draft-advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestChampionRepository_Upsert(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	tagsJSON, _ := json.Marshal([]string{"Fighter", "Tank"})
	champion := &domain.ChampionRecord{
		ID:           "Aatrox",
		Key:          266,
		Name:         "Aatrox",
		Title:        "The Darkin Blade",
		ImageURL:     "https://example.com/aatrox.png",
		Tags:         datatypes.JSON(tagsJSON),
		LastSyncedAt: time.Now(),
	}

	// Create
	err := repo.Upsert(ctx, champion)
	require.NoError(t, err)

	// Verify creation
	got, err := repo.GetByID(ctx, "Aatrox")
	require.NoError(t, err)
	assert.Equal(t, "Aatrox", got.Name)
	assert.Equal(t, 266, got.Key)

	// Update
	champion.Title = "The World Ender"
	err = repo.Upsert(ctx, champion)
	require.NoError(t, err)

	// Verify update
	got, err = repo.GetByID(ctx, "Aatrox")
	require.NoError(t, err)
	assert.Equal(t, "The World Ender", got.Title)
}

func TestChampionRepository_GetByKey(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	testutil.SeedChampions(t, testDB.DB, 3)

	got, err := repo.GetByKey(ctx, 1002)
	require.NoError(t, err)
	assert.Equal(t, "TestChamp2", got.ID)

	_, err = repo.GetByKey(ctx, 9999)
	assert.Error(t, err)
}

func TestChampionRepository_UpsertMany(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	tags, _ := json.Marshal([]string{"Mage"})
	champions := []*domain.ChampionRecord{
		{ID: "Ahri", Key: 103, Name: "Ahri", ImageURL: "https://example.com/ahri.png", Tags: tags, LastSyncedAt: time.Now()},
		{ID: "Zed", Key: 238, Name: "Zed", ImageURL: "https://example.com/zed.png", Tags: tags, LastSyncedAt: time.Now()},
	}

	require.NoError(t, repo.UpsertMany(ctx, champions))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// Ordered by name
	assert.Equal(t, "Ahri", all[0].Name)
	assert.Equal(t, "Zed", all[1].Name)
}
