package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedChampions inserts n synthetic champion records
func SeedChampions(t *testing.T, db *gorm.DB, n int) []*domain.ChampionRecord {
	t.Helper()

	champions := make([]*domain.ChampionRecord, 0, n)
	for i := 1; i <= n; i++ {
		tags, _ := json.Marshal([]string{"Fighter"})
		c := &domain.ChampionRecord{
			ID:           fmt.Sprintf("TestChamp%d", i),
			Key:          1000 + i,
			Name:         fmt.Sprintf("Test Champ %d", i),
			Title:        "the Test Subject",
			ImageURL:     fmt.Sprintf("https://example.com/champ%d.png", i),
			Tags:         datatypes.JSON(tags),
			LastSyncedAt: time.Now(),
		}
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("failed to seed champion %d: %v", i, err)
		}
		champions = append(champions, c)
	}
	return champions
}

// SeedMetaStats inserts meta stat rows for the given champion keys
func SeedMetaStats(t *testing.T, db *gorm.DB, patch string, keys ...int) []*domain.MetaStatRecord {
	t.Helper()

	stats := make([]*domain.MetaStatRecord, 0, len(keys))
	for i, key := range keys {
		s := &domain.MetaStatRecord{
			ChampionKey: key,
			Role:        domain.AllRoles[i%len(domain.AllRoles)],
			Tier:        domain.TierA,
			WinRate:     50.0 + float64(i),
			PickRate:    5.0 + float64(i),
			BanRate:     2.0 + float64(i),
			Patch:       patch,
			UpdatedAt:   time.Now(),
		}
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("failed to seed meta stats for %d: %v", key, err)
		}
		stats = append(stats, s)
	}
	return stats
}

// SnapshotBuilder assembles draft snapshots for tests
type SnapshotBuilder struct {
	snap domain.DraftSnapshot
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		snap: domain.DraftSnapshot{Phase: domain.PhasePicking},
	}
}

func (b *SnapshotBuilder) WithPhase(phase domain.DraftPhase) *SnapshotBuilder {
	b.snap.Phase = phase
	return b
}

func (b *SnapshotBuilder) WithUserRole(role domain.Role) *SnapshotBuilder {
	b.snap.UserRole = role
	return b
}

func (b *SnapshotBuilder) WithAlly(role domain.Role, championID int) *SnapshotBuilder {
	b.snap.MyTeam = append(b.snap.MyTeam, domain.TeamSlot{Role: role, ChampionID: championID})
	return b
}

func (b *SnapshotBuilder) WithEnemy(role domain.Role, championID int) *SnapshotBuilder {
	b.snap.TheirTeam = append(b.snap.TheirTeam, domain.TeamSlot{Role: role, ChampionID: championID})
	return b
}

func (b *SnapshotBuilder) WithBans(mine []int, theirs []int) *SnapshotBuilder {
	b.snap.MyTeamBans = mine
	b.snap.TheirTeamBans = theirs
	return b
}

func (b *SnapshotBuilder) WithUserIntent(championID int) *SnapshotBuilder {
	b.snap.UserIntent = &domain.PickIntent{ChampionID: championID, Source: domain.IntentDeclared}
	return b
}

func (b *SnapshotBuilder) WithTeamIntent(championID int) *SnapshotBuilder {
	b.snap.TeamIntents = append(b.snap.TeamIntents, domain.PickIntent{
		ChampionID: championID,
		Source:     domain.IntentInferred,
	})
	return b
}

func (b *SnapshotBuilder) Build() domain.DraftSnapshot {
	return b.snap
}
