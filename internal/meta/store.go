package meta

import (
	"context"
	"fmt"
	"sync"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/repository"
)

// StoreProvider serves meta statistics from the database, refreshed by the
// sync service. Until the first successful Refresh it falls back to the
// bundled snapshot, so the engine always has something to work with.
type StoreProvider struct {
	repo repository.MetaStatsRepository

	mu   sync.RWMutex
	snap *snapshot
}

func NewStoreProvider(repo repository.MetaStatsRepository) *StoreProvider {
	return &StoreProvider{
		repo: repo,
		snap: newSnapshot(bundledStats),
	}
}

// Refresh reloads the full statistics table and swaps it in atomically.
// Readers keep the previous snapshot until the swap.
func (p *StoreProvider) Refresh(ctx context.Context) error {
	records, err := p.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("loading meta stats: %w", err)
	}
	if len(records) == 0 {
		return nil // keep the current snapshot
	}

	entries := make([]Stats, 0, len(records))
	for _, r := range records {
		entries = append(entries, Stats{
			ChampionID: r.ChampionKey,
			Role:       r.Role,
			Tier:       r.Tier,
			WinRate:    r.WinRate,
			PickRate:   r.PickRate,
			BanRate:    r.BanRate,
			Patch:      r.Patch,
		})
	}

	p.mu.Lock()
	p.snap = newSnapshot(entries)
	p.mu.Unlock()
	return nil
}

func (p *StoreProvider) current() *snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

func (p *StoreProvider) StatsFor(championID int, role domain.Role) (Stats, bool) {
	return p.current().StatsFor(championID, role)
}

func (p *StoreProvider) TopBanned(n int) []Stats {
	return p.current().TopBanned(n)
}

func (p *StoreProvider) TopWinRate(role domain.Role, n int) []Stats {
	return p.current().TopWinRate(role, n)
}
