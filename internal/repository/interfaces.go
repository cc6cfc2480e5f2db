package repository

import (
	"context"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

type ChampionRepository interface {
	Upsert(ctx context.Context, champion *domain.ChampionRecord) error
	UpsertMany(ctx context.Context, champions []*domain.ChampionRecord) error
	GetAll(ctx context.Context) ([]*domain.ChampionRecord, error)
	GetByID(ctx context.Context, id string) (*domain.ChampionRecord, error)
	GetByKey(ctx context.Context, key int) (*domain.ChampionRecord, error)
}

type MetaStatsRepository interface {
	UpsertMany(ctx context.Context, stats []*domain.MetaStatRecord) error
	GetAll(ctx context.Context) ([]*domain.MetaStatRecord, error)
	GetByChampionKey(ctx context.Context, key int) ([]*domain.MetaStatRecord, error)
	GetLatestPatch(ctx context.Context) (string, error)
	DeleteOlderThanPatch(ctx context.Context, patch string) error
}

type Repositories struct {
	Champion  ChampionRepository
	MetaStats MetaStatsRepository
}
