package postgres

import (
	"context"
	"errors"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type metaStatsRepository struct {
	db *gorm.DB
}

func NewMetaStatsRepository(db *gorm.DB) *metaStatsRepository {
	return &metaStatsRepository{db: db}
}

func (r *metaStatsRepository) UpsertMany(ctx context.Context, stats []*domain.MetaStatRecord) error {
	if len(stats) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "champion_key"}, {Name: "role"}},
		UpdateAll: true,
	}).Create(stats).Error
}

func (r *metaStatsRepository) GetAll(ctx context.Context) ([]*domain.MetaStatRecord, error) {
	var stats []*domain.MetaStatRecord
	err := r.db.WithContext(ctx).Order("champion_key ASC, role ASC").Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *metaStatsRepository) GetByChampionKey(ctx context.Context, key int) ([]*domain.MetaStatRecord, error) {
	var stats []*domain.MetaStatRecord
	err := r.db.WithContext(ctx).Where("champion_key = ?", key).Order("role ASC").Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *metaStatsRepository) GetLatestPatch(ctx context.Context) (string, error) {
	var record domain.MetaStatRecord
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return record.Patch, nil
}

func (r *metaStatsRepository) DeleteOlderThanPatch(ctx context.Context, patch string) error {
	return r.db.WithContext(ctx).Where("patch <> ?", patch).Delete(&domain.MetaStatRecord{}).Error
}
