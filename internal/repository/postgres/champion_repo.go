package postgres

import (
	"context"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

func (r *championRepository) Upsert(ctx context.Context, champion *domain.ChampionRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(champion).Error
}

func (r *championRepository) UpsertMany(ctx context.Context, champions []*domain.ChampionRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(champions).Error
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.ChampionRecord, error) {
	var champions []*domain.ChampionRecord
	err := r.db.WithContext(ctx).Order("name ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) GetByID(ctx context.Context, id string) (*domain.ChampionRecord, error) {
	var champion domain.ChampionRecord
	err := r.db.WithContext(ctx).First(&champion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &champion, nil
}

func (r *championRepository) GetByKey(ctx context.Context, key int) (*domain.ChampionRecord, error) {
	var champion domain.ChampionRecord
	err := r.db.WithContext(ctx).First(&champion, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &champion, nil
}
