package postgres

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
	"gorm.io/gorm"
)

type bossRepository struct {
	db *gorm.DB
}

func NewBossRepository(db *gorm.DB) *bossRepository {
	return &bossRepository{db: db}
}

func (r *bossRepository) GetAll(ctx context.Context) ([]*domain.Boss, error) {
	var bosses []*domain.Boss
	err := r.db.WithContext(ctx).Find(&bosses).Error
	if err != nil {
		return nil, err
	}
	return bosses, nil
}

func (r *bossRepository) GetByID(ctx context.Context, id string) (*domain.Boss, error) {
	var boss domain.Boss
	err := r.db.WithContext(ctx).First(&boss, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &boss, nil
}

func (r *bossRepository) Filter(ctx context.Context, filter repository.BossFilter) ([]*domain.Boss, error) {
	q := r.db.WithContext(ctx)
	if filter.MinDifficulty != nil {
		q = q.Where("difficulty_rating >= ?", *filter.MinDifficulty)
	}
	if filter.MaxDifficulty != nil {
		q = q.Where("difficulty_rating <= ?", *filter.MaxDifficulty)
	}
	if filter.MinLevel != nil {
		q = q.Where("min_level >= ?", *filter.MinLevel)
	}
	if filter.MaxLevel != nil {
		q = q.Where("max_level <= ?", *filter.MaxLevel)
	}

	var bosses []*domain.Boss
	if err := q.Find(&bosses).Error; err != nil {
		return nil, err
	}
	return bosses, nil
}

func (r *bossRepository) ReplaceAll(ctx context.Context, bosses []*domain.Boss) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Boss{}).Error; err != nil {
			return err
		}
		if len(bosses) == 0 {
			return nil
		}
		return tx.Create(bosses).Error
	})
}
