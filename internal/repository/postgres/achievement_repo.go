package postgres

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"gorm.io/gorm"
)

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *achievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) GetAll(ctx context.Context) ([]*domain.Achievement, error) {
	var achievements []*domain.Achievement
	err := r.db.WithContext(ctx).Order("rank ASC").Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	var achievement domain.Achievement
	err := r.db.WithContext(ctx).First(&achievement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *achievementRepository) ReplaceAll(ctx context.Context, achievements []*domain.Achievement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Achievement{}).Error; err != nil {
			return err
		}
		if len(achievements) == 0 {
			return nil
		}
		return tx.Create(achievements).Error
	})
}
