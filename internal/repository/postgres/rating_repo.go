package postgres

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *ratingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts or overwrites the rating for the (user_id, boss_id) pair.
// Last write wins, including the timestamp.
func (r *ratingRepository) Upsert(ctx context.Context, rating *domain.UserRating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "boss_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "timestamp"}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetByBossID(ctx context.Context, bossID string) ([]*domain.UserRating, error) {
	var ratings []*domain.UserRating
	err := r.db.WithContext(ctx).Where("boss_id = ?", bossID).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.UserRating{}).Error
}
