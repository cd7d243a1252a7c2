package postgres

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"gorm.io/gorm"
)

type walkthroughRepository struct {
	db *gorm.DB
}

func NewWalkthroughRepository(db *gorm.DB) *walkthroughRepository {
	return &walkthroughRepository{db: db}
}

func (r *walkthroughRepository) GetAll(ctx context.Context) ([]*domain.Walkthrough, error) {
	var walkthroughs []*domain.Walkthrough
	err := r.db.WithContext(ctx).Find(&walkthroughs).Error
	if err != nil {
		return nil, err
	}
	return walkthroughs, nil
}

// GetByCharacter matches the character name exactly, case sensitive.
func (r *walkthroughRepository) GetByCharacter(ctx context.Context, character string) (*domain.Walkthrough, error) {
	var walkthrough domain.Walkthrough
	err := r.db.WithContext(ctx).First(&walkthrough, "character = ?", character).Error
	if err != nil {
		return nil, err
	}
	return &walkthrough, nil
}

func (r *walkthroughRepository) ReplaceAll(ctx context.Context, walkthroughs []*domain.Walkthrough) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Walkthrough{}).Error; err != nil {
			return err
		}
		if len(walkthroughs) == 0 {
			return nil
		}
		return tx.Create(walkthroughs).Error
	})
}
