package postgres

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"gorm.io/gorm"
)

type buildRepository struct {
	db *gorm.DB
}

func NewBuildRepository(db *gorm.DB) *buildRepository {
	return &buildRepository{db: db}
}

func (r *buildRepository) GetAll(ctx context.Context) ([]*domain.Build, error) {
	var builds []*domain.Build
	err := r.db.WithContext(ctx).Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

func (r *buildRepository) GetByID(ctx context.Context, id string) (*domain.Build, error) {
	var build domain.Build
	err := r.db.WithContext(ctx).First(&build, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &build, nil
}

func (r *buildRepository) GetByNames(ctx context.Context, names []string) ([]*domain.Build, error) {
	if len(names) == 0 {
		return []*domain.Build{}, nil
	}
	var builds []*domain.Build
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

func (r *buildRepository) ReplaceAll(ctx context.Context, builds []*domain.Build) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Build{}).Error; err != nil {
			return err
		}
		if len(builds) == 0 {
			return nil
		}
		return tx.Create(builds).Error
	})
}
