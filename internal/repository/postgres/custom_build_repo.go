package postgres

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"gorm.io/gorm"
)

type customBuildRepository struct {
	db *gorm.DB
}

func NewCustomBuildRepository(db *gorm.DB) *customBuildRepository {
	return &customBuildRepository{db: db}
}

func (r *customBuildRepository) Create(ctx context.Context, build *domain.CustomBuild) error {
	return r.db.WithContext(ctx).Create(build).Error
}

func (r *customBuildRepository) GetAll(ctx context.Context) ([]*domain.CustomBuild, error) {
	var builds []*domain.CustomBuild
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

func (r *customBuildRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.CustomBuild{}).Error
}
