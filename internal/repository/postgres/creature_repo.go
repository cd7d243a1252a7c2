package postgres

import (
	"context"
	"strings"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
	"gorm.io/gorm"
)

type creatureRepository struct {
	db *gorm.DB
}

func NewCreatureRepository(db *gorm.DB) *creatureRepository {
	return &creatureRepository{db: db}
}

func (r *creatureRepository) GetAll(ctx context.Context) ([]*domain.Creature, error) {
	var creatures []*domain.Creature
	err := r.db.WithContext(ctx).Find(&creatures).Error
	if err != nil {
		return nil, err
	}
	return creatures, nil
}

func (r *creatureRepository) GetByID(ctx context.Context, id string) (*domain.Creature, error) {
	var creature domain.Creature
	err := r.db.WithContext(ctx).First(&creature, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &creature, nil
}

func (r *creatureRepository) Filter(ctx context.Context, filter repository.CreatureFilter) ([]*domain.Creature, error) {
	q := r.db.WithContext(ctx)
	if filter.Type != "" {
		q = q.Where("LOWER(type) LIKE ?", "%"+strings.ToLower(filter.Type)+"%")
	}
	if filter.ThreatLevel != "" {
		q = q.Where("LOWER(threat_level) LIKE ?", "%"+strings.ToLower(filter.ThreatLevel)+"%")
	}

	var creatures []*domain.Creature
	if err := q.Find(&creatures).Error; err != nil {
		return nil, err
	}
	return creatures, nil
}

func (r *creatureRepository) ReplaceAll(ctx context.Context, creatures []*domain.Creature) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Creature{}).Error; err != nil {
			return err
		}
		if len(creatures) == 0 {
			return nil
		}
		return tx.Create(creatures).Error
	})
}
