package postgres

import (
	"context"
	"strings"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
	"gorm.io/gorm"
)

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *characterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) GetAll(ctx context.Context) ([]*domain.Character, error) {
	var characters []*domain.Character
	err := r.db.WithContext(ctx).Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *characterRepository) GetByID(ctx context.Context, id string) (*domain.Character, error) {
	var character domain.Character
	err := r.db.WithContext(ctx).First(&character, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &character, nil
}

// GetByNames resolves a name-membership query. Names with no matching
// character are silently absent from the result.
func (r *characterRepository) GetByNames(ctx context.Context, names []string) ([]*domain.Character, error) {
	if len(names) == 0 {
		return []*domain.Character{}, nil
	}
	var characters []*domain.Character
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *characterRepository) Filter(ctx context.Context, filter repository.CharacterFilter) ([]*domain.Character, error) {
	q := r.db.WithContext(ctx)
	if filter.Playstyle != "" {
		q = q.Where("LOWER(playstyle) LIKE ?", "%"+strings.ToLower(filter.Playstyle)+"%")
	}
	if filter.PrimaryStat != "" {
		q = q.Where("LOWER(primary_stat) LIKE ?", "%"+strings.ToLower(filter.PrimaryStat)+"%")
	}

	var characters []*domain.Character
	if err := q.Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *characterRepository) ReplaceAll(ctx context.Context, characters []*domain.Character) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Character{}).Error; err != nil {
			return err
		}
		if len(characters) == 0 {
			return nil
		}
		return tx.Create(characters).Error
	})
}
