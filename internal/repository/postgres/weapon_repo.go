package postgres

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"gorm.io/gorm"
)

type weaponSkillRepository struct {
	db *gorm.DB
}

func NewWeaponSkillRepository(db *gorm.DB) *weaponSkillRepository {
	return &weaponSkillRepository{db: db}
}

func (r *weaponSkillRepository) GetAll(ctx context.Context) ([]*domain.WeaponSkill, error) {
	var skills []*domain.WeaponSkill
	err := r.db.WithContext(ctx).Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *weaponSkillRepository) ReplaceAll(ctx context.Context, skills []*domain.WeaponSkill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.WeaponSkill{}).Error; err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}
		return tx.Create(skills).Error
	})
}

type weaponPassiveRepository struct {
	db *gorm.DB
}

func NewWeaponPassiveRepository(db *gorm.DB) *weaponPassiveRepository {
	return &weaponPassiveRepository{db: db}
}

func (r *weaponPassiveRepository) GetAll(ctx context.Context) ([]*domain.WeaponPassive, error) {
	var passives []*domain.WeaponPassive
	err := r.db.WithContext(ctx).Find(&passives).Error
	if err != nil {
		return nil, err
	}
	return passives, nil
}

func (r *weaponPassiveRepository) ReplaceAll(ctx context.Context, passives []*domain.WeaponPassive) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.WeaponPassive{}).Error; err != nil {
			return err
		}
		if len(passives) == 0 {
			return nil
		}
		return tx.Create(passives).Error
	})
}
