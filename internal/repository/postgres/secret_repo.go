package postgres

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"gorm.io/gorm"
)

type secretRepository struct {
	db *gorm.DB
}

func NewSecretRepository(db *gorm.DB) *secretRepository {
	return &secretRepository{db: db}
}

func (r *secretRepository) GetAll(ctx context.Context) ([]*domain.Secret, error) {
	var secrets []*domain.Secret
	err := r.db.WithContext(ctx).Find(&secrets).Error
	if err != nil {
		return nil, err
	}
	return secrets, nil
}

func (r *secretRepository) GetByID(ctx context.Context, id string) (*domain.Secret, error) {
	var secret domain.Secret
	err := r.db.WithContext(ctx).First(&secret, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &secret, nil
}

func (r *secretRepository) ReplaceAll(ctx context.Context, secrets []*domain.Secret) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Secret{}).Error; err != nil {
			return err
		}
		if len(secrets) == 0 {
			return nil
		}
		return tx.Create(secrets).Error
	})
}
