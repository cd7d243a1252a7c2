package service

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
)

type SecretService struct {
	secretRepo repository.SecretRepository
}

func NewSecretService(secretRepo repository.SecretRepository) *SecretService {
	return &SecretService{secretRepo: secretRepo}
}

func (s *SecretService) GetAllSecrets(ctx context.Context) ([]*domain.Secret, error) {
	return s.secretRepo.GetAll(ctx)
}

func (s *SecretService) GetSecret(ctx context.Context, id string) (*domain.Secret, error) {
	return s.secretRepo.GetByID(ctx, id)
}
