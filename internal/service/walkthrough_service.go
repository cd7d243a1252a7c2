package service

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
)

type WalkthroughService struct {
	walkthroughRepo repository.WalkthroughRepository
}

func NewWalkthroughService(walkthroughRepo repository.WalkthroughRepository) *WalkthroughService {
	return &WalkthroughService{walkthroughRepo: walkthroughRepo}
}

func (s *WalkthroughService) GetAllWalkthroughs(ctx context.Context) ([]*domain.Walkthrough, error) {
	return s.walkthroughRepo.GetAll(ctx)
}

// GetWalkthrough looks up by character name, exact and case sensitive.
func (s *WalkthroughService) GetWalkthrough(ctx context.Context, character string) (*domain.Walkthrough, error) {
	return s.walkthroughRepo.GetByCharacter(ctx, character)
}
