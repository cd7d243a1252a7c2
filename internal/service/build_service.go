package service

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
)

type BuildService struct {
	buildRepo repository.BuildRepository
}

func NewBuildService(buildRepo repository.BuildRepository) *BuildService {
	return &BuildService{buildRepo: buildRepo}
}

func (s *BuildService) GetAllBuilds(ctx context.Context) ([]*domain.Build, error) {
	return s.buildRepo.GetAll(ctx)
}

func (s *BuildService) GetBuild(ctx context.Context, id string) (*domain.Build, error) {
	return s.buildRepo.GetByID(ctx, id)
}
