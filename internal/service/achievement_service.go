package service

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
)

type AchievementService struct {
	achievementRepo repository.AchievementRepository
}

func NewAchievementService(achievementRepo repository.AchievementRepository) *AchievementService {
	return &AchievementService{achievementRepo: achievementRepo}
}

// GetAllAchievements returns the collection ordered by ascending rank.
func (s *AchievementService) GetAllAchievements(ctx context.Context) ([]*domain.Achievement, error) {
	return s.achievementRepo.GetAll(ctx)
}

func (s *AchievementService) GetAchievement(ctx context.Context, id string) (*domain.Achievement, error) {
	return s.achievementRepo.GetByID(ctx, id)
}
