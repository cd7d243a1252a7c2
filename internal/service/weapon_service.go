package service

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
)

type WeaponService struct {
	skillRepo   repository.WeaponSkillRepository
	passiveRepo repository.WeaponPassiveRepository
}

func NewWeaponService(skillRepo repository.WeaponSkillRepository, passiveRepo repository.WeaponPassiveRepository) *WeaponService {
	return &WeaponService{skillRepo: skillRepo, passiveRepo: passiveRepo}
}

func (s *WeaponService) GetAllSkills(ctx context.Context) ([]*domain.WeaponSkill, error) {
	return s.skillRepo.GetAll(ctx)
}

func (s *WeaponService) GetAllPassives(ctx context.Context) ([]*domain.WeaponPassive, error) {
	return s.passiveRepo.GetAll(ctx)
}
