package service

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
)

type CreatureService struct {
	creatureRepo repository.CreatureRepository
}

func NewCreatureService(creatureRepo repository.CreatureRepository) *CreatureService {
	return &CreatureService{creatureRepo: creatureRepo}
}

func (s *CreatureService) GetAllCreatures(ctx context.Context) ([]*domain.Creature, error) {
	return s.creatureRepo.GetAll(ctx)
}

func (s *CreatureService) GetCreature(ctx context.Context, id string) (*domain.Creature, error) {
	return s.creatureRepo.GetByID(ctx, id)
}

type CreatureFilterParams struct {
	Type        string
	ThreatLevel string
	Weakness    string
}

type FilteredCreatures struct {
	Creatures      []*domain.Creature `json:"creatures"`
	FiltersApplied map[string]any     `json:"filters_applied"`
}

func (s *CreatureService) FilterCreatures(ctx context.Context, params CreatureFilterParams) (*FilteredCreatures, error) {
	applied := map[string]any{}
	if params.Type != "" {
		applied["type"] = params.Type
	}
	if params.ThreatLevel != "" {
		applied["threat_level"] = params.ThreatLevel
	}

	creatures, err := s.creatureRepo.Filter(ctx, repository.CreatureFilter{
		Type:        params.Type,
		ThreatLevel: params.ThreatLevel,
	})
	if err != nil {
		return nil, err
	}

	if params.Weakness != "" {
		applied["weakness"] = params.Weakness
		matched := make([]*domain.Creature, 0, len(creatures))
		for _, creature := range creatures {
			if containsString(decodeStrings(creature.Weaknesses), params.Weakness) {
				matched = append(matched, creature)
			}
		}
		creatures = matched
	}

	return &FilteredCreatures{Creatures: creatures, FiltersApplied: applied}, nil
}
