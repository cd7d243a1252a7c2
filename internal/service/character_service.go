package service

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
)

type CharacterService struct {
	characterRepo repository.CharacterRepository
}

func NewCharacterService(characterRepo repository.CharacterRepository) *CharacterService {
	return &CharacterService{characterRepo: characterRepo}
}

func (s *CharacterService) GetAllCharacters(ctx context.Context) ([]*domain.Character, error) {
	return s.characterRepo.GetAll(ctx)
}

func (s *CharacterService) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	return s.characterRepo.GetByID(ctx, id)
}

type CharacterFilterParams struct {
	Playstyle   string
	PrimaryStat string
}

type FilteredCharacters struct {
	Characters     []*domain.Character `json:"characters"`
	FiltersApplied map[string]any      `json:"filters_applied"`
}

func (s *CharacterService) FilterCharacters(ctx context.Context, params CharacterFilterParams) (*FilteredCharacters, error) {
	applied := map[string]any{}
	if params.Playstyle != "" {
		applied["playstyle"] = params.Playstyle
	}
	if params.PrimaryStat != "" {
		applied["primary_stat"] = params.PrimaryStat
	}

	characters, err := s.characterRepo.Filter(ctx, repository.CharacterFilter{
		Playstyle:   params.Playstyle,
		PrimaryStat: params.PrimaryStat,
	})
	if err != nil {
		return nil, err
	}

	return &FilteredCharacters{Characters: characters, FiltersApplied: applied}, nil
}
