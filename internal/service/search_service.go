package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
)

type SearchService struct {
	bossRepo        repository.BossRepository
	characterRepo   repository.CharacterRepository
	buildRepo       repository.BuildRepository
	achievementRepo repository.AchievementRepository
	creatureRepo    repository.CreatureRepository
}

func NewSearchService(bossRepo repository.BossRepository, characterRepo repository.CharacterRepository, buildRepo repository.BuildRepository, achievementRepo repository.AchievementRepository, creatureRepo repository.CreatureRepository) *SearchService {
	return &SearchService{
		bossRepo:        bossRepo,
		characterRepo:   characterRepo,
		buildRepo:       buildRepo,
		achievementRepo: achievementRepo,
		creatureRepo:    creatureRepo,
	}
}

type SearchResults struct {
	Query        string                `json:"query"`
	Bosses       []*domain.Boss        `json:"bosses"`
	Characters   []*domain.Character   `json:"characters"`
	Builds       []*domain.Build       `json:"builds"`
	Achievements []*domain.Achievement `json:"achievements"`
	Creatures    []*domain.Creature    `json:"creatures"`
	TotalResults int                   `json:"total_results"`
}

func emptyResults(query string) *SearchResults {
	return &SearchResults{
		Query:        query,
		Bosses:       []*domain.Boss{},
		Characters:   []*domain.Character{},
		Builds:       []*domain.Build{},
		Achievements: []*domain.Achievement{},
		Creatures:    []*domain.Creature{},
	}
}

// Search runs a case-insensitive substring match over a fixed field list per
// collection. An empty query matches nothing. Results keep insertion order;
// there is no ranking.
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResults, error) {
	results := emptyResults(query)

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return results, nil
	}

	bosses, err := s.bossRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search bosses: %w", err)
	}
	for _, boss := range bosses {
		if bossMatches(boss, needle) {
			results.Bosses = append(results.Bosses, boss)
		}
	}

	characters, err := s.characterRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search characters: %w", err)
	}
	for _, character := range characters {
		if characterMatches(character, needle) {
			results.Characters = append(results.Characters, character)
		}
	}

	builds, err := s.buildRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search builds: %w", err)
	}
	for _, build := range builds {
		if buildMatches(build, needle) {
			results.Builds = append(results.Builds, build)
		}
	}

	achievements, err := s.achievementRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search achievements: %w", err)
	}
	for _, achievement := range achievements {
		if achievementMatches(achievement, needle) {
			results.Achievements = append(results.Achievements, achievement)
		}
	}

	creatures, err := s.creatureRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search creatures: %w", err)
	}
	for _, creature := range creatures {
		if creatureMatches(creature, needle) {
			results.Creatures = append(results.Creatures, creature)
		}
	}

	results.TotalResults = len(results.Bosses) + len(results.Characters) +
		len(results.Builds) + len(results.Achievements) + len(results.Creatures)
	return results, nil
}

// needle must already be lowercased by the caller.
func matchesAny(needle string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesAnyOf(needle string, items []string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), needle) {
			return true
		}
	}
	return false
}

func bossMatches(boss *domain.Boss, needle string) bool {
	return matchesAny(needle, boss.Name, boss.Description) ||
		matchesAnyOf(needle, decodeStrings(boss.Weaknesses)) ||
		matchesAnyOf(needle, decodeStrings(boss.DamageTypes))
}

func characterMatches(character *domain.Character, needle string) bool {
	return matchesAny(needle, character.Name, character.Description, character.Playstyle) ||
		matchesAnyOf(needle, decodeStrings(character.Abilities))
}

func buildMatches(build *domain.Build, needle string) bool {
	return matchesAny(needle, build.Name, build.Description, build.Character, build.Type)
}

func achievementMatches(achievement *domain.Achievement, needle string) bool {
	return matchesAny(needle, achievement.Name, achievement.Description, achievement.Category)
}

func creatureMatches(creature *domain.Creature, needle string) bool {
	return matchesAny(needle, creature.Name, creature.Description, creature.Type, creature.Location) ||
		matchesAnyOf(needle, decodeStrings(creature.Weaknesses))
}
