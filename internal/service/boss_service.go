package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
)

type BossService struct {
	bossRepo      repository.BossRepository
	characterRepo repository.CharacterRepository
	buildRepo     repository.BuildRepository
	ratingRepo    repository.RatingRepository
}

func NewBossService(bossRepo repository.BossRepository, characterRepo repository.CharacterRepository, buildRepo repository.BuildRepository, ratingRepo repository.RatingRepository) *BossService {
	return &BossService{
		bossRepo:      bossRepo,
		characterRepo: characterRepo,
		buildRepo:     buildRepo,
		ratingRepo:    ratingRepo,
	}
}

func (s *BossService) GetAllBosses(ctx context.Context) ([]*domain.Boss, error) {
	return s.bossRepo.GetAll(ctx)
}

func (s *BossService) GetBoss(ctx context.Context, id string) (*domain.Boss, error) {
	return s.bossRepo.GetByID(ctx, id)
}

// BossFilterParams are the raw query parameters of the filter endpoint.
// Empty/nil values apply no predicate; an unrecognized difficulty bucket
// applies none either.
type BossFilterParams struct {
	Difficulty string
	Weakness   string
	MinLevel   *int
	MaxLevel   *int
}

type FilteredBosses struct {
	Bosses         []*domain.Boss `json:"bosses"`
	FiltersApplied map[string]any `json:"filters_applied"`
}

// difficultyBounds maps a bucket name to an inclusive rating range.
func difficultyBounds(bucket string) (minRating, maxRating *int) {
	intp := func(v int) *int { return &v }
	switch bucket {
	case domain.DifficultyEasy:
		return nil, intp(4)
	case domain.DifficultyMedium:
		return intp(5), intp(6)
	case domain.DifficultyHard:
		return intp(7), intp(8)
	case domain.DifficultyExtreme:
		return intp(9), nil
	default:
		return nil, nil
	}
}

func (s *BossService) FilterBosses(ctx context.Context, params BossFilterParams) (*FilteredBosses, error) {
	applied := map[string]any{}

	filter := repository.BossFilter{
		MinLevel: params.MinLevel,
		MaxLevel: params.MaxLevel,
	}
	minRating, maxRating := difficultyBounds(params.Difficulty)
	if minRating != nil || maxRating != nil {
		filter.MinDifficulty = minRating
		filter.MaxDifficulty = maxRating
		applied["difficulty"] = params.Difficulty
	}
	if params.MinLevel != nil {
		applied["min_level"] = *params.MinLevel
	}
	if params.MaxLevel != nil {
		applied["max_level"] = *params.MaxLevel
	}

	bosses, err := s.bossRepo.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Weakness membership runs against the JSON column in Go, exact string
	// equality like the source data intends.
	if params.Weakness != "" {
		applied["weakness"] = params.Weakness
		matched := make([]*domain.Boss, 0, len(bosses))
		for _, boss := range bosses {
			if containsString(decodeStrings(boss.Weaknesses), params.Weakness) {
				matched = append(matched, boss)
			}
		}
		bosses = matched
	}

	return &FilteredBosses{Bosses: bosses, FiltersApplied: applied}, nil
}

type BossRecommendations struct {
	Boss                  *domain.Boss        `json:"boss"`
	RecommendedCharacters []*domain.Character `json:"recommended_characters"`
	RecommendedBuilds     []*domain.Build     `json:"recommended_builds"`
}

// GetRecommendations resolves the boss's recommended_team and
// recommended_builds name lists. The join is by name equality, never by ID;
// names with no matching entity silently shrink the result.
func (s *BossService) GetRecommendations(ctx context.Context, bossID string) (*BossRecommendations, error) {
	boss, err := s.bossRepo.GetByID(ctx, bossID)
	if err != nil {
		return nil, err
	}

	characters, err := s.characterRepo.GetByNames(ctx, decodeStrings(boss.RecommendedTeam))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recommended team: %w", err)
	}
	builds, err := s.buildRepo.GetByNames(ctx, decodeStrings(boss.RecommendedBuilds))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recommended builds: %w", err)
	}

	return &BossRecommendations{
		Boss:                  boss,
		RecommendedCharacters: characters,
		RecommendedBuilds:     builds,
	}, nil
}

type RatingSummary struct {
	BossID        string  `json:"boss_id"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
	UserRating    int     `json:"user_rating"`
}

// RateBoss validates and upserts a user's rating, then recomputes the
// aggregate. Validation runs before the boss lookup so an out-of-range
// rating fails the same way whether or not the boss exists.
func (s *BossService) RateBoss(ctx context.Context, userID, bossID string, rating int) (*RatingSummary, error) {
	if rating < domain.MinBossRating || rating > domain.MaxBossRating {
		return nil, domain.ErrInvalidRating
	}

	if _, err := s.bossRepo.GetByID(ctx, bossID); err != nil {
		return nil, err
	}

	record := &domain.UserRating{
		UserID:    userID,
		BossID:    bossID,
		Rating:    rating,
		Timestamp: time.Now(),
	}
	if err := s.ratingRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	ratings, err := s.ratingRepo.GetByBossID(ctx, bossID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	average := 0.0
	if len(ratings) > 0 {
		average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}

	return &RatingSummary{
		BossID:        bossID,
		AverageRating: average,
		TotalRatings:  len(ratings),
		UserRating:    rating,
	}, nil
}
