package repository

import (
	"context"

	"github.com/dom/nightreign-guide/internal/domain"
)

// BossFilter is the set of optional, ANDed predicates for FilterBosses.
// Weakness membership is resolved by the service after the scalar
// predicates run.
type BossFilter struct {
	MinDifficulty *int
	MaxDifficulty *int
	MinLevel      *int
	MaxLevel      *int
}

type CharacterFilter struct {
	Playstyle   string // case-insensitive substring
	PrimaryStat string // case-insensitive substring
}

type CreatureFilter struct {
	Type        string // case-insensitive substring
	ThreatLevel string // case-insensitive substring
}

type BossRepository interface {
	GetAll(ctx context.Context) ([]*domain.Boss, error)
	GetByID(ctx context.Context, id string) (*domain.Boss, error)
	Filter(ctx context.Context, filter BossFilter) ([]*domain.Boss, error)
	ReplaceAll(ctx context.Context, bosses []*domain.Boss) error
}

type CharacterRepository interface {
	GetAll(ctx context.Context) ([]*domain.Character, error)
	GetByID(ctx context.Context, id string) (*domain.Character, error)
	GetByNames(ctx context.Context, names []string) ([]*domain.Character, error)
	Filter(ctx context.Context, filter CharacterFilter) ([]*domain.Character, error)
	ReplaceAll(ctx context.Context, characters []*domain.Character) error
}

type BuildRepository interface {
	GetAll(ctx context.Context) ([]*domain.Build, error)
	GetByID(ctx context.Context, id string) (*domain.Build, error)
	GetByNames(ctx context.Context, names []string) ([]*domain.Build, error)
	ReplaceAll(ctx context.Context, builds []*domain.Build) error
}

type AchievementRepository interface {
	GetAll(ctx context.Context) ([]*domain.Achievement, error) // ordered by rank
	GetByID(ctx context.Context, id string) (*domain.Achievement, error)
	ReplaceAll(ctx context.Context, achievements []*domain.Achievement) error
}

type WalkthroughRepository interface {
	GetAll(ctx context.Context) ([]*domain.Walkthrough, error)
	GetByCharacter(ctx context.Context, character string) (*domain.Walkthrough, error)
	ReplaceAll(ctx context.Context, walkthroughs []*domain.Walkthrough) error
}

type CreatureRepository interface {
	GetAll(ctx context.Context) ([]*domain.Creature, error)
	GetByID(ctx context.Context, id string) (*domain.Creature, error)
	Filter(ctx context.Context, filter CreatureFilter) ([]*domain.Creature, error)
	ReplaceAll(ctx context.Context, creatures []*domain.Creature) error
}

type SecretRepository interface {
	GetAll(ctx context.Context) ([]*domain.Secret, error)
	GetByID(ctx context.Context, id string) (*domain.Secret, error)
	ReplaceAll(ctx context.Context, secrets []*domain.Secret) error
}

type WeaponSkillRepository interface {
	GetAll(ctx context.Context) ([]*domain.WeaponSkill, error)
	ReplaceAll(ctx context.Context, skills []*domain.WeaponSkill) error
}

type WeaponPassiveRepository interface {
	GetAll(ctx context.Context) ([]*domain.WeaponPassive, error)
	ReplaceAll(ctx context.Context, passives []*domain.WeaponPassive) error
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *domain.UserRating) error
	GetByBossID(ctx context.Context, bossID string) ([]*domain.UserRating, error)
	DeleteAll(ctx context.Context) error
}

type CustomBuildRepository interface {
	Create(ctx context.Context, build *domain.CustomBuild) error
	GetAll(ctx context.Context) ([]*domain.CustomBuild, error)
	DeleteAll(ctx context.Context) error
}

type Repositories struct {
	Boss          BossRepository
	Character     CharacterRepository
	Build         BuildRepository
	Achievement   AchievementRepository
	Walkthrough   WalkthroughRepository
	Creature      CreatureRepository
	Secret        SecretRepository
	WeaponSkill   WeaponSkillRepository
	WeaponPassive WeaponPassiveRepository
	Rating        RatingRepository
	CustomBuild   CustomBuildRepository
}
