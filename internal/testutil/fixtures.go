package testutil

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func toJSON(t *testing.T, v any) datatypes.JSON {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal fixture value: %v", err)
	}
	return b
}

// BossBuilder creates test bosses with a builder pattern
type BossBuilder struct {
	boss domain.Boss
}

// NewBossBuilder creates a new BossBuilder with default values
func NewBossBuilder() *BossBuilder {
	return &BossBuilder{
		boss: domain.Boss{
			ID:               uuid.New().String(),
			Name:             fmt.Sprintf("Test Boss %s", uuid.New().String()[:8]),
			ExpeditionName:   "Test Expedition",
			Description:      "A boss for testing.",
			DifficultyRating: 5,
			MinLevel:         1,
			MaxLevel:         15,
		},
	}
}

func (b *BossBuilder) WithID(id string) *BossBuilder {
	b.boss.ID = id
	return b
}

func (b *BossBuilder) WithName(name string) *BossBuilder {
	b.boss.Name = name
	return b
}

func (b *BossBuilder) WithDescription(description string) *BossBuilder {
	b.boss.Description = description
	return b
}

func (b *BossBuilder) WithDifficulty(rating int) *BossBuilder {
	b.boss.DifficultyRating = rating
	return b
}

func (b *BossBuilder) WithLevels(minLevel, maxLevel int) *BossBuilder {
	b.boss.MinLevel = minLevel
	b.boss.MaxLevel = maxLevel
	return b
}

func (b *BossBuilder) WithWeaknesses(weaknesses ...string) *BossBuilder {
	raw, _ := json.Marshal(weaknesses)
	b.boss.Weaknesses = raw
	return b
}

func (b *BossBuilder) WithRecommendedTeam(names ...string) *BossBuilder {
	raw, _ := json.Marshal(names)
	b.boss.RecommendedTeam = raw
	return b
}

func (b *BossBuilder) WithRecommendedBuilds(names ...string) *BossBuilder {
	raw, _ := json.Marshal(names)
	b.boss.RecommendedBuilds = raw
	return b
}

// Build creates the boss in the database
func (b *BossBuilder) Build(t *testing.T, db *gorm.DB) *domain.Boss {
	t.Helper()

	boss := b.boss
	if boss.Weaknesses == nil {
		boss.Weaknesses = toJSON(t, []string{})
	}
	if boss.DamageTypes == nil {
		boss.DamageTypes = toJSON(t, []string{})
	}
	if boss.Strategies == nil {
		boss.Strategies = toJSON(t, []string{})
	}
	if boss.Loot == nil {
		boss.Loot = toJSON(t, []string{})
	}
	if boss.RecommendedTeam == nil {
		boss.RecommendedTeam = toJSON(t, []string{})
	}
	if boss.RecommendedBuilds == nil {
		boss.RecommendedBuilds = toJSON(t, []string{})
	}

	if err := db.Create(&boss).Error; err != nil {
		t.Fatalf("failed to create boss: %v", err)
	}
	return &boss
}

// CharacterBuilder creates test characters
type CharacterBuilder struct {
	character domain.Character
}

func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: domain.Character{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("Test Character %s", uuid.New().String()[:8]),
			Description: "A character for testing.",
			PrimaryStat: "Strength",
			WeaponType:  "Sword",
			Playstyle:   "Versatile",
			MaxLevel:    15,
		},
	}
}

func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

func (b *CharacterBuilder) WithPlaystyle(playstyle string) *CharacterBuilder {
	b.character.Playstyle = playstyle
	return b
}

func (b *CharacterBuilder) WithPrimaryStat(stat string) *CharacterBuilder {
	b.character.PrimaryStat = stat
	return b
}

func (b *CharacterBuilder) Build(t *testing.T, db *gorm.DB) *domain.Character {
	t.Helper()

	character := b.character
	if character.Abilities == nil {
		character.Abilities = toJSON(t, []string{})
	}
	if character.DamageTypes == nil {
		character.DamageTypes = toJSON(t, []string{})
	}
	if character.RecommendedBuilds == nil {
		character.RecommendedBuilds = toJSON(t, []string{})
	}
	if character.StartingEquipment == nil {
		character.StartingEquipment = toJSON(t, []string{})
	}

	if err := db.Create(&character).Error; err != nil {
		t.Fatalf("failed to create character: %v", err)
	}
	return &character
}

// BuildBuilder creates test builds
type BuildBuilder struct {
	build domain.Build
}

func NewBuildBuilder() *BuildBuilder {
	return &BuildBuilder{
		build: domain.Build{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("Test Build %s", uuid.New().String()[:8]),
			Character:   "Test Character",
			Type:        "Strength",
			Description: "A build for testing.",
		},
	}
}

func (b *BuildBuilder) WithName(name string) *BuildBuilder {
	b.build.Name = name
	return b
}

func (b *BuildBuilder) WithCharacter(character string) *BuildBuilder {
	b.build.Character = character
	return b
}

func (b *BuildBuilder) Build(t *testing.T, db *gorm.DB) *domain.Build {
	t.Helper()

	build := b.build
	if build.Talismans == nil {
		build.Talismans = toJSON(t, []string{})
	}
	if build.RecommendedStats == nil {
		build.RecommendedStats = toJSON(t, map[string]int{})
	}
	if build.BestFor == nil {
		build.BestFor = toJSON(t, []string{})
	}

	if err := db.Create(&build).Error; err != nil {
		t.Fatalf("failed to create build: %v", err)
	}
	return &build
}

// SeedAchievement inserts an achievement with the given rank
func SeedAchievement(t *testing.T, db *gorm.DB, name string, rank int) *domain.Achievement {
	t.Helper()

	achievement := &domain.Achievement{
		ID:         uuid.New().String(),
		Name:       name,
		Category:   "Test",
		Difficulty: "Medium",
		Percentage: 50,
		Rank:       rank,
	}
	if err := db.Create(achievement).Error; err != nil {
		t.Fatalf("failed to create achievement: %v", err)
	}
	return achievement
}

// SeedWalkthrough inserts a walkthrough keyed by character name
func SeedWalkthrough(t *testing.T, db *gorm.DB, character, title string) *domain.Walkthrough {
	t.Helper()

	walkthrough := &domain.Walkthrough{
		ID:        uuid.New().String(),
		Character: character,
		Title:     title,
		Chapters: toJSON(t, []domain.WalkthroughChapter{
			{Chapter: 1, Title: "First Steps", Objective: "Begin.", Steps: []string{"Step one"}, Reward: "A reward"},
		}),
	}
	if err := db.Create(walkthrough).Error; err != nil {
		t.Fatalf("failed to create walkthrough: %v", err)
	}
	return walkthrough
}

// SeedCreature inserts a creature with the given type, threat level and weaknesses
func SeedCreature(t *testing.T, db *gorm.DB, name, creatureType, threatLevel string, weaknesses ...string) *domain.Creature {
	t.Helper()

	creature := &domain.Creature{
		ID:          uuid.New().String(),
		Name:        name,
		Type:        creatureType,
		Description: "A creature for testing.",
		Location:    "Test Location",
		Weaknesses:  toJSON(t, weaknesses),
		Resistances: toJSON(t, []string{}),
		DamageTypes: toJSON(t, []string{}),
		ThreatLevel: threatLevel,
	}
	if err := db.Create(creature).Error; err != nil {
		t.Fatalf("failed to create creature: %v", err)
	}
	return creature
}
