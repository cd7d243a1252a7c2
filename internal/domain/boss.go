package domain

import (
	"gorm.io/datatypes"
)

type Boss struct {
	ID                string         `json:"id" gorm:"primaryKey"`
	Name              string         `json:"name" gorm:"not null"`
	ExpeditionName    string         `json:"expedition_name"`                    // e.g., "Tricephalos"
	Description       string         `json:"description"`
	Weaknesses        datatypes.JSON `json:"weaknesses" gorm:"type:jsonb"`       // ["Holy", "Fire"]
	DamageTypes       datatypes.JSON `json:"damage_types" gorm:"type:jsonb"`     // ["Dark", "Physical"]
	DifficultyRating  int            `json:"difficulty_rating" gorm:"not null"`  // 1-10
	MinLevel          int            `json:"min_level"`
	MaxLevel          int            `json:"max_level"`
	Strategies        datatypes.JSON `json:"strategies" gorm:"type:jsonb"`
	Loot              datatypes.JSON `json:"loot" gorm:"type:jsonb"`
	RecommendedTeam   datatypes.JSON `json:"recommended_team" gorm:"type:jsonb"`   // character names, not IDs
	RecommendedBuilds datatypes.JSON `json:"recommended_builds" gorm:"type:jsonb"` // build names, not IDs
}

// Difficulty buckets for the boss filter endpoint.
const (
	DifficultyEasy    = "easy"    // rating <= 4
	DifficultyMedium  = "medium"  // rating 5-6
	DifficultyHard    = "hard"    // rating 7-8
	DifficultyExtreme = "extreme" // rating >= 9
)
