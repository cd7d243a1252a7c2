package domain

import (
	"gorm.io/datatypes"
)

type Character struct {
	ID                string         `json:"id" gorm:"primaryKey"`
	Name              string         `json:"name" gorm:"not null"`
	Description       string         `json:"description"`
	PrimaryStat       string         `json:"primary_stat"` // e.g., "Dexterity"
	WeaponType        string         `json:"weapon_type"`
	Abilities         datatypes.JSON `json:"abilities" gorm:"type:jsonb"`
	DamageTypes       datatypes.JSON `json:"damage_types" gorm:"type:jsonb"`
	RecommendedBuilds datatypes.JSON `json:"recommended_builds" gorm:"type:jsonb"` // build names
	StartingEquipment datatypes.JSON `json:"starting_equipment" gorm:"type:jsonb"`
	Playstyle         string         `json:"playstyle"` // e.g., "Ranged DPS"
	MaxLevel          int            `json:"max_level"`
}
