package domain

import (
	"gorm.io/datatypes"
)

type WeaponSkill struct {
	ID                string         `json:"id" gorm:"primaryKey"`
	Name              string         `json:"name" gorm:"not null"`
	Description       string         `json:"description"`
	Category          string         `json:"category"` // e.g., "Ash of War"
	FPCost            int            `json:"fp_cost"`
	DamageType        string         `json:"damage_type"`
	CompatibleWeapons datatypes.JSON `json:"compatible_weapons" gorm:"type:jsonb"`
}

type WeaponPassive struct {
	ID                   string         `json:"id" gorm:"primaryKey"`
	Name                 string         `json:"name" gorm:"not null"`
	Description          string         `json:"description"`
	Category             string         `json:"category"`
	Effect               string         `json:"effect"`
	CompatibleCharacters datatypes.JSON `json:"compatible_characters" gorm:"type:jsonb"`
}
