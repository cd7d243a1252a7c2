package domain

import (
	"gorm.io/datatypes"
)

type Creature struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Type        string         `json:"type"` // e.g., "Beast", "Undead"
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Weaknesses  datatypes.JSON `json:"weaknesses" gorm:"type:jsonb"`
	Resistances datatypes.JSON `json:"resistances" gorm:"type:jsonb"`
	DamageTypes datatypes.JSON `json:"damage_types" gorm:"type:jsonb"`
	ThreatLevel string         `json:"threat_level"` // e.g., "Low", "Severe"
	Notes       string         `json:"notes"`
}
