package domain

import (
	"gorm.io/datatypes"
)

type Build struct {
	ID               string         `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"not null"`
	Character        string         `json:"character"` // owner character name
	Type             string         `json:"type"`      // e.g., "Strength"
	Description      string         `json:"description"`
	PrimaryWeapon    string         `json:"primary_weapon"`
	SecondaryWeapon  string         `json:"secondary_weapon"`
	ArmorSet         string         `json:"armor_set"`
	Talismans        datatypes.JSON `json:"talismans" gorm:"type:jsonb"`
	RecommendedStats datatypes.JSON `json:"recommended_stats" gorm:"type:jsonb"` // {"Strength": 60, ...}
	Strategy         string         `json:"strategy"`
	BestFor          datatypes.JSON `json:"best_for" gorm:"type:jsonb"` // character names
}
