package domain

import (
	"gorm.io/datatypes"
)

// Walkthrough is a remembrance quest guide. Lookup is by character name,
// not by ID.
type Walkthrough struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Character   string         `json:"character" gorm:"index"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Chapters    datatypes.JSON `json:"chapters" gorm:"type:jsonb"`
}

// WalkthroughChapter is the element shape stored in Walkthrough.Chapters.
type WalkthroughChapter struct {
	Chapter   int      `json:"chapter"`
	Title     string   `json:"title"`
	Objective string   `json:"objective"`
	Steps     []string `json:"steps"`
	Reward    string   `json:"reward"`
}
