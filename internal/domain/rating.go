package domain

import "time"

// UserRating is one user's rating of one boss. The (user_id, boss_id) pair
// is the natural key; a second submission for the same pair overwrites the
// rating and timestamp.
type UserRating struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	BossID    string    `json:"boss_id" gorm:"primaryKey"`
	Rating    int       `json:"rating" gorm:"not null"` // 1-10
	Timestamp time.Time `json:"timestamp"`
}

const (
	MinBossRating = 1
	MaxBossRating = 10
)
