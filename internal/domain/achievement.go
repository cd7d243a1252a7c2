package domain

type Achievement struct {
	ID           string  `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Requirements string  `json:"requirements"`
	Reward       string  `json:"reward"`
	Difficulty   string  `json:"difficulty"`
	Percentage   float64 `json:"percentage"` // share of players who unlocked it, 0-100
	Rank         int     `json:"rank"`       // 1..N, contiguous across the seeded set
}
