package domain

type Secret struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location"`
	HowToFind   string `json:"how_to_find"`
	Reward      string `json:"reward"`
	Difficulty  string `json:"difficulty"`
}
