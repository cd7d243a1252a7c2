package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// AnonymousUser is the user_id recorded for custom builds submitted without
// one.
const AnonymousUser = "anonymous"

// CustomBuild is a user-submitted build. No schema is enforced on the
// submitted fields beyond id, user_id and created_at injection; everything
// else is kept verbatim in Fields.
type CustomBuild struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	Fields    datatypes.JSON `json:"fields" gorm:"type:jsonb"`
}

// Document flattens the free-form fields and the injected attributes into a
// single object, the shape the API serves.
func (b *CustomBuild) Document() (map[string]any, error) {
	doc := map[string]any{}
	if len(b.Fields) > 0 {
		if err := json.Unmarshal(b.Fields, &doc); err != nil {
			return nil, err
		}
	}
	doc["id"] = b.ID
	doc["user_id"] = b.UserID
	doc["created_at"] = b.CreatedAt
	return doc, nil
}
