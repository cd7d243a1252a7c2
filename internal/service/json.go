package service

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// decodeStrings unmarshals a JSON column holding a string list. Malformed or
// empty columns decode to nil, which every caller treats as no elements.
func decodeStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
