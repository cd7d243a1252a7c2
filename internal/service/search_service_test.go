package service

import (
	"encoding/json"
	"testing"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func mustJSON(t *testing.T, v any) datatypes.JSON {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestBossMatches(t *testing.T) {
	boss := &domain.Boss{
		Name:        "Gladius, Beast of Night",
		Description: "A three-headed hound wreathed in dark flame.",
		Weaknesses:  mustJSON(t, []string{"Holy"}),
		DamageTypes: mustJSON(t, []string{"Physical", "Fire"}),
	}

	tests := []struct {
		name   string
		needle string
		want   bool
	}{
		{"name substring", "gladius", true},
		{"description substring", "three-headed", true},
		{"weakness element", "holy", true},
		{"damage type element", "fire", true},
		{"no match", "poison", false},
		{"expedition name is not a search field", "tricephalos", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bossMatches(boss, tt.needle))
		})
	}
}

func TestCharacterMatches(t *testing.T) {
	character := &domain.Character{
		Name:        "Ironeye",
		Description: "A dexterity archer.",
		Playstyle:   "Ranged DPS",
		Abilities:   mustJSON(t, []string{"Marking", "Single Shot"}),
	}

	assert.True(t, characterMatches(character, "ranged"))
	assert.True(t, characterMatches(character, "marking"))
	assert.False(t, characterMatches(character, "katana"))
}

func TestBuildMatches(t *testing.T) {
	build := &domain.Build{
		Name:        "Colossal Titan",
		Description: "Tank damage with colossal weapons.",
		Character:   "Raider",
		Type:        "Strength",
	}

	assert.True(t, buildMatches(build, "titan"))
	assert.True(t, buildMatches(build, "raider"))
	assert.True(t, buildMatches(build, "strength"))
	assert.False(t, buildMatches(build, "sorcery"))
}

func TestCreatureMatches(t *testing.T) {
	creature := &domain.Creature{
		Name:        "Miasma Wyrmling",
		Description: "A juvenile frost wyrm.",
		Type:        "Dragon",
		Location:    "High Passes",
		Weaknesses:  mustJSON(t, []string{"Fire"}),
	}

	assert.True(t, creatureMatches(creature, "dragon"))
	assert.True(t, creatureMatches(creature, "high passes"))
	assert.True(t, creatureMatches(creature, "fire"))
	assert.False(t, creatureMatches(creature, "undead"))
}

func TestDecodeStrings(t *testing.T) {
	assert.Nil(t, decodeStrings(nil))
	assert.Nil(t, decodeStrings(datatypes.JSON(`not json`)))
	assert.Equal(t, []string{"a", "b"}, decodeStrings(datatypes.JSON(`["a","b"]`)))
}
