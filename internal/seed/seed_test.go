package seed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func decodeList(t *testing.T, raw datatypes.JSON) []string {
	t.Helper()
	var items []string
	require.NoError(t, json.Unmarshal(raw, &items))
	return items
}

func TestCatalogBossLevels(t *testing.T) {
	catalog := NewCatalog()
	require.NotEmpty(t, catalog.Bosses)

	for _, boss := range catalog.Bosses {
		assert.GreaterOrEqual(t, boss.MinLevel, 1, "boss %s min_level", boss.Name)
		assert.LessOrEqual(t, boss.MaxLevel, 25, "boss %s max_level", boss.Name)
		assert.LessOrEqual(t, boss.MinLevel, boss.MaxLevel, "boss %s level range", boss.Name)
		assert.GreaterOrEqual(t, boss.DifficultyRating, 1, "boss %s difficulty", boss.Name)
		assert.LessOrEqual(t, boss.DifficultyRating, 10, "boss %s difficulty", boss.Name)
	}
}

func TestCatalogCharacterMaxLevel(t *testing.T) {
	catalog := NewCatalog()
	require.NotEmpty(t, catalog.Characters)

	for _, character := range catalog.Characters {
		assert.Equal(t, 15, character.MaxLevel, "character %s", character.Name)
	}
}

func TestCatalogAchievementRanks(t *testing.T) {
	catalog := NewCatalog()
	require.NotEmpty(t, catalog.Achievements)

	seen := make(map[int]bool, len(catalog.Achievements))
	for _, achievement := range catalog.Achievements {
		assert.False(t, seen[achievement.Rank], "duplicate rank %d", achievement.Rank)
		seen[achievement.Rank] = true
		assert.GreaterOrEqual(t, achievement.Percentage, 0.0)
		assert.LessOrEqual(t, achievement.Percentage, 100.0)
	}
	for rank := 1; rank <= len(catalog.Achievements); rank++ {
		assert.True(t, seen[rank], "missing rank %d", rank)
	}
}

func TestCatalogUniqueIDs(t *testing.T) {
	catalog := NewCatalog()

	ids := make(map[string]bool)
	record := func(id string) {
		assert.NotEmpty(t, id)
		assert.False(t, ids[id], "duplicate id %s", id)
		ids[id] = true
	}

	for _, b := range catalog.Bosses {
		record(b.ID)
	}
	for _, c := range catalog.Characters {
		record(c.ID)
	}
	for _, b := range catalog.Builds {
		record(b.ID)
	}
	for _, a := range catalog.Achievements {
		record(a.ID)
	}
	for _, w := range catalog.Walkthroughs {
		record(w.ID)
	}
	for _, c := range catalog.Creatures {
		record(c.ID)
	}
	for _, s := range catalog.Secrets {
		record(s.ID)
	}
	for _, s := range catalog.WeaponSkills {
		record(s.ID)
	}
	for _, p := range catalog.WeaponPassives {
		record(p.ID)
	}
}

// The join tolerates dangling names, but the shipped catalog itself should
// not contain any.
func TestCatalogNameReferencesResolve(t *testing.T) {
	catalog := NewCatalog()

	characterNames := make(map[string]bool)
	for _, c := range catalog.Characters {
		characterNames[c.Name] = true
	}
	buildNames := make(map[string]bool)
	for _, b := range catalog.Builds {
		buildNames[b.Name] = true
	}

	for _, boss := range catalog.Bosses {
		for _, name := range decodeList(t, boss.RecommendedTeam) {
			assert.True(t, characterNames[name], "boss %s references unknown character %q", boss.Name, name)
		}
		for _, name := range decodeList(t, boss.RecommendedBuilds) {
			assert.True(t, buildNames[name], "boss %s references unknown build %q", boss.Name, name)
		}
	}
	for _, build := range catalog.Builds {
		for _, name := range decodeList(t, build.BestFor) {
			assert.True(t, characterNames[name], "build %s references unknown character %q", build.Name, name)
		}
	}
	for _, walkthrough := range catalog.Walkthroughs {
		assert.True(t, characterNames[walkthrough.Character], "walkthrough %s references unknown character %q", walkthrough.Title, walkthrough.Character)
	}
}
