package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/dom/nightreign-guide/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SearchResponse struct {
	Query  string `json:"query"`
	Bosses []struct {
		Name string `json:"name"`
	} `json:"bosses"`
	Characters []struct {
		Name string `json:"name"`
	} `json:"characters"`
	Builds []struct {
		Name string `json:"name"`
	} `json:"builds"`
	Achievements []struct {
		Name string `json:"name"`
	} `json:"achievements"`
	Creatures []struct {
		Name string `json:"name"`
	} `json:"creatures"`
	TotalResults int `json:"total_results"`
}

func doSearch(t *testing.T, ts *testutil.TestServer, query string) SearchResponse {
	t.Helper()

	resp, err := http.Get(ts.APIURL("/search?query=" + url.QueryEscape(query)))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result SearchResponse
	testutil.AssertJSONResponse(t, resp, &result)
	return result
}

func TestSearch(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewBossBuilder().
		WithName("Gnoster, Wisdom of Night").
		WithDescription("A towering sorcerous moth.").
		Build(t, ts.DB.DB)
	testutil.NewBossBuilder().
		WithName("Maris, Fathom of Night").
		WithDescription("A drifting abyssal entity.").
		Build(t, ts.DB.DB)
	testutil.NewCharacterBuilder().
		WithName("Recluse").
		WithPlaystyle("Elemental spellcaster").
		Build(t, ts.DB.DB)
	testutil.NewBuildBuilder().
		WithName("Lunar Sorcery").
		WithCharacter("Recluse").
		Build(t, ts.DB.DB)
	testutil.SeedAchievement(t, ts.DB.DB, "Nightfarer", 1)
	testutil.SeedCreature(t, ts.DB.DB, "Nightfarer Wisp", "Spirit", "Low", "Holy")

	t.Run("single boss hit", func(t *testing.T) {
		result := doSearch(t, ts, "moth")
		assert.Equal(t, "moth", result.Query)
		require.Len(t, result.Bosses, 1)
		assert.Equal(t, "Gnoster, Wisdom of Night", result.Bosses[0].Name)
		assert.Equal(t, 1, result.TotalResults)
	})

	t.Run("case-insensitive across collections", func(t *testing.T) {
		result := doSearch(t, ts, "NIGHT")
		assert.Len(t, result.Bosses, 2)
		assert.Len(t, result.Achievements, 1)
		assert.Len(t, result.Creatures, 1)
		assert.Equal(t, 4, result.TotalResults)
	})

	t.Run("matches character playstyle", func(t *testing.T) {
		result := doSearch(t, ts, "spellcaster")
		require.Len(t, result.Characters, 1)
		assert.Equal(t, "Recluse", result.Characters[0].Name)
	})

	t.Run("matches build by character", func(t *testing.T) {
		result := doSearch(t, ts, "lunar")
		require.Len(t, result.Builds, 1)
		assert.Equal(t, "Lunar Sorcery", result.Builds[0].Name)
	})

	t.Run("no hits", func(t *testing.T) {
		result := doSearch(t, ts, "zzzzzz")
		assert.Equal(t, 0, result.TotalResults)
		assert.Empty(t, result.Bosses)
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		result := doSearch(t, ts, "")
		assert.Equal(t, 0, result.TotalResults)
	})

	t.Run("whitespace-only query matches nothing", func(t *testing.T) {
		result := doSearch(t, ts, "   ")
		assert.Equal(t, 0, result.TotalResults)
	})
}
