package handlers_test

import (
	"net/http"
	"testing"

	"github.com/dom/nightreign-guide/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// Inserted out of order; the list endpoint sorts by rank.
	testutil.SeedAchievement(t, ts.DB.DB, "Third", 3)
	first := testutil.SeedAchievement(t, ts.DB.DB, "First", 1)
	testutil.SeedAchievement(t, ts.DB.DB, "Second", 2)

	t.Run("list sorted by rank", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/achievements"))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result struct {
			Achievements []struct {
				Name string `json:"name"`
				Rank int    `json:"rank"`
			} `json:"achievements"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		require.Len(t, result.Achievements, 3)
		assert.Equal(t, "First", result.Achievements[0].Name)
		assert.Equal(t, "Second", result.Achievements[1].Name)
		assert.Equal(t, "Third", result.Achievements[2].Name)
	})

	t.Run("get by id", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/achievements/" + first.ID))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result struct {
			Name string `json:"name"`
			Rank int    `json:"rank"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "First", result.Name)
		assert.Equal(t, 1, result.Rank)
	})

	t.Run("get unknown id", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/achievements/no-such-id"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Achievement not found")
	})
}

func TestWalkthroughHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.SeedWalkthrough(t, ts.DB.DB, "Wylder", "Wylder's Complete Walkthrough")
	testutil.SeedWalkthrough(t, ts.DB.DB, "Duchess", "Duchess's Complete Walkthrough")

	t.Run("list all", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/walkthroughs"))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result struct {
			Walkthroughs []struct {
				Character string `json:"character"`
			} `json:"walkthroughs"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Len(t, result.Walkthroughs, 2)
	})

	t.Run("get by character name", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/walkthroughs/Wylder"))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result struct {
			Character string `json:"character"`
			Title     string `json:"title"`
			Chapters  []struct {
				Chapter int      `json:"chapter"`
				Steps   []string `json:"steps"`
			} `json:"chapters"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "Wylder", result.Character)
		assert.Equal(t, "Wylder's Complete Walkthrough", result.Title)
		require.NotEmpty(t, result.Chapters)
		assert.Equal(t, 1, result.Chapters[0].Chapter)
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/walkthroughs/wylder"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Walkthrough not found")
	})

	t.Run("unknown character", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/walkthroughs/Revenant"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Walkthrough not found")
	})
}

func TestCharacterHandler_Filter(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewCharacterBuilder().WithName("Wylder").WithPlaystyle("Aggressive melee").WithPrimaryStat("Strength").Build(t, ts.DB.DB)
	testutil.NewCharacterBuilder().WithName("Recluse").WithPlaystyle("Ranged spellcaster").WithPrimaryStat("Intelligence").Build(t, ts.DB.DB)
	testutil.NewCharacterBuilder().WithName("Raider").WithPlaystyle("Aggressive brawler").WithPrimaryStat("Strength").Build(t, ts.DB.DB)

	names := func(t *testing.T, resp *http.Response) []string {
		t.Helper()
		var result struct {
			Characters []struct {
				Name string `json:"name"`
			} `json:"characters"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		out := make([]string, len(result.Characters))
		for i, c := range result.Characters {
			out[i] = c.Name
		}
		return out
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "playstyle substring", query: "?playstyle=aggressive", expected: []string{"Wylder", "Raider"}},
		{name: "primary stat", query: "?primary_stat=intelligence", expected: []string{"Recluse"}},
		{name: "combined", query: "?playstyle=brawler&primary_stat=strength", expected: []string{"Raider"}},
		{name: "no filters", query: "", expected: []string{"Wylder", "Recluse", "Raider"}},
		{name: "no matches", query: "?playstyle=stealth", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL("/filter-characters" + tt.query))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.ElementsMatch(t, tt.expected, names(t, resp))
		})
	}
}

func TestCreatureHandler_Filter(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.SeedCreature(t, ts.DB.DB, "Nightfarer Wisp", "Spirit", "Low", "Holy")
	testutil.SeedCreature(t, ts.DB.DB, "Gravebird", "Beast", "Medium", "Fire")
	testutil.SeedCreature(t, ts.DB.DB, "Ancient Dragon", "Dragon", "High", "Lightning", "Holy")

	names := func(t *testing.T, resp *http.Response) []string {
		t.Helper()
		var result struct {
			Creatures []struct {
				Name string `json:"name"`
			} `json:"creatures"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		out := make([]string, len(result.Creatures))
		for i, c := range result.Creatures {
			out[i] = c.Name
		}
		return out
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "by type", query: "?type=dragon", expected: []string{"Ancient Dragon"}},
		{name: "by threat level", query: "?threat_level=medium", expected: []string{"Gravebird"}},
		{name: "by weakness membership", query: "?weakness=Holy", expected: []string{"Nightfarer Wisp", "Ancient Dragon"}},
		{name: "no filters", query: "", expected: []string{"Nightfarer Wisp", "Gravebird", "Ancient Dragon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL("/filter-creatures" + tt.query))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.ElementsMatch(t, tt.expected, names(t, resp))
		})
	}
}

func TestRootEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.BaseURL() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Message string `json:"message"`
	}
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, "Elden Ring Nightreign Guide API", result.Message)
}
