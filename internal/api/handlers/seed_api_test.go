package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/dom/nightreign-guide/internal/seed"
	"github.com/dom/nightreign-guide/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Loads the shipped catalog and reads it back through every list endpoint.
func TestSeededCatalogOverAPI(t *testing.T) {
	ts := testutil.NewTestServer(t)

	catalog, err := seed.Load(context.Background(), ts.Repos)
	require.NoError(t, err)

	listLen := func(t *testing.T, path, key string) int {
		t.Helper()

		resp, err := http.Get(ts.APIURL(path))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string][]map[string]any
		testutil.AssertJSONResponse(t, resp, &result)
		require.Contains(t, result, key)
		return len(result[key])
	}

	assert.Equal(t, len(catalog.Bosses), listLen(t, "/bosses", "bosses"))
	assert.Equal(t, len(catalog.Characters), listLen(t, "/characters", "characters"))
	assert.Equal(t, len(catalog.Builds), listLen(t, "/builds", "builds"))
	assert.Equal(t, len(catalog.Achievements), listLen(t, "/achievements", "achievements"))
	assert.Equal(t, len(catalog.Walkthroughs), listLen(t, "/walkthroughs", "walkthroughs"))
	assert.Equal(t, len(catalog.Creatures), listLen(t, "/creatures", "creatures"))
	assert.Equal(t, len(catalog.Secrets), listLen(t, "/secrets", "secrets"))
	assert.Equal(t, len(catalog.WeaponSkills), listLen(t, "/weapon-skills", "weapon_skills"))
	assert.Equal(t, len(catalog.WeaponPassives), listLen(t, "/weapon-passives", "weapon_passives"))

	t.Run("secret detail", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/secrets/" + catalog.Secrets[0].ID))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, catalog.Secrets[0].Name, result.Name)
	})

	t.Run("recommendation joins resolve against the catalog", func(t *testing.T) {
		for _, boss := range catalog.Bosses {
			resp, err := http.Get(ts.APIURL("/boss-recommendations/" + boss.ID))
			require.NoError(t, err)

			var result RecommendationsResponse
			testutil.AssertJSONResponse(t, resp, &result)
			resp.Body.Close()

			assert.Equal(t, boss.Name, result.Boss.Name)
		}
	})

	t.Run("reloading replaces instead of appending", func(t *testing.T) {
		reloaded, err := seed.Load(context.Background(), ts.Repos)
		require.NoError(t, err)

		assert.Equal(t, len(reloaded.Bosses), listLen(t, "/bosses", "bosses"))
	})
}
