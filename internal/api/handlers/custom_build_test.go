package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dom/nightreign-guide/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCustomBuild(t *testing.T, ts *testutil.TestServer, payload map[string]any) (string, *http.Response) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(ts.APIURL("/custom-build"), "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	if resp.StatusCode != http.StatusOK {
		return "", resp
	}

	var created struct {
		Message string `json:"message"`
		BuildID string `json:"build_id"`
	}
	testutil.AssertJSONResponse(t, resp, &created)
	assert.Equal(t, "Custom build created successfully", created.Message)
	return created.BuildID, resp
}

func listCustomBuilds(t *testing.T, ts *testutil.TestServer) []map[string]any {
	t.Helper()

	resp, err := http.Get(ts.APIURL("/custom-builds"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		CustomBuilds []map[string]any `json:"custom_builds"`
	}
	testutil.AssertJSONResponse(t, resp, &result)
	return result.CustomBuilds
}

func TestCustomBuildHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("generates a build id", func(t *testing.T) {
		buildID, resp := postCustomBuild(t, ts, map[string]any{
			"name":      "Frost Reaver",
			"character": "Duchess",
			"weapons":   []string{"Frost Blade"},
			"user_id":   "alice",
		})
		defer resp.Body.Close()

		_, err := uuid.Parse(buildID)
		assert.NoError(t, err, "build_id should be a UUID")
	})

	t.Run("client-supplied id is discarded", func(t *testing.T) {
		buildID, resp := postCustomBuild(t, ts, map[string]any{
			"id":   "my-own-id",
			"name": "Forged ID Build",
		})
		defer resp.Body.Close()

		assert.NotEqual(t, "my-own-id", buildID)
	})

	t.Run("missing user defaults to anonymous", func(t *testing.T) {
		ts.DB.Truncate(t)

		buildID, resp := postCustomBuild(t, ts, map[string]any{
			"name": "Nameless Build",
		})
		defer resp.Body.Close()

		builds := listCustomBuilds(t, ts)
		require.Len(t, builds, 1)
		assert.Equal(t, buildID, builds[0]["id"])
		assert.Equal(t, "anonymous", builds[0]["user_id"])
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(ts.APIURL("/custom-build"), "application/json", bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid request body")
	})
}

func TestCustomBuildHandler_GetAll(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, listCustomBuilds(t, ts))
	})

	t.Run("flattens submitted fields with injected attributes", func(t *testing.T) {
		buildID, resp := postCustomBuild(t, ts, map[string]any{
			"name":      "Storm Caller",
			"character": "Recluse",
			"weapons":   []string{"Staff of Storms"},
			"user_id":   "bob",
		})
		defer resp.Body.Close()

		builds := listCustomBuilds(t, ts)
		require.Len(t, builds, 1)

		doc := builds[0]
		assert.Equal(t, buildID, doc["id"])
		assert.Equal(t, "bob", doc["user_id"])
		assert.Equal(t, "Storm Caller", doc["name"])
		assert.Equal(t, "Recluse", doc["character"])
		assert.NotEmpty(t, doc["created_at"])
	})
}
