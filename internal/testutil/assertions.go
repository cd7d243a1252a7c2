package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error status and the detail message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedDetail string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	var errBody struct {
		Detail string `json:"detail"`
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NoError(t, json.Unmarshal(body, &errBody), "error body is not JSON: %s", string(body))

	assert.Contains(t, errBody.Detail, expectedDetail, "error detail mismatch")
}

// AssertContainsName verifies an entity name exists in a slice of names
func AssertContainsName(t *testing.T, names []string, name string) {
	t.Helper()
	assert.Contains(t, names, name, "name %s not found", name)
}

// AssertNotContainsName verifies an entity name does not exist in a slice
func AssertNotContainsName(t *testing.T, names []string, name string) {
	t.Helper()
	assert.NotContains(t, names, name, "name %s should not be present", name)
}
