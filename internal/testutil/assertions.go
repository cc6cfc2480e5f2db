package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/kaanyalova/draft-advisor/internal/domain"
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

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	// Error responses are plain text in this API
	assert.Contains(t, string(body), expectedMessage, "error message mismatch")
}

// AssertRecommends verifies a champion id appears in a recommendation list
func AssertRecommends(t *testing.T, recs []domain.Recommendation, championID int) {
	t.Helper()
	for _, rec := range recs {
		if rec.ChampionID == championID {
			return
		}
	}
	assert.Fail(t, "champion not recommended", "champion %d not found in recommendations", championID)
}

// AssertNotRecommends verifies a champion id does not appear in a
// recommendation list
func AssertNotRecommends(t *testing.T, recs []domain.Recommendation, championID int) {
	t.Helper()
	for _, rec := range recs {
		assert.NotEqual(t, championID, rec.ChampionID,
			"champion %d should not be recommended", championID)
	}
}

// AssertRankedDescending verifies recommendations are ordered best-first
func AssertRankedDescending(t *testing.T, recs []domain.Recommendation) {
	t.Helper()
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score,
			"recommendations out of order at index %d", i)
	}
}
