package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kaanyalova/draft-advisor/internal/api"
	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/knowledge"
	"github.com/kaanyalova/draft-advisor/internal/meta"
	"github.com/kaanyalova/draft-advisor/internal/service"
	"github.com/kaanyalova/draft-advisor/internal/testutil"
	"github.com/kaanyalova/draft-advisor/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAdvisorServer spins up the API without a database; recommendation and
// catalog endpoints only need the knowledge base.
func newAdvisorServer(t *testing.T) *httptest.Server {
	t.Helper()

	kb, err := knowledge.Default()
	require.NoError(t, err)

	advisor := service.NewAdvisorService(kb, meta.NewStaticProvider())
	services := &service.Services{Advisor: advisor}

	hub := websocket.NewHub(advisor)
	go hub.Run()

	server := httptest.NewServer(api.NewRouter(services, hub))
	t.Cleanup(func() {
		server.Close()
		hub.Stop()
	})
	return server
}

func postSnapshot(t *testing.T, url string, snap domain.DraftSnapshot) *http.Response {
	t.Helper()

	body, err := json.Marshal(snap)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

type recommendationsResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

func TestRecommendationHandler_Picks(t *testing.T) {
	server := newAdvisorServer(t)
	url := server.URL + "/api/v1/recommendations/picks"

	t.Run("active draft", func(t *testing.T) {
		snap := testutil.NewSnapshotBuilder().
			WithUserRole(domain.RoleMid).
			WithBans([]int{157}, []int{238}).
			Build()
		resp := postSnapshot(t, url, snap)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result recommendationsResponse
		testutil.AssertJSONResponse(t, resp, &result)
		require.NotEmpty(t, result.Recommendations)
		testutil.AssertRankedDescending(t, result.Recommendations)
		testutil.AssertNotRecommends(t, result.Recommendations, 157)
		testutil.AssertNotRecommends(t, result.Recommendations, 238)
	})

	t.Run("no active draft returns an empty list", func(t *testing.T) {
		snap := testutil.NewSnapshotBuilder().WithPhase(domain.PhaseNone).Build()
		resp := postSnapshot(t, url, snap)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result recommendationsResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("unknown phase is a 400", func(t *testing.T) {
		resp := postSnapshot(t, url, domain.DraftSnapshot{Phase: "scrims"})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Unknown draft phase")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		resp, err := http.Post(url, "application/json", bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}

func TestRecommendationHandler_Bans(t *testing.T) {
	server := newAdvisorServer(t)
	url := server.URL + "/api/v1/recommendations/bans"

	snap := testutil.NewSnapshotBuilder().
		WithPhase(domain.PhaseBanning).
		WithUserRole(domain.RoleMid).
		Build()
	resp := postSnapshot(t, url, snap)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result recommendationsResponse
	testutil.AssertJSONResponse(t, resp, &result)
	require.NotEmpty(t, result.Recommendations)
	testutil.AssertRankedDescending(t, result.Recommendations)
	for _, rec := range result.Recommendations {
		assert.Positive(t, rec.Score)
	}
}

func TestRecommendationHandler_SmartBans(t *testing.T) {
	server := newAdvisorServer(t)
	url := server.URL + "/api/v1/recommendations/smart-bans"

	snap := testutil.NewSnapshotBuilder().
		WithPhase(domain.PhaseBanning).
		WithUserIntent(157).
		Build()
	resp := postSnapshot(t, url, snap)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result recommendationsResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.NotEmpty(t, result.Recommendations)
}

func TestChampionHandler_Catalog(t *testing.T) {
	server := newAdvisorServer(t)

	t.Run("full catalog", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/v1/champions/catalog")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result struct {
			Champions []domain.Champion `json:"champions"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.NotEmpty(t, result.Champions)
	})

	t.Run("role filter", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/v1/champions/catalog?role=mid")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result struct {
			Champions []domain.Champion `json:"champions"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		require.NotEmpty(t, result.Champions)
		for _, c := range result.Champions {
			assert.True(t, c.HasRole(domain.RoleMid))
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/v1/champions/catalog?role=coach")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Unknown role")
	})

	t.Run("single catalog entry", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/v1/champions/catalog/157")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var c domain.Champion
		testutil.AssertJSONResponse(t, resp, &c)
		assert.Equal(t, "Yasuo", c.Name)
	})

	t.Run("missing catalog entry", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/v1/champions/catalog/99999")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})
}
