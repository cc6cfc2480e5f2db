package websocket_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kaanyalova/draft-advisor/internal/api/handlers"
	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/knowledge"
	"github.com/kaanyalova/draft-advisor/internal/meta"
	"github.com/kaanyalova/draft-advisor/internal/service"
	"github.com/kaanyalova/draft-advisor/internal/testutil"
	"github.com/kaanyalova/draft-advisor/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messageTimeout = 3 * time.Second

func newTestHubServer(t *testing.T) string {
	t.Helper()

	kb, err := knowledge.Default()
	require.NoError(t, err)

	advisor := service.NewAdvisorService(kb, meta.NewStaticProvider())
	hub := websocket.NewHub(advisor)
	go hub.Run()

	wsHandler := handlers.NewWebSocketHandler(hub)
	server := httptest.NewServer(http.HandlerFunc(wsHandler.Handle))
	t.Cleanup(func() {
		server.Close()
		hub.Stop()
	})

	return "ws" + server.URL[4:]
}

func decodePayload(t *testing.T, msg *websocket.Message, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(msg.Payload, v))
}

func TestDraftUpdateBroadcastsRecommendations(t *testing.T) {
	url := newTestHubServer(t)

	connector := testutil.NewWSClient(t, url)
	overlay := testutil.NewWSClient(t, url)

	snap := testutil.NewSnapshotBuilder().
		WithUserRole(domain.RoleMid).
		WithBans([]int{157}, nil).
		Build()
	connector.SendDraftUpdate(snap)

	// Every connected client gets the push, not just the sender
	for _, client := range []*testutil.WSClient{connector, overlay} {
		msg := client.WaitForMessage(websocket.MessageTypeRecommendations, messageTimeout)

		var payload websocket.RecommendationsPayload
		decodePayload(t, msg, &payload)

		assert.Equal(t, domain.PhasePicking, payload.Phase)
		require.NotEmpty(t, payload.Picks)
		testutil.AssertNotRecommends(t, payload.Picks, 157)
		testutil.AssertRankedDescending(t, payload.Picks)
		assert.NotEmpty(t, payload.Bans)
	}
}

func TestDraftUpdateOutsideDraft(t *testing.T) {
	url := newTestHubServer(t)
	client := testutil.NewWSClient(t, url)

	snap := testutil.NewSnapshotBuilder().WithPhase(domain.PhaseNone).Build()
	client.SendDraftUpdate(snap)

	msg := client.WaitForMessage(websocket.MessageTypeRecommendations, messageTimeout)

	var payload websocket.RecommendationsPayload
	decodePayload(t, msg, &payload)
	assert.Empty(t, payload.Picks)
}

func TestDraftUpdateUnknownPhase(t *testing.T) {
	url := newTestHubServer(t)
	client := testutil.NewWSClient(t, url)

	client.SendDraftUpdate(domain.DraftSnapshot{Phase: "scrims"})

	msg := client.WaitForMessage(websocket.MessageTypeError, messageTimeout)

	var payload websocket.ErrorPayload
	decodePayload(t, msg, &payload)
	assert.Equal(t, "UNKNOWN_PHASE", payload.Code)
}

func TestSyncStateReturnsLatest(t *testing.T) {
	url := newTestHubServer(t)

	connector := testutil.NewWSClient(t, url)
	snap := testutil.NewSnapshotBuilder().
		WithUserIntent(157).
		WithPhase(domain.PhaseBanning).
		Build()
	connector.SendDraftUpdate(snap)
	connector.WaitForMessage(websocket.MessageTypeRecommendations, messageTimeout)

	// A late-joining overlay can catch up without a new draft event
	overlay := testutil.NewWSClient(t, url)
	overlay.SyncState()

	msg := overlay.WaitForMessage(websocket.MessageTypeStateSync, messageTimeout)

	var payload websocket.StateSyncPayload
	decodePayload(t, msg, &payload)
	assert.Equal(t, domain.PhaseBanning, payload.Snapshot.Phase)
	require.NotNil(t, payload.Snapshot.UserIntent)
	assert.Equal(t, 157, payload.Snapshot.UserIntent.ChampionID)
	assert.NotEmpty(t, payload.Recommendations.SmartBans)
}
