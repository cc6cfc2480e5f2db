package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

func TestClientSendAfterClose(t *testing.T) {
	c := NewClient(nil, nil)
	c.Close()

	msg, err := NewMessage(MessageTypeRecommendations, RecommendationsPayload{Phase: domain.PhasePicking})
	require.NoError(t, err)

	require.NotPanics(t, func() { c.Send(msg) })
	require.NotPanics(t, func() { c.sendError("ENGINE_ERROR", "unavailable") })
}

func TestClientSendDropsWhenBufferFull(t *testing.T) {
	c := NewClient(nil, nil)
	for i := 0; i < cap(c.send); i++ {
		c.send <- []byte("{}")
	}

	msg, err := NewMessage(MessageTypeRecommendations, RecommendationsPayload{Phase: domain.PhasePicking})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		c.Send(msg)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a full buffer")
	}
	require.Len(t, c.send, cap(c.send))
}

func TestBroadcastSkipsStalledClient(t *testing.T) {
	hub := NewHub(nil)

	stalled := NewClient(hub, nil)
	for i := 0; i < cap(stalled.send); i++ {
		stalled.send <- []byte("{}")
	}
	healthy := NewClient(hub, nil)
	hub.clients[stalled] = true
	hub.clients[healthy] = true

	msg, err := NewMessage(MessageTypeRecommendations, RecommendationsPayload{Phase: domain.PhasePicking})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		hub.broadcast(msg)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a client with a full buffer")
	}
	require.Len(t, healthy.send, 1)
}
