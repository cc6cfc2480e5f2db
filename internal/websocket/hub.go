package websocket

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/service"
)

// Hub fans draft snapshots in from the game connector and pushes computed
// recommendations out to every connected overlay. A single goroutine owns
// the draft state; clients only ever touch their own send channel.
type Hub struct {
	advisor *service.AdvisorService

	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	draftUpdate chan *DraftUpdateRequest
	syncState   chan *Client
	stop        chan struct{}
	done        chan struct{} // closed when Run() exits
	stopped     bool
	mu          sync.RWMutex

	snapshot domain.DraftSnapshot
	latest   RecommendationsPayload
}

type DraftUpdateRequest struct {
	Client   *Client
	Snapshot domain.DraftSnapshot
}

func NewHub(advisor *service.AdvisorService) *Hub {
	return &Hub{
		advisor:     advisor,
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		draftUpdate: make(chan *DraftUpdateRequest),
		syncState:   make(chan *Client),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		snapshot:    domain.DraftSnapshot{Phase: domain.PhaseNone},
	}
}

func (h *Hub) Run() {
	defer close(h.done) // Signal that Run() has exited

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if !h.stopped {
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mu.Unlock()

		case req := <-h.draftUpdate:
			h.handleDraftUpdate(req)

		case client := <-h.syncState:
			h.handleSyncState(client)
		}
	}
}

// Stop gracefully shuts down the hub. It blocks until Run() has exited.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	close(h.stop)
	<-h.done // Wait for Run() to finish
}

func (h *Hub) handleDraftUpdate(req *DraftUpdateRequest) {
	payload, err := h.compute(req.Snapshot)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPhase) {
			req.Client.sendError("UNKNOWN_PHASE", "Draft phase not recognized")
			return
		}
		log.Printf("Hub: recommendation error: %v", err)
		req.Client.sendError("ENGINE_ERROR", "Failed to compute recommendations")
		return
	}

	h.snapshot = req.Snapshot
	h.latest = payload

	msg, err := NewMessage(MessageTypeRecommendations, payload)
	if err != nil {
		log.Printf("Hub: failed to build recommendations message: %v", err)
		return
	}
	h.broadcast(msg)
}

func (h *Hub) handleSyncState(client *Client) {
	msg, err := NewMessage(MessageTypeStateSync, StateSyncPayload{
		Snapshot:        h.snapshot,
		Recommendations: h.latest,
	})
	if err != nil {
		log.Printf("Hub: failed to build state sync message: %v", err)
		return
	}
	client.Send(msg)
}

func (h *Hub) compute(snap domain.DraftSnapshot) (RecommendationsPayload, error) {
	ctx := context.Background()

	picks, err := h.advisor.PickSuggestions(ctx, snap)
	if err != nil {
		return RecommendationsPayload{}, err
	}
	bans, err := h.advisor.BanSuggestions(ctx, snap)
	if err != nil {
		return RecommendationsPayload{}, err
	}
	smartBans, err := h.advisor.SmartBanSuggestions(ctx, snap)
	if err != nil {
		return RecommendationsPayload{}, err
	}

	return RecommendationsPayload{
		Phase:     snap.Phase,
		Picks:     picks,
		Bans:      bans,
		SmartBans: smartBans,
	}, nil
}

func (h *Hub) broadcast(msg *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		client.Send(msg)
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister safely unregisters a client, handling the case where the hub
// may be stopped.
func (h *Hub) Unregister(client *Client) {
	h.mu.RLock()
	stopped := h.stopped
	h.mu.RUnlock()

	if stopped {
		return
	}

	// Non-blocking send in case Hub is in the process of stopping
	select {
	case h.unregister <- client:
	default:
	}
}
