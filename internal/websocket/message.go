package websocket

import (
	"encoding/json"
	"time"

	"github.com/kaanyalova/draft-advisor/internal/domain"
)

type MessageType string

const (
	// Client to Server
	MessageTypeDraftUpdate MessageType = "DRAFT_UPDATE"
	MessageTypeSyncState   MessageType = "SYNC_STATE"

	// Server to Client
	MessageTypeRecommendations MessageType = "RECOMMENDATIONS"
	MessageTypeStateSync       MessageType = "STATE_SYNC"
	MessageTypeError           MessageType = "ERROR"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
	Seq       int             `json:"seq,omitempty"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// Client to Server payloads

// DraftUpdatePayload carries a fresh snapshot from the game connector.
// The hub replaces its previous snapshot wholesale.
type DraftUpdatePayload struct {
	Snapshot domain.DraftSnapshot `json:"snapshot"`
}

// Server to Client payloads

// RecommendationsPayload is pushed to every connected overlay after each
// draft update.
type RecommendationsPayload struct {
	Phase     domain.DraftPhase       `json:"phase"`
	Picks     []domain.Recommendation `json:"picks"`
	Bans      []domain.Recommendation `json:"bans"`
	SmartBans []domain.Recommendation `json:"smartBans"`
}

// StateSyncPayload answers an explicit SYNC_STATE request with the last
// snapshot and the recommendations computed from it.
type StateSyncPayload struct {
	Snapshot        domain.DraftSnapshot   `json:"snapshot"`
	Recommendations RecommendationsPayload `json:"recommendations"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
