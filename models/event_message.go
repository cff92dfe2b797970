package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventMessage is the envelope published to the broker and forwarded to
// websocket clients when a task or user changes.
type EventMessage struct {
	ID        string                 `json:"id"`
	Event     string                 `json:"event"`
	Timestamp time.Time              `json:"timestamp"`
	OwnerID   string                 `json:"owner_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
}

// NewEventMessage creates an event envelope for the given subject.
func NewEventMessage(event string, ownerID string, payload map[string]interface{}) *EventMessage {
	return &EventMessage{
		ID:        uuid.New().String(),
		Event:     event,
		Timestamp: time.Now().UTC(),
		OwnerID:   ownerID,
		Payload:   payload,
	}
}

func (m *EventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func (m *EventMessage) FromJSON(data []byte) error {
	return json.Unmarshal(data, m)
}
