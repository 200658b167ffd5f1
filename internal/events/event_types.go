package events

import (
	"time"

	"github.com/spec-kit/group-allocator/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPlayerAdded    EventType = "player_added"
	EventPlayerRemoved  EventType = "player_removed"
	EventGroupsShuffled EventType = "groups_shuffled"
)

// Event represents a roster change emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PlayerAddedPayload payload.
type PlayerAddedPayload struct {
	Player     domain.Player `json:"player"`
	Groups     int           `json:"groups"`
	Unassigned int           `json:"unassigned"`
}

// PlayerRemovedPayload payload.
type PlayerRemovedPayload struct {
	Player     domain.Player `json:"player"`
	Groups     int           `json:"groups"`
	Unassigned int           `json:"unassigned"`
}

// GroupsShuffledPayload payload.
type GroupsShuffledPayload struct {
	Groups []domain.Group `json:"groups"`
}
