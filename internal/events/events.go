// Package events defines roster event payloads and their Kafka publisher.
package events

import (
	"context"
	"time"
)

// Event types carried in the event_type message header.
const (
	TypeSignedUp = "roster.signed_up"
	TypeRemoved  = "roster.removed"
)

// RosterEvent represents the message emitted when an activity roster changes.
type RosterEvent struct {
	Type       string    `json:"type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers roster events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event RosterEvent) error
}

// NopPublisher discards events. Used when eventing is disabled.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, RosterEvent) error { return nil }
