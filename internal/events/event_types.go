package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPostCreated  EventType = "post_created"
	EventPostUpdated  EventType = "post_updated"
	EventPostDeleted  EventType = "post_deleted"
	EventUserLoggedIn EventType = "user_logged_in"
)

// AllEventTypes lists every event the services emit.
var AllEventTypes = []EventType{
	EventPostCreated,
	EventPostUpdated,
	EventPostDeleted,
	EventUserLoggedIn,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PostPayload describes a post change.
type PostPayload struct {
	PostID         string `json:"post_id"`
	ContentPreview string `json:"content_preview,omitempty"`
}

// LoginPayload describes a successful login.
type LoginPayload struct {
	Email string `json:"email"`
}
