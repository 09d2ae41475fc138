package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventFeedbackCreated EventType = "feedback_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	FeedbackID string      `json:"feedback_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// FeedbackCreatedPayload payload.
type FeedbackCreatedPayload struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}
