package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_REGISTERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewUserRegisteredEvent(userId, email string) Event {
	return BaseEvent{
		Type: "USER_REGISTERED",
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

func NewDocumentIngestedEvent(userId, docId, name string, hasEmbedding bool) Event {
	return BaseEvent{
		Type: "DOCUMENT_INGESTED",
		Data: map[string]interface{}{
			"user_id":       userId,
			"document_id":   docId,
			"name":          name,
			"has_embedding": hasEmbedding,
		},
		OccurredAt: time.Now(),
	}
}

func NewContactReceivedEvent(messageId, name, email string) Event {
	return BaseEvent{
		Type: "CONTACT_RECEIVED",
		Data: map[string]interface{}{
			"message_id": messageId,
			"name":       name,
			"email":      email,
		},
		OccurredAt: time.Now(),
	}
}
