package dto

import "time"

// AdminNotification is the payload pushed to connected admin websocket
// clients when something noteworthy happens (new contact message, new
// document, new user).
type AdminNotification struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}
