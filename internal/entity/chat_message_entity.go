package entity

import (
	"time"

	"github.com/google/uuid"
)

// Roles stored in chat_history. The assistant reply is stored under role
// "system", matching what the settings form and transcript UI expect.
const (
	ChatRoleUser   = "user"
	ChatRoleSystem = "system"
)

type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	SessionId string
	Role      string
	Content   string
	CreatedAt time.Time
}
