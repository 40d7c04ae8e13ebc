package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is append-only: rows are written once per turn (role "user" by
// the caller, role "system" by the chat function) and never updated or
// deleted, so there are no UpdatedAt/DeletedAt columns.
type ChatMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionId string    `gorm:"type:varchar(255);not null;index"` // client-generated, groups a transcript
	Role      string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_history"
}
