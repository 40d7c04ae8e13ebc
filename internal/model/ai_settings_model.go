package model

import (
	"time"

	"github.com/google/uuid"
)

// AiSettings is one row per user, replaced wholesale by the settings form
// and read before every chat turn.
type AiSettings struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Provider     string    `gorm:"type:varchar(50);not null;default:'openai'"`
	Model        string    `gorm:"type:varchar(100);not null"`
	ApiKey       string    `gorm:"type:text"`
	Temperature  float64   `gorm:"type:numeric;default:0.7"`
	MaxTokens    int       `gorm:"default:1000"`
	RagEnabled   bool      `gorm:"default:true"`
	SystemPrompt string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (AiSettings) TableName() string {
	return "ai_settings"
}
