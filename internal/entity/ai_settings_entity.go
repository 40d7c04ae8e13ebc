package entity

import (
	"time"

	"github.com/google/uuid"
)

// Providers selectable in the settings form. Only OpenAI has a real
// integration; the rest resolve to the unimplemented provider variant.
const (
	AiProviderOpenAI     = "openai"
	AiProviderAnthropic  = "anthropic"
	AiProviderPerplexity = "perplexity"
	AiProviderGroq       = "groq"
	AiProviderDeepseek   = "deepseek"
	AiProviderOpenRouter = "openrouter"
)

type AiSettings struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Provider     string
	Model        string
	ApiKey       string
	Temperature  float64
	MaxTokens    int
	RagEnabled   bool
	SystemPrompt string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultAiSettings is what a user without a stored row chats with.
func DefaultAiSettings(userId uuid.UUID) *AiSettings {
	return &AiSettings{
		UserId:       userId,
		Provider:     AiProviderOpenAI,
		Model:        "gpt-4o-mini",
		ApiKey:       "",
		Temperature:  0.7,
		MaxTokens:    1000,
		RagEnabled:   true,
		SystemPrompt: "You are a helpful assistant for Alexander Oguso Digital Transformation Consultancy.",
	}
}
