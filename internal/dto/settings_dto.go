package dto

type UpdateAiSettingsRequest struct {
	Provider     string  `json:"provider" validate:"required,oneof=openai anthropic perplexity groq deepseek openrouter"`
	Model        string  `json:"model" validate:"required"`
	ApiKey       string  `json:"api_key"`
	Temperature  float64 `json:"temperature" validate:"gte=0,lte=2"`
	MaxTokens    int     `json:"max_tokens" validate:"gt=0,lte=32000"`
	RagEnabled   bool    `json:"rag_enabled"`
	SystemPrompt string  `json:"system_prompt" validate:"required"`
}

type AiSettingsResponse struct {
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
	ApiKey       string  `json:"api_key"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
	RagEnabled   bool    `json:"rag_enabled"`
	SystemPrompt string  `json:"system_prompt"`
}
