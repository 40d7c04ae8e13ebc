package factory

import (
	"oguso-digital-be/pkg/llm"
	"oguso-digital-be/pkg/llm/openai"
	"oguso-digital-be/pkg/llm/simulated"
)

// NewLLMProvider selects the backend for a chat turn. Without an api
// key every provider degrades to the simulated one; with a key only
// openai is wired for real calls, anything else gets the unimplemented
// wrapper.
func NewLLMProvider(providerType, apiKey, modelName, baseURL string, knowledgeBaseUsed bool) llm.LLMProvider {
	if apiKey == "" {
		return simulated.NewSimulatedProvider(knowledgeBaseUsed)
	}

	switch providerType {
	case "openai":
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1" // Default
		}
		return openai.NewOpenAIProvider(baseURL, apiKey, modelName)
	default:
		return simulated.NewUnimplementedProvider(providerType, knowledgeBaseUsed)
	}
}
