package simulated

import (
	"context"
	"fmt"

	"oguso-digital-be/pkg/llm"
)

// UnimplementedProvider wraps the simulated fallback for providers a
// user selected but the backend cannot call yet. The canned answer is
// prefixed with a notice naming the provider.
type UnimplementedProvider struct {
	ProviderName string
	fallback     *SimulatedProvider
}

var _ llm.LLMProvider = &UnimplementedProvider{}

func NewUnimplementedProvider(providerName string, knowledgeBaseUsed bool) *UnimplementedProvider {
	return &UnimplementedProvider{
		ProviderName: providerName,
		fallback:     NewSimulatedProvider(knowledgeBaseUsed),
	}
}

func (p *UnimplementedProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	simulated, err := p.fallback.Chat(ctx, history, opts...)
	if err != nil {
		return "", err
	}
	return p.prefix() + simulated, nil
}

func (p *UnimplementedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	simulated, err := p.fallback.Generate(ctx, prompt, opts...)
	if err != nil {
		return "", err
	}
	return p.prefix() + simulated, nil
}

func (p *UnimplementedProvider) prefix() string {
	return fmt.Sprintf("Provider %s is not fully implemented yet. Using simulated response.\n\n", p.ProviderName)
}
