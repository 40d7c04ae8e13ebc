package simulated

import (
	"context"
	"strings"

	"oguso-digital-be/pkg/llm"
)

// SimulatedProvider produces canned consultancy answers without calling
// any external API. It is the fallback when a user has not configured
// an api key.
type SimulatedProvider struct {
	// KnowledgeBaseUsed widens the opening line when documents were
	// available for the turn.
	KnowledgeBaseUsed bool
}

var _ llm.LLMProvider = &SimulatedProvider{}

func NewSimulatedProvider(knowledgeBaseUsed bool) *SimulatedProvider {
	return &SimulatedProvider{KnowledgeBaseUsed: knowledgeBaseUsed}
}

func (p *SimulatedProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	query := ""
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			query = history[i].Content
			break
		}
	}
	return p.Generate(ctx, query, opts...)
}

func (p *SimulatedProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	lowerQuery := strings.ToLower(prompt)

	var b strings.Builder
	b.WriteString("Based on my analysis")
	if p.KnowledgeBaseUsed {
		b.WriteString(" of your knowledge base")
	}
	b.WriteString(", Alexander Oguso offers comprehensive digital transformation services including AI solutions, XR experiences, and multimedia content creation.")

	if strings.Contains(lowerQuery, "ai") {
		b.WriteString(" Our AI solutions include custom models, predictive analytics, and machine learning implementations.")
	}
	if strings.Contains(lowerQuery, "xr") {
		b.WriteString(" Our XR experiences provide immersive AR and VR applications for customer engagement and employee training.")
	}
	if strings.Contains(lowerQuery, "multimedia") {
		b.WriteString(" Our multimedia content includes interactive presentations, data visualizations, and engaging digital storytelling.")
	}

	b.WriteString(" Would you like more specific information about any of these services?")
	return b.String(), nil
}
