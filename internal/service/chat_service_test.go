package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/repository/memory"
	"oguso-digital-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingProvider struct {
	reply    string
	err      error
	messages []llm.Message
	options  llm.Options
}

func (p *capturingProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	p.messages = history
	options := llm.Options{}
	for _, opt := range opts {
		opt(&options)
	}
	p.options = options
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func (p *capturingProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

type factoryCall struct {
	providerType      string
	apiKey            string
	knowledgeBaseUsed bool
}

func newChatFixture(uow *fakeUow, provider *capturingProvider) (IChatService, *factoryCall) {
	call := &factoryCall{}
	factory := func(providerType, apiKey, modelName, baseURL string, knowledgeBaseUsed bool) llm.LLMProvider {
		call.providerType = providerType
		call.apiKey = apiKey
		call.knowledgeBaseUsed = knowledgeBaseUsed
		return provider
	}
	settingsService := NewSettingsService(&fakeFactory{uow: uow}, memory.NewSettingsCache())
	return NewChatService(&fakeFactory{uow: uow}, settingsService, factory, "http://unused", noopLogger{}), call
}

func TestGenerateResponseStoresBothTurns(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{
		UserId:       userId,
		Provider:     entity.AiProviderOpenAI,
		Model:        "gpt-4o-mini",
		ApiKey:       "sk-test",
		Temperature:  0.3,
		MaxTokens:    500,
		RagEnabled:   false,
		SystemPrompt: "You are a helpful assistant.",
	}

	provider := &capturingProvider{reply: "Here is my answer."}
	svc, call := newChatFixture(uow, provider)

	res, err := svc.GenerateResponse(context.Background(), userId, &dto.ChatRequest{
		Query:     "What services do you offer?",
		SessionId: "session-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Here is my answer.", res.Response)

	require.Len(t, uow.chat.created, 2)
	assert.Equal(t, entity.ChatRoleUser, uow.chat.created[0].Role)
	assert.Equal(t, "What services do you offer?", uow.chat.created[0].Content)
	assert.Equal(t, entity.ChatRoleSystem, uow.chat.created[1].Role)
	assert.Equal(t, "Here is my answer.", uow.chat.created[1].Content)

	assert.Equal(t, "sk-test", call.apiKey)
	assert.False(t, call.knowledgeBaseUsed)
	assert.Equal(t, 0.3, provider.options.Temperature)
	assert.Equal(t, 500, provider.options.MaxTokens)
	assert.Equal(t, "gpt-4o-mini", provider.options.Model)
}

func TestGenerateResponseBuildsPromptWithHistoryAndDocs(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{
		UserId:       userId,
		Provider:     entity.AiProviderOpenAI,
		Model:        "gpt-4o-mini",
		ApiKey:       "sk-test",
		RagEnabled:   true,
		SystemPrompt: "System prompt here.",
	}
	uow.chat.history = []*entity.ChatMessage{
		{Role: entity.ChatRoleUser, Content: "earlier question", CreatedAt: time.Now().Add(-time.Minute)},
		{Role: entity.ChatRoleSystem, Content: "earlier answer", CreatedAt: time.Now()},
	}
	uow.docs.docs = []*entity.KnowledgeDoc{
		{Name: "pricing", Content: "We bill weekly."},
		{Name: "team", Content: "Twelve consultants."},
	}

	provider := &capturingProvider{reply: "ok"}
	svc, call := newChatFixture(uow, provider)

	_, err := svc.GenerateResponse(context.Background(), userId, &dto.ChatRequest{
		Query:     "current question",
		SessionId: "session-2",
	})
	require.NoError(t, err)

	assert.True(t, call.knowledgeBaseUsed)

	// system prompt, doc context, two history turns, current query
	require.Len(t, provider.messages, 5)
	assert.Equal(t, "system", provider.messages[0].Role)
	assert.Equal(t, "System prompt here.", provider.messages[0].Content)
	assert.Equal(t, "system", provider.messages[1].Role)
	assert.Contains(t, provider.messages[1].Content, "Here are some relevant documents from the knowledge base:")
	assert.Contains(t, provider.messages[1].Content, "Document: pricing\nContent: We bill weekly.")
	assert.Contains(t, provider.messages[1].Content, "Document: team\nContent: Twelve consultants.")
	assert.Equal(t, "earlier question", provider.messages[2].Content)
	assert.Equal(t, entity.ChatRoleSystem, provider.messages[3].Role)
	assert.Equal(t, "current question", provider.messages[4].Content)
}

func TestGenerateResponseSkipsDocsWhenRagDisabled(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{
		UserId:       userId,
		Provider:     entity.AiProviderOpenAI,
		ApiKey:       "sk-test",
		RagEnabled:   false,
		SystemPrompt: "sp",
	}
	uow.docs.docs = []*entity.KnowledgeDoc{{Name: "ignored", Content: "ignored"}}

	provider := &capturingProvider{reply: "ok"}
	svc, call := newChatFixture(uow, provider)

	_, err := svc.GenerateResponse(context.Background(), userId, &dto.ChatRequest{Query: "q", SessionId: "s"})
	require.NoError(t, err)

	assert.False(t, call.knowledgeBaseUsed)
	require.Len(t, provider.messages, 2) // system prompt + query only
}

func TestGenerateResponseUsesDefaultsWhenNoSettingsRow(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = nil

	provider := &capturingProvider{reply: "ok"}
	svc, call := newChatFixture(uow, provider)

	_, err := svc.GenerateResponse(context.Background(), userId, &dto.ChatRequest{Query: "q", SessionId: "s"})
	require.NoError(t, err)

	// Defaults carry no api key, so the factory gets an empty one.
	assert.Equal(t, entity.AiProviderOpenAI, call.providerType)
	assert.Equal(t, "", call.apiKey)
	assert.Equal(t, "gpt-4o-mini", provider.options.Model)
}

func TestGenerateResponseFailsOnSettingsFetchError(t *testing.T) {
	uow := newFakeUow()
	uow.settings.findErr = errors.New("db down")

	svc, _ := newChatFixture(uow, &capturingProvider{})

	_, err := svc.GenerateResponse(context.Background(), uuid.New(), &dto.ChatRequest{Query: "q", SessionId: "s"})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
}

func TestGenerateResponseMapsProviderError(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{UserId: userId, Provider: entity.AiProviderOpenAI, ApiKey: "sk", SystemPrompt: "sp"}

	provider := &capturingProvider{err: errors.New("upstream 500")}
	svc, _ := newChatFixture(uow, provider)

	_, err := svc.GenerateResponse(context.Background(), userId, &dto.ChatRequest{Query: "q", SessionId: "s"})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, "Failed to generate a response. Please check your API settings and try again.", appErr.Message)

	// Only the user turn got stored.
	require.Len(t, uow.chat.created, 1)
	assert.Equal(t, entity.ChatRoleUser, uow.chat.created[0].Role)
}

func TestGenerateResponseContinuesWhenUserInsertFails(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{UserId: userId, Provider: entity.AiProviderOpenAI, ApiKey: "sk", SystemPrompt: "sp"}
	uow.chat.createErr = errors.New("insert failed")

	provider := &capturingProvider{reply: "still works"}
	svc, _ := newChatFixture(uow, provider)

	res, err := svc.GenerateResponse(context.Background(), userId, &dto.ChatRequest{Query: "q", SessionId: "s"})
	require.NoError(t, err)
	assert.Equal(t, "still works", res.Response)
}

func TestGetHistoryMapsMessages(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.chat.history = []*entity.ChatMessage{
		{Id: uuid.New(), SessionId: "s", Role: entity.ChatRoleUser, Content: "hi"},
		{Id: uuid.New(), SessionId: "s", Role: entity.ChatRoleSystem, Content: "hello"},
	}

	svc, _ := newChatFixture(uow, &capturingProvider{})

	res, err := svc.GetHistory(context.Background(), userId, "s")
	require.NoError(t, err)
	assert.Equal(t, "s", res.SessionId)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "hi", res.Messages[0].Content)
	assert.Equal(t, entity.ChatRoleSystem, res.Messages[1].Role)
}
