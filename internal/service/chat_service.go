package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/logger"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/repository/specification"
	"oguso-digital-be/internal/repository/unitofwork"

	"oguso-digital-be/pkg/llm"
	"oguso-digital-be/pkg/llm/factory"

	"github.com/google/uuid"
)

// knowledgeDocLimit caps how many documents are stuffed into the model
// context per turn. There is no relevance ranking; the five oldest rows
// win.
const knowledgeDocLimit = 5

type IChatService interface {
	GenerateResponse(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.ChatHistoryResponse, error)
}

// ProviderFactory builds the LLM backend for one turn. Swappable in
// tests.
type ProviderFactory func(providerType, apiKey, modelName, baseURL string, knowledgeBaseUsed bool) llm.LLMProvider

type chatService struct {
	uowFactory      unitofwork.RepositoryFactory
	settingsService ISettingsService
	providerFactory ProviderFactory
	openAIBaseURL   string
	log             logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	settingsService ISettingsService,
	providerFactory ProviderFactory,
	openAIBaseURL string,
	log logger.ILogger,
) IChatService {
	if providerFactory == nil {
		providerFactory = factory.NewLLMProvider
	}
	return &chatService{
		uowFactory:      uowFactory,
		settingsService: settingsService,
		providerFactory: providerFactory,
		openAIBaseURL:   openAIBaseURL,
		log:             log,
	}
}

func (s *chatService) GenerateResponse(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := s.settingsService.GetForUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.BySessionID{SessionID: req.SessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, serverutils.NewDependency("Failed to fetch chat history", err)
	}

	// The user turn is stored before generation. A failed insert is
	// logged and the turn continues.
	userMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		SessionId: req.SessionId,
		Role:      entity.ChatRoleUser,
		Content:   req.Query,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		s.log.Error("ChatService", "Error storing user query", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}

	var docs []*entity.KnowledgeDoc
	if settings.RagEnabled {
		found, docsErr := uow.KnowledgeDocRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: userId},
			specification.Limit{N: knowledgeDocLimit},
		)
		if docsErr != nil {
			s.log.Warn("ChatService", "Failed to fetch knowledge docs", map[string]interface{}{
				"user_id": userId.String(),
				"error":   docsErr.Error(),
			})
		} else {
			docs = found
		}
	}

	provider := s.providerFactory(settings.Provider, settings.ApiKey, settings.Model, s.openAIBaseURL, len(docs) > 0)

	messages := buildChatMessages(settings, docs, history, req.Query)

	reply, err := provider.Chat(ctx, messages,
		llm.WithModel(settings.Model),
		llm.WithTemperature(settings.Temperature),
		llm.WithMaxTokens(settings.MaxTokens),
	)
	if err != nil {
		s.log.Error("ChatService", "Provider call failed", map[string]interface{}{
			"user_id":  userId.String(),
			"provider": settings.Provider,
			"error":    err.Error(),
		})
		return nil, serverutils.NewDependency("Failed to generate a response. Please check your API settings and try again.", err)
	}
	if reply == "" {
		reply = "No response generated."
	}

	// Assistant replies are stored under role "system"; the transcript
	// reader renders that role as the bot side.
	assistantMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		SessionId: req.SessionId,
		Role:      entity.ChatRoleSystem,
		Content:   reply,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		s.log.Error("ChatService", "Error storing assistant reply", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}

	return &dto.ChatResponse{Response: reply}, nil
}

func (s *chatService) GetHistory(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, serverutils.NewDependency("Failed to fetch chat history", err)
	}

	resp := &dto.ChatHistoryResponse{
		SessionId: sessionId,
		Messages:  make([]dto.ChatMessageResponse, 0, len(messages)),
	}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, dto.ChatMessageResponse{
			Id:        msg.Id.String(),
			SessionId: msg.SessionId,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return resp, nil
}

// buildChatMessages assembles the provider payload: system prompt, an
// optional knowledge-base context block, the stored transcript under
// its stored roles, then the current query.
func buildChatMessages(settings *entity.AiSettings, docs []*entity.KnowledgeDoc, history []*entity.ChatMessage, query string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+3)

	messages = append(messages, llm.Message{
		Role:    "system",
		Content: settings.SystemPrompt,
	})

	if len(docs) > 0 {
		parts := make([]string, 0, len(docs))
		for _, doc := range docs {
			parts = append(parts, fmt.Sprintf("Document: %s\nContent: %s", doc.Name, doc.Content))
		}
		messages = append(messages, llm.Message{
			Role:    "system",
			Content: "Here are some relevant documents from the knowledge base:\n\n" + strings.Join(parts, "\n\n"),
		})
	}

	for _, msg := range history {
		messages = append(messages, llm.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	messages = append(messages, llm.Message{
		Role:    "user",
		Content: query,
	})

	return messages
}
