package service

import (
	"context"
	"time"

	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/logger"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/repository/specification"
	"oguso-digital-be/internal/repository/unitofwork"

	"oguso-digital-be/pkg/embedding"
	"oguso-digital-be/pkg/events"
	pkgNats "oguso-digital-be/pkg/nats"

	"github.com/google/uuid"
)

// embeddingInputLimit caps how much of a document is embedded. The full
// content is always stored regardless.
const embeddingInputLimit = 8000

type IDocumentService interface {
	Ingest(ctx context.Context, userId uuid.UUID, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.DocumentResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, docId uuid.UUID) error
}

// EmbedderFactory builds the embedding backend for one ingestion.
// Swappable in tests.
type EmbedderFactory func(baseURL, apiKey, model string) embedding.EmbeddingProvider

type documentService struct {
	uowFactory      unitofwork.RepositoryFactory
	settingsService ISettingsService
	embedderFactory EmbedderFactory
	eventPublisher  *pkgNats.Publisher
	openAIBaseURL   string
	embeddingModel  string
	log             logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	settingsService ISettingsService,
	embedderFactory EmbedderFactory,
	eventPublisher *pkgNats.Publisher,
	openAIBaseURL string,
	embeddingModel string,
	log logger.ILogger,
) IDocumentService {
	if embedderFactory == nil {
		embedderFactory = func(baseURL, apiKey, model string) embedding.EmbeddingProvider {
			return embedding.NewOpenAIProvider(baseURL, apiKey, model)
		}
	}
	return &documentService{
		uowFactory:      uowFactory,
		settingsService: settingsService,
		embedderFactory: embedderFactory,
		eventPublisher:  eventPublisher,
		openAIBaseURL:   openAIBaseURL,
		embeddingModel:  embeddingModel,
		log:             log,
	}
}

func (s *documentService) Ingest(ctx context.Context, userId uuid.UUID, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	settings, err := s.settingsService.GetForUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	// Embeddings are attempted only for a configured OpenAI key, and an
	// embedding failure never fails the ingestion.
	var vector []float32
	if settings.ApiKey != "" && settings.Provider == entity.AiProviderOpenAI {
		embedder := s.embedderFactory(s.openAIBaseURL, settings.ApiKey, s.embeddingModel)
		input := truncateRunes(req.Content, embeddingInputLimit)
		generated, embedErr := embedder.Generate(ctx, input)
		if embedErr != nil {
			s.log.Warn("DocumentService", "Embedding generation failed, storing without embedding", map[string]interface{}{
				"user_id": userId.String(),
				"name":    req.Name,
				"error":   embedErr.Error(),
			})
		} else {
			vector = generated
		}
	}

	doc := &entity.KnowledgeDoc{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		Content:   req.Content,
		Embedding: vector,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KnowledgeDocRepository().Create(ctx, doc); err != nil {
		return nil, serverutils.NewDependency("failed to store document", err)
	}

	if s.eventPublisher != nil {
		event := events.NewDocumentIngestedEvent(userId.String(), doc.Id.String(), doc.Name, vector != nil)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("DocumentService", "Failed to publish DOCUMENT_INGESTED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.IngestDocumentResponse{
		Success:      true,
		DocumentId:   doc.Id.String(),
		HasEmbedding: vector != nil,
	}, nil
}

func (s *documentService) List(ctx context.Context, userId uuid.UUID) ([]dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.KnowledgeDocRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewDependency("failed to list documents", err)
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, dto.DocumentResponse{
			Id:           doc.Id.String(),
			Name:         doc.Name,
			Content:      doc.Content,
			HasEmbedding: doc.Embedding != nil,
			CreatedAt:    doc.CreatedAt,
		})
	}
	return resp, nil
}

func (s *documentService) Delete(ctx context.Context, userId uuid.UUID, docId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.KnowledgeDocRepository().DeleteOwned(ctx, docId, userId)
	if err != nil {
		return serverutils.NewDependency("failed to delete document", err)
	}
	if affected == 0 {
		return serverutils.NewNotFound("document not found")
	}
	return nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
