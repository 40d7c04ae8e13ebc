package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/repository/memory"
	"oguso-digital-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	inputs []string
}

func (e *fakeEmbedder) Generate(ctx context.Context, text string) ([]float32, error) {
	e.inputs = append(e.inputs, text)
	if e.err != nil {
		return nil, e.err
	}
	return e.vector, nil
}

func newDocumentFixture(uow *fakeUow, embedder *fakeEmbedder) IDocumentService {
	factory := func(baseURL, apiKey, model string) embedding.EmbeddingProvider {
		return embedder
	}
	settingsService := NewSettingsService(&fakeFactory{uow: uow}, memory.NewSettingsCache())
	return NewDocumentService(&fakeFactory{uow: uow}, settingsService, factory, nil, "http://unused", "text-embedding-ada-002", noopLogger{})
}

func TestIngestWithOpenAIKeyGeneratesEmbedding(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{UserId: userId, Provider: entity.AiProviderOpenAI, ApiKey: "sk"}

	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	svc := newDocumentFixture(uow, embedder)

	res, err := svc.Ingest(context.Background(), userId, &dto.IngestDocumentRequest{Name: "faq", Content: "hello world"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.HasEmbedding)

	require.Len(t, uow.docs.created, 1)
	assert.Equal(t, "hello world", uow.docs.created[0].Content)
	assert.Equal(t, []float32{0.1, 0.2}, uow.docs.created[0].Embedding)
}

func TestIngestWithoutApiKeySkipsEmbedding(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = nil // defaults carry no api key

	embedder := &fakeEmbedder{vector: []float32{0.1}}
	svc := newDocumentFixture(uow, embedder)

	res, err := svc.Ingest(context.Background(), userId, &dto.IngestDocumentRequest{Name: "faq", Content: "body"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.HasEmbedding)
	assert.Empty(t, embedder.inputs)
	require.Len(t, uow.docs.created, 1)
	assert.Nil(t, uow.docs.created[0].Embedding)
}

func TestIngestWithNonOpenAIProviderSkipsEmbedding(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{UserId: userId, Provider: entity.AiProviderAnthropic, ApiKey: "sk"}

	embedder := &fakeEmbedder{}
	svc := newDocumentFixture(uow, embedder)

	res, err := svc.Ingest(context.Background(), userId, &dto.IngestDocumentRequest{Name: "faq", Content: "body"})
	require.NoError(t, err)
	assert.False(t, res.HasEmbedding)
	assert.Empty(t, embedder.inputs)
}

func TestIngestTruncatesEmbeddingInput(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{UserId: userId, Provider: entity.AiProviderOpenAI, ApiKey: "sk"}

	embedder := &fakeEmbedder{vector: []float32{1}}
	svc := newDocumentFixture(uow, embedder)

	content := strings.Repeat("a", 10000)
	_, err := svc.Ingest(context.Background(), userId, &dto.IngestDocumentRequest{Name: "long", Content: content})
	require.NoError(t, err)

	require.Len(t, embedder.inputs, 1)
	assert.Len(t, embedder.inputs[0], 8000)
	// Stored content keeps the full text.
	assert.Len(t, uow.docs.created[0].Content, 10000)
}

func TestIngestEmbeddingFailureIsSoft(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{UserId: userId, Provider: entity.AiProviderOpenAI, ApiKey: "sk"}

	embedder := &fakeEmbedder{err: errors.New("quota exceeded")}
	svc := newDocumentFixture(uow, embedder)

	res, err := svc.Ingest(context.Background(), userId, &dto.IngestDocumentRequest{Name: "faq", Content: "body"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.HasEmbedding)
	require.Len(t, uow.docs.created, 1)
	assert.Nil(t, uow.docs.created[0].Embedding)
}

func TestDeleteScopedToOwner(t *testing.T) {
	uow := newFakeUow()
	uow.docs.deleted = 0

	svc := newDocumentFixture(uow, &fakeEmbedder{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)

	uow.docs.deleted = 1
	require.NoError(t, svc.Delete(context.Background(), uuid.New(), uuid.New()))
}

func TestListReportsEmbeddingPresence(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.docs.docs = []*entity.KnowledgeDoc{
		{Id: uuid.New(), Name: "a", Content: "x", Embedding: []float32{1}},
		{Id: uuid.New(), Name: "b", Content: "y"},
	}

	svc := newDocumentFixture(uow, &fakeEmbedder{})

	res, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.True(t, res[0].HasEmbedding)
	assert.False(t, res[1].HasEmbedding)
}
