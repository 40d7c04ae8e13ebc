package service

import (
	"context"
	"errors"
	"testing"

	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetForUserReturnsDefaultsWhenRowMissing(t *testing.T) {
	uow := newFakeUow()
	svc := NewSettingsService(&fakeFactory{uow: uow}, memory.NewSettingsCache())

	userId := uuid.New()
	settings, err := svc.GetForUser(context.Background(), userId)
	require.NoError(t, err)

	assert.Equal(t, userId, settings.UserId)
	assert.Equal(t, entity.AiProviderOpenAI, settings.Provider)
	assert.Equal(t, "gpt-4o-mini", settings.Model)
	assert.Equal(t, "", settings.ApiKey)
	assert.Equal(t, 0.7, settings.Temperature)
	assert.Equal(t, 1000, settings.MaxTokens)
	assert.True(t, settings.RagEnabled)
	assert.Contains(t, settings.SystemPrompt, "Alexander Oguso")
}

func TestGetForUserPropagatesStoreError(t *testing.T) {
	uow := newFakeUow()
	uow.settings.findErr = errors.New("connection refused")
	svc := NewSettingsService(&fakeFactory{uow: uow}, memory.NewSettingsCache())

	_, err := svc.GetForUser(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, "Failed to fetch AI settings", appErr.Message)
}

func TestGetForUserCachesReads(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{UserId: userId, Provider: entity.AiProviderOpenAI, Model: "gpt-4o"}

	svc := NewSettingsService(&fakeFactory{uow: uow}, memory.NewSettingsCache())

	first, err := svc.GetForUser(context.Background(), userId)
	require.NoError(t, err)

	// A store failure after the first read goes unnoticed: the cache
	// serves the second call.
	uow.settings.findErr = errors.New("db down")
	second, err := svc.GetForUser(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdateInvalidatesCache(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	uow.settings.stored = &entity.AiSettings{UserId: userId, Provider: entity.AiProviderOpenAI, Model: "gpt-4o-mini"}

	svc := NewSettingsService(&fakeFactory{uow: uow}, memory.NewSettingsCache())

	_, err := svc.GetForUser(context.Background(), userId)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), userId, &dto.UpdateAiSettingsRequest{
		Provider:     entity.AiProviderOpenAI,
		Model:        "gpt-4o",
		ApiKey:       "sk-new",
		Temperature:  0.5,
		MaxTokens:    2000,
		RagEnabled:   false,
		SystemPrompt: "New prompt.",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", updated.Model)
	require.Len(t, uow.settings.upserts, 1)

	// The next read reflects the write, not the previously cached row.
	fresh, err := svc.GetForUser(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", fresh.Model)
	assert.Equal(t, "sk-new", fresh.ApiKey)
	assert.False(t, fresh.RagEnabled)
}
