package service

import (
	"context"
	"time"

	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/repository/memory"
	"oguso-digital-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISettingsService interface {
	// GetForUser returns the stored settings, or the defaults when the
	// user never saved any. Errors only on store failures.
	GetForUser(ctx context.Context, userId uuid.UUID) (*entity.AiSettings, error)
	Get(ctx context.Context, userId uuid.UUID) (*dto.AiSettingsResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAiSettingsRequest) (*dto.AiSettingsResponse, error)
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.SettingsCache
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, cache *memory.SettingsCache) ISettingsService {
	return &settingsService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *settingsService) GetForUser(ctx context.Context, userId uuid.UUID) (*entity.AiSettings, error) {
	if cached, found := s.cache.Get(userId); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.AiSettingsRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, serverutils.NewDependency("Failed to fetch AI settings", err)
	}
	if settings == nil {
		settings = entity.DefaultAiSettings(userId)
	}

	s.cache.Set(settings)
	return settings, nil
}

func (s *settingsService) Get(ctx context.Context, userId uuid.UUID) (*dto.AiSettingsResponse, error) {
	settings, err := s.GetForUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAiSettingsRequest) (*dto.AiSettingsResponse, error) {
	settings := &entity.AiSettings{
		Id:           uuid.New(),
		UserId:       userId,
		Provider:     req.Provider,
		Model:        req.Model,
		ApiKey:       req.ApiKey,
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
		RagEnabled:   req.RagEnabled,
		SystemPrompt: req.SystemPrompt,
		UpdatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AiSettingsRepository().Upsert(ctx, settings); err != nil {
		return nil, serverutils.NewDependency("failed to save AI settings", err)
	}

	// The next chat turn reads fresh settings, not the cached row.
	s.cache.Invalidate(userId)

	return toSettingsResponse(settings), nil
}

func toSettingsResponse(settings *entity.AiSettings) *dto.AiSettingsResponse {
	return &dto.AiSettingsResponse{
		Provider:     settings.Provider,
		Model:        settings.Model,
		ApiKey:       settings.ApiKey,
		Temperature:  settings.Temperature,
		MaxTokens:    settings.MaxTokens,
		RagEnabled:   settings.RagEnabled,
		SystemPrompt: settings.SystemPrompt,
	}
}
