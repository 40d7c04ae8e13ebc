package implementation

import (
	"context"

	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/model"
	"oguso-digital-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aiSettingsRepository struct {
	db *gorm.DB
}

func NewAiSettingsRepository(db *gorm.DB) contract.AiSettingsRepository {
	return &aiSettingsRepository{db: db}
}

func (r *aiSettingsRepository) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.AiSettings, error) {
	var m model.AiSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return aiSettingsModelToEntity(&m), nil
}

// Upsert replaces the user's settings row wholesale, which is how the
// settings form saves: last write wins.
func (r *aiSettingsRepository) Upsert(ctx context.Context, settings *entity.AiSettings) error {
	if settings.Id == uuid.Nil {
		settings.Id = uuid.New()
	}
	m := aiSettingsEntityToModel(settings)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"provider", "model", "api_key", "temperature",
			"max_tokens", "rag_enabled", "system_prompt", "updated_at",
		}),
	}).Create(m).Error
}

// Mappers

func aiSettingsModelToEntity(m *model.AiSettings) *entity.AiSettings {
	return &entity.AiSettings{
		Id:           m.Id,
		UserId:       m.UserId,
		Provider:     m.Provider,
		Model:        m.Model,
		ApiKey:       m.ApiKey,
		Temperature:  m.Temperature,
		MaxTokens:    m.MaxTokens,
		RagEnabled:   m.RagEnabled,
		SystemPrompt: m.SystemPrompt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func aiSettingsEntityToModel(e *entity.AiSettings) *model.AiSettings {
	return &model.AiSettings{
		Id:           e.Id,
		UserId:       e.UserId,
		Provider:     e.Provider,
		Model:        e.Model,
		ApiKey:       e.ApiKey,
		Temperature:  e.Temperature,
		MaxTokens:    e.MaxTokens,
		RagEnabled:   e.RagEnabled,
		SystemPrompt: e.SystemPrompt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
