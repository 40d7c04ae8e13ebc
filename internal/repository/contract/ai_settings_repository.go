package contract

import (
	"context"

	"oguso-digital-be/internal/entity"

	"github.com/google/uuid"
)

type AiSettingsRepository interface {
	// FindByUserId returns (nil, nil) when the user has no settings row.
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.AiSettings, error)
	Upsert(ctx context.Context, settings *entity.AiSettings) error
}
