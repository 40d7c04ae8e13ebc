package implementation

import (
	"context"

	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/model"
	"oguso-digital-be/internal/repository/contract"
	"oguso-digital-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *chatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	m := chatMessageEntityToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	message.CreatedAt = m.CreatedAt
	return nil
}

func (r *chatMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var models []model.ChatMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.ChatMessage, len(models))
	for i, m := range models {
		entities[i] = chatMessageModelToEntity(&m)
	}
	return entities, nil
}

func (r *chatMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Mappers

func chatMessageModelToEntity(m *model.ChatMessage) *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:        m.Id,
		UserId:    m.UserId,
		SessionId: m.SessionId,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func chatMessageEntityToModel(e *entity.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		Id:        e.Id,
		UserId:    e.UserId,
		SessionId: e.SessionId,
		Role:      e.Role,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}
