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

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) contract.ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	m := &model.ContactMessage{
		Id:        message.Id,
		Name:      message.Name,
		Email:     message.Email,
		Company:   message.Company,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	message.CreatedAt = m.CreatedAt
	return nil
}

func (r *contactMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error) {
	var models []model.ContactMessage
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.ContactMessage, len(models))
	for i, m := range models {
		entities[i] = &entity.ContactMessage{
			Id:        m.Id,
			Name:      m.Name,
			Email:     m.Email,
			Company:   m.Company,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		}
	}
	return entities, nil
}
