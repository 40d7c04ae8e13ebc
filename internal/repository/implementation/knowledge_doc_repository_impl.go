package implementation

import (
	"context"

	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/model"
	"oguso-digital-be/internal/repository/contract"
	"oguso-digital-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type knowledgeDocRepository struct {
	db *gorm.DB
}

func NewKnowledgeDocRepository(db *gorm.DB) contract.KnowledgeDocRepository {
	return &knowledgeDocRepository{db: db}
}

func (r *knowledgeDocRepository) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *knowledgeDocRepository) Create(ctx context.Context, doc *entity.KnowledgeDoc) error {
	if doc.Id == uuid.Nil {
		doc.Id = uuid.New()
	}
	m := knowledgeDocEntityToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	doc.CreatedAt = m.CreatedAt
	return nil
}

func (r *knowledgeDocRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeDoc, error) {
	var models []model.KnowledgeDoc
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.KnowledgeDoc, len(models))
	for i, m := range models {
		entities[i] = knowledgeDocModelToEntity(&m)
	}
	return entities, nil
}

func (r *knowledgeDocRepository) DeleteOwned(ctx context.Context, id uuid.UUID, userId uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.KnowledgeDoc{})
	return result.RowsAffected, result.Error
}

// Mappers

func knowledgeDocModelToEntity(m *model.KnowledgeDoc) *entity.KnowledgeDoc {
	e := &entity.KnowledgeDoc{
		Id:        m.Id,
		UserId:    m.UserId,
		Name:      m.Name,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.Embedding != nil {
		e.Embedding = m.Embedding.Slice()
	}
	return e
}

func knowledgeDocEntityToModel(e *entity.KnowledgeDoc) *model.KnowledgeDoc {
	m := &model.KnowledgeDoc{
		Id:        e.Id,
		UserId:    e.UserId,
		Name:      e.Name,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
	if e.Embedding != nil {
		v := pgvector.NewVector(e.Embedding)
		m.Embedding = &v
	}
	return m
}
