package implementation

import (
	"context"
	"encoding/json"

	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/model"
	"oguso-digital-be/internal/repository/contract"
	"oguso-digital-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) contract.PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *portfolioRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PortfolioItem, error) {
	var models []model.PortfolioItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.PortfolioItem, len(models))
	for i, m := range models {
		entities[i] = portfolioModelToEntity(&m)
	}
	return entities, nil
}

func (r *portfolioRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PortfolioItem, error) {
	var m model.PortfolioItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return portfolioModelToEntity(&m), nil
}

func (r *portfolioRepository) Create(ctx context.Context, item *entity.PortfolioItem) error {
	if item.Id == uuid.Nil {
		item.Id = uuid.New()
	}
	m := portfolioEntityToModel(item)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *portfolioRepository) Update(ctx context.Context, item *entity.PortfolioItem) error {
	m := portfolioEntityToModel(item)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *portfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PortfolioItem{}, "id = ?", id).Error
}

// Mappers

func portfolioModelToEntity(m *model.PortfolioItem) *entity.PortfolioItem {
	var results []entity.PortfolioResult
	if len(m.Results) > 0 {
		_ = json.Unmarshal(m.Results, &results)
	}
	return &entity.PortfolioItem{
		Id:          m.Id,
		Title:       m.Title,
		Category:    m.Category,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Results:     results,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func portfolioEntityToModel(e *entity.PortfolioItem) *model.PortfolioItem {
	results, _ := json.Marshal(e.Results)
	return &model.PortfolioItem{
		Id:          e.Id,
		Title:       e.Title,
		Category:    e.Category,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Results:     results,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
