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

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) contract.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *serviceRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	var models []model.Service
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.Service, len(models))
	for i, m := range models {
		entities[i] = serviceModelToEntity(&m)
	}
	return entities, nil
}

func (r *serviceRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error) {
	var m model.Service
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return serviceModelToEntity(&m), nil
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	if service.Id == uuid.Nil {
		service.Id = uuid.New()
	}
	m := serviceEntityToModel(service)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	m := serviceEntityToModel(service)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Service{}, "id = ?", id).Error
}

// Mappers

func serviceModelToEntity(m *model.Service) *entity.Service {
	var features []string
	if len(m.Features) > 0 {
		_ = json.Unmarshal(m.Features, &features)
	}
	return &entity.Service{
		Id:          m.Id,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description,
		VideoURL:    m.VideoURL,
		Features:    features,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func serviceEntityToModel(e *entity.Service) *model.Service {
	features, _ := json.Marshal(e.Features)
	return &model.Service{
		Id:          e.Id,
		Slug:        e.Slug,
		Title:       e.Title,
		Description: e.Description,
		VideoURL:    e.VideoURL,
		Features:    features,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
