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

type blogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) contract.BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *blogPostRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error) {
	var models []model.BlogPost
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("published_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.BlogPost, len(models))
	for i, m := range models {
		entities[i] = blogPostModelToEntity(&m)
	}
	return entities, nil
}

func (r *blogPostRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error) {
	var m model.BlogPost
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return blogPostModelToEntity(&m), nil
}

func (r *blogPostRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	if post.Id == uuid.Nil {
		post.Id = uuid.New()
	}
	m := blogPostEntityToModel(post)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *blogPostRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	m := blogPostEntityToModel(post)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *blogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BlogPost{}, "id = ?", id).Error
}

// Mappers

func blogPostModelToEntity(m *model.BlogPost) *entity.BlogPost {
	return &entity.BlogPost{
		Id:          m.Id,
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Content:     m.Content,
		Author:      m.Author,
		ImageURL:    m.ImageURL,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func blogPostEntityToModel(e *entity.BlogPost) *model.BlogPost {
	return &model.BlogPost{
		Id:          e.Id,
		Title:       e.Title,
		Slug:        e.Slug,
		Excerpt:     e.Excerpt,
		Content:     e.Content,
		Author:      e.Author,
		ImageURL:    e.ImageURL,
		PublishedAt: e.PublishedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
