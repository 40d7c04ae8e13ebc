package contract

import (
	"context"

	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ServiceRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error)
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PortfolioRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PortfolioItem, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PortfolioItem, error)
	Create(ctx context.Context, item *entity.PortfolioItem) error
	Update(ctx context.Context, item *entity.PortfolioItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BlogPostRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error)
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error)
}
