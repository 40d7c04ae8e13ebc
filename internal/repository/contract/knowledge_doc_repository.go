package contract

import (
	"context"

	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeDocRepository interface {
	Create(ctx context.Context, doc *entity.KnowledgeDoc) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeDoc, error)
	// DeleteOwned removes a document only when it belongs to userId and
	// reports how many rows were affected.
	DeleteOwned(ctx context.Context, id uuid.UUID, userId uuid.UUID) (int64, error)
}
