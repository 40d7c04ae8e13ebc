package entity

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeDoc struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Content   string
	Embedding []float32 // nil when ingestion ran without an embedding
	CreatedAt time.Time
}
