package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// KnowledgeDoc holds an uploaded knowledge base document. The embedding is
// written at ingestion time when the owner has an OpenAI key configured
// (text-embedding-ada-002, 1536 dimensions) and is nullable: ingestion
// succeeds without it.
type KnowledgeDoc struct {
	Id        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name      string           `gorm:"type:varchar(255);not null"`
	Content   string           `gorm:"type:text;not null"`
	Embedding *pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time        `gorm:"autoCreateTime"`
}

func (KnowledgeDoc) TableName() string {
	return "knowledge_base_docs"
}
