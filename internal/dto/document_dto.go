package dto

import "time"

type IngestDocumentRequest struct {
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type IngestDocumentResponse struct {
	Success      bool   `json:"success"`
	DocumentId   string `json:"document_id"`
	HasEmbedding bool   `json:"has_embedding"`
}

type DocumentResponse struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	HasEmbedding bool      `json:"has_embedding"`
	CreatedAt    time.Time `json:"created_at"`
}
