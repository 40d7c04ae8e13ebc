package dto

import "time"

type ChatRequest struct {
	Query     string `json:"query" validate:"required"`
	SessionId string `json:"session_id" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ChatMessageResponse struct {
	Id        string    `json:"id"`
	SessionId string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	SessionId string                `json:"session_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}
