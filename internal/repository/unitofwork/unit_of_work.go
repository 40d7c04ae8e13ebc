package unitofwork

import (
	"context"

	"oguso-digital-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatMessageRepository() contract.ChatMessageRepository
	AiSettingsRepository() contract.AiSettingsRepository
	KnowledgeDocRepository() contract.KnowledgeDocRepository
	ServiceRepository() contract.ServiceRepository
	PortfolioRepository() contract.PortfolioRepository
	BlogPostRepository() contract.BlogPostRepository
	ContactMessageRepository() contract.ContactMessageRepository
}
