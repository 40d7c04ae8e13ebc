package service

import (
	"context"
	"errors"
	"sync"

	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/repository/contract"
	"oguso-digital-be/internal/repository/specification"
	"oguso-digital-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// --- logger ---

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// --- unit of work ---

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	users     *fakeUserRepo
	chat      *fakeChatRepo
	settings  *fakeSettingsRepo
	docs      *fakeDocRepo
	contacts  *fakeContactRepo
	services  *fakeServiceRepo
	portfolio *fakePortfolioRepo
	blog      *fakeBlogRepo

	began     bool
	committed bool
	rolled    bool
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		users:     &fakeUserRepo{},
		chat:      &fakeChatRepo{},
		settings:  &fakeSettingsRepo{},
		docs:      &fakeDocRepo{},
		contacts:  &fakeContactRepo{},
		services:  &fakeServiceRepo{},
		portfolio: &fakePortfolioRepo{},
		blog:      &fakeBlogRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { u.began = true; return nil }
func (u *fakeUow) Commit() error                   { u.committed = true; return nil }
func (u *fakeUow) Rollback() error                 { u.rolled = true; return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return u.users }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository { return u.chat }
func (u *fakeUow) AiSettingsRepository() contract.AiSettingsRepository   { return u.settings }
func (u *fakeUow) KnowledgeDocRepository() contract.KnowledgeDocRepository {
	return u.docs
}
func (u *fakeUow) ServiceRepository() contract.ServiceRepository     { return u.services }
func (u *fakeUow) PortfolioRepository() contract.PortfolioRepository { return u.portfolio }
func (u *fakeUow) BlogPostRepository() contract.BlogPostRepository   { return u.blog }
func (u *fakeUow) ContactMessageRepository() contract.ContactMessageRepository {
	return u.contacts
}

// --- chat messages ---

type fakeChatRepo struct {
	mu        sync.Mutex
	history   []*entity.ChatMessage
	created   []*entity.ChatMessage
	createErr error
	findErr   error
}

func (r *fakeChatRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, message)
	return nil
}

func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.history, nil
}

func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.history)), nil
}

// --- ai settings ---

type fakeSettingsRepo struct {
	stored  *entity.AiSettings
	findErr error
	upserts []*entity.AiSettings
}

func (r *fakeSettingsRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.AiSettings, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.stored, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, settings *entity.AiSettings) error {
	r.upserts = append(r.upserts, settings)
	r.stored = settings
	return nil
}

// --- knowledge docs ---

type fakeDocRepo struct {
	docs      []*entity.KnowledgeDoc
	created   []*entity.KnowledgeDoc
	createErr error
	findErr   error
	deleted   int64
}

func (r *fakeDocRepo) Create(ctx context.Context, doc *entity.KnowledgeDoc) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, doc)
	return nil
}

func (r *fakeDocRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeDoc, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.docs, nil
}

func (r *fakeDocRepo) DeleteOwned(ctx context.Context, id uuid.UUID, userId uuid.UUID) (int64, error) {
	return r.deleted, nil
}

// --- contact messages ---

type fakeContactRepo struct {
	created   []*entity.ContactMessage
	createErr error
}

func (r *fakeContactRepo) Create(ctx context.Context, message *entity.ContactMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, message)
	return nil
}

func (r *fakeContactRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error) {
	return r.created, nil
}

// --- content ---

type fakeServiceRepo struct {
	items []*entity.Service
}

func (r *fakeServiceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	return r.items, nil
}

func (r *fakeServiceRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error) {
	for _, item := range r.items {
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.BySlug:
				if item.Slug == s.Slug {
					return item, nil
				}
			case specification.ByID:
				if item.Id == s.ID {
					return item, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	r.items = append(r.items, service)
	return nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakePortfolioRepo struct {
	items []*entity.PortfolioItem
}

func (r *fakePortfolioRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PortfolioItem, error) {
	return r.items, nil
}

func (r *fakePortfolioRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PortfolioItem, error) {
	for _, item := range r.items {
		for _, spec := range specs {
			if s, ok := spec.(specification.ByID); ok && item.Id == s.ID {
				return item, nil
			}
		}
	}
	return nil, nil
}

func (r *fakePortfolioRepo) Create(ctx context.Context, item *entity.PortfolioItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakePortfolioRepo) Update(ctx context.Context, item *entity.PortfolioItem) error {
	return nil
}

func (r *fakePortfolioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeBlogRepo struct {
	posts []*entity.BlogPost
}

func (r *fakeBlogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error) {
	return r.posts, nil
}

func (r *fakeBlogRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error) {
	for _, post := range r.posts {
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.BySlug:
				if post.Slug == s.Slug {
					return post, nil
				}
			case specification.ByID:
				if post.Id == s.ID {
					return post, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeBlogRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakeBlogRepo) Update(ctx context.Context, post *entity.BlogPost) error {
	return nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

// --- users ---

type fakeUserRepo struct {
	users       []*entity.User
	otps        []*entity.EmailVerificationToken
	resets      []*entity.PasswordResetToken
	refresh     []*entity.UserRefreshToken
	findOneHook func(specs ...specification.Specification) (*entity.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.users {
		if u.Id == user.Id {
			r.users[i] = user
			return nil
		}
	}
	return errors.New("user not found")
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.findOneHook != nil {
		return r.findOneHook(specs...)
	}
	for _, u := range r.users {
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByEmail:
				if u.Email == s.Email {
					return u, nil
				}
			case specification.ByID:
				if u.Id == s.ID {
					return u, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	r.otps = append(r.otps, token)
	return nil
}

func (r *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, userId uuid.UUID, token string) (*entity.EmailVerificationToken, error) {
	for _, t := range r.otps {
		if t.UserId == userId && t.Token == token {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) DeleteEmailVerificationTokens(ctx context.Context, userId uuid.UUID) error {
	kept := r.otps[:0]
	for _, t := range r.otps {
		if t.UserId != userId {
			kept = append(kept, t)
		}
	}
	r.otps = kept
	return nil
}

func (r *fakeUserRepo) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	r.resets = append(r.resets, token)
	return nil
}

func (r *fakeUserRepo) FindPasswordResetToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	for _, t := range r.resets {
		if t.Token == token {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) MarkPasswordResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	for _, t := range r.resets {
		if t.Id == id {
			t.Used = true
			return nil
		}
	}
	return errors.New("token not found")
}

func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	r.refresh = append(r.refresh, token)
	return nil
}

func (r *fakeUserRepo) FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.UserRefreshToken, error) {
	for _, t := range r.refresh {
		if t.TokenHash == hash {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, id uuid.UUID) error {
	for _, t := range r.refresh {
		if t.Id == id {
			t.Revoked = true
			return nil
		}
	}
	return errors.New("token not found")
}

// --- mailer ---

type fakeMailer struct {
	mu       sync.Mutex
	otps     []string
	resets   []string
	contacts []*entity.ContactMessage
	sendErr  error
}

func (m *fakeMailer) SendVerificationOTP(toEmail, otp string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps = append(m.otps, otp)
	return m.sendErr
}

func (m *fakeMailer) SendPasswordReset(toEmail, resetURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, resetURL)
	return m.sendErr
}

func (m *fakeMailer) SendContactNotification(msg *entity.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.contacts = append(m.contacts, msg)
	return nil
}

func (m *fakeMailer) contactCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.contacts)
}
