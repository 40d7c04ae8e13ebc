package service

import (
	"context"
	"time"

	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/repository/specification"
	"oguso-digital-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IContentService backs both the public marketing pages and the admin
// editors for services, portfolio items and blog posts.
type IContentService interface {
	ListServices(ctx context.Context) ([]dto.ServiceResponse, error)
	GetServiceBySlug(ctx context.Context, slug string) (*dto.ServiceResponse, error)
	CreateService(ctx context.Context, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	ListPortfolio(ctx context.Context) ([]dto.PortfolioItemResponse, error)
	CreatePortfolioItem(ctx context.Context, req *dto.PortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	UpdatePortfolioItem(ctx context.Context, id uuid.UUID, req *dto.PortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	DeletePortfolioItem(ctx context.Context, id uuid.UUID) error

	ListBlogPosts(ctx context.Context) ([]dto.BlogPostResponse, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error)
	CreateBlogPost(ctx context.Context, req *dto.BlogPostRequest) (*dto.BlogPostResponse, error)
	UpdateBlogPost(ctx context.Context, id uuid.UUID, req *dto.BlogPostRequest) (*dto.BlogPostResponse, error)
	DeleteBlogPost(ctx context.Context, id uuid.UUID) error
}

type contentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewContentService(uowFactory unitofwork.RepositoryFactory) IContentService {
	return &contentService{uowFactory: uowFactory}
}

// --- Services ---

func (s *contentService) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	services, err := uow.ServiceRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, serverutils.NewDependency("failed to list services", err)
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		resp = append(resp, *toServiceResponse(svc))
	}
	return resp, nil
}

func (s *contentService) GetServiceBySlug(ctx context.Context, slug string) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	svc, err := uow.ServiceRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, serverutils.NewDependency("failed to fetch service", err)
	}
	if svc == nil {
		return nil, serverutils.NewNotFound("service not found")
	}
	return toServiceResponse(svc), nil
}

func (s *contentService) CreateService(ctx context.Context, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.ServiceRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if existing != nil {
		return nil, serverutils.NewValidation("slug already in use")
	}

	svc := &entity.Service{
		Id:          uuid.New(),
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Features:    req.Features,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.ServiceRepository().Create(ctx, svc); err != nil {
		return nil, serverutils.NewDependency("failed to create service", err)
	}
	return toServiceResponse(svc), nil
}

func (s *contentService) UpdateService(ctx context.Context, id uuid.UUID, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewDependency("failed to fetch service", err)
	}
	if svc == nil {
		return nil, serverutils.NewNotFound("service not found")
	}

	svc.Slug = req.Slug
	svc.Title = req.Title
	svc.Description = req.Description
	svc.VideoURL = req.VideoURL
	svc.Features = req.Features
	svc.UpdatedAt = time.Now()

	if err := uow.ServiceRepository().Update(ctx, svc); err != nil {
		return nil, serverutils.NewDependency("failed to update service", err)
	}
	return toServiceResponse(svc), nil
}

func (s *contentService) DeleteService(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ServiceRepository().Delete(ctx, id); err != nil {
		return serverutils.NewDependency("failed to delete service", err)
	}
	return nil
}

// --- Portfolio ---

func (s *contentService) ListPortfolio(ctx context.Context) ([]dto.PortfolioItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.PortfolioRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, serverutils.NewDependency("failed to list portfolio items", err)
	}

	resp := make([]dto.PortfolioItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, *toPortfolioResponse(item))
	}
	return resp, nil
}

func (s *contentService) CreatePortfolioItem(ctx context.Context, req *dto.PortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item := &entity.PortfolioItem{
		Id:          uuid.New(),
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Results:     toPortfolioResults(req.Results),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.PortfolioRepository().Create(ctx, item); err != nil {
		return nil, serverutils.NewDependency("failed to create portfolio item", err)
	}
	return toPortfolioResponse(item), nil
}

func (s *contentService) UpdatePortfolioItem(ctx context.Context, id uuid.UUID, req *dto.PortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.PortfolioRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewDependency("failed to fetch portfolio item", err)
	}
	if item == nil {
		return nil, serverutils.NewNotFound("portfolio item not found")
	}

	item.Title = req.Title
	item.Category = req.Category
	item.Description = req.Description
	item.ImageURL = req.ImageURL
	item.Results = toPortfolioResults(req.Results)
	item.UpdatedAt = time.Now()

	if err := uow.PortfolioRepository().Update(ctx, item); err != nil {
		return nil, serverutils.NewDependency("failed to update portfolio item", err)
	}
	return toPortfolioResponse(item), nil
}

func (s *contentService) DeletePortfolioItem(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PortfolioRepository().Delete(ctx, id); err != nil {
		return serverutils.NewDependency("failed to delete portfolio item", err)
	}
	return nil
}

// --- Blog ---

func (s *contentService) ListBlogPosts(ctx context.Context) ([]dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	posts, err := uow.BlogPostRepository().FindAll(ctx)
	if err != nil {
		return nil, serverutils.NewDependency("failed to list blog posts", err)
	}

	resp := make([]dto.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, *toBlogPostResponse(post))
	}
	return resp, nil
}

func (s *contentService) GetBlogPostBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := uow.BlogPostRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, serverutils.NewDependency("failed to fetch blog post", err)
	}
	if post == nil {
		return nil, serverutils.NewNotFound("blog post not found")
	}
	return toBlogPostResponse(post), nil
}

func (s *contentService) CreateBlogPost(ctx context.Context, req *dto.BlogPostRequest) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.BlogPostRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if existing != nil {
		return nil, serverutils.NewValidation("slug already in use")
	}

	publishedAt := time.Now()
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}

	post := &entity.BlogPost{
		Id:          uuid.New(),
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Author:      req.Author,
		ImageURL:    req.ImageURL,
		PublishedAt: publishedAt,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.BlogPostRepository().Create(ctx, post); err != nil {
		return nil, serverutils.NewDependency("failed to create blog post", err)
	}
	return toBlogPostResponse(post), nil
}

func (s *contentService) UpdateBlogPost(ctx context.Context, id uuid.UUID, req *dto.BlogPostRequest) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.BlogPostRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewDependency("failed to fetch blog post", err)
	}
	if post == nil {
		return nil, serverutils.NewNotFound("blog post not found")
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.Author = req.Author
	post.ImageURL = req.ImageURL
	if req.PublishedAt != nil {
		post.PublishedAt = *req.PublishedAt
	}
	post.UpdatedAt = time.Now()

	if err := uow.BlogPostRepository().Update(ctx, post); err != nil {
		return nil, serverutils.NewDependency("failed to update blog post", err)
	}
	return toBlogPostResponse(post), nil
}

func (s *contentService) DeleteBlogPost(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.BlogPostRepository().Delete(ctx, id); err != nil {
		return serverutils.NewDependency("failed to delete blog post", err)
	}
	return nil
}

// --- Mappers ---

func toServiceResponse(svc *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		Id:          svc.Id.String(),
		Slug:        svc.Slug,
		Title:       svc.Title,
		Description: svc.Description,
		VideoURL:    svc.VideoURL,
		Features:    svc.Features,
	}
}

func toPortfolioResults(items []dto.PortfolioResultItem) []entity.PortfolioResult {
	results := make([]entity.PortfolioResult, 0, len(items))
	for _, item := range items {
		results = append(results, entity.PortfolioResult{Metric: item.Metric, Value: item.Value})
	}
	return results
}

func toPortfolioResponse(item *entity.PortfolioItem) *dto.PortfolioItemResponse {
	results := make([]dto.PortfolioResultItem, 0, len(item.Results))
	for _, r := range item.Results {
		results = append(results, dto.PortfolioResultItem{Metric: r.Metric, Value: r.Value})
	}
	return &dto.PortfolioItemResponse{
		Id:          item.Id.String(),
		Title:       item.Title,
		Category:    item.Category,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Results:     results,
	}
}

func toBlogPostResponse(post *entity.BlogPost) *dto.BlogPostResponse {
	publishedAt := post.PublishedAt
	return &dto.BlogPostResponse{
		Id:          post.Id.String(),
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		Content:     post.Content,
		Author:      post.Author,
		ImageURL:    post.ImageURL,
		PublishedAt: &publishedAt,
	}
}
