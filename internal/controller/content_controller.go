package controller

import (
	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IContentController serves the public marketing pages: services,
// portfolio, blog and the contact form. No auth.
type IContentController interface {
	RegisterRoutes(r fiber.Router)
	ListServices(ctx *fiber.Ctx) error
	ShowService(ctx *fiber.Ctx) error
	ListPortfolio(ctx *fiber.Ctx) error
	ListBlogPosts(ctx *fiber.Ctx) error
	ShowBlogPost(ctx *fiber.Ctx) error
	SubmitContact(ctx *fiber.Ctx) error
}

type contentController struct {
	contentService service.IContentService
	contactService service.IContactService
}

func NewContentController(contentService service.IContentService, contactService service.IContactService) IContentController {
	return &contentController{
		contentService: contentService,
		contactService: contactService,
	}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Get("services", c.ListServices)
	h.Get("services/:slug", c.ShowService)
	h.Get("portfolio", c.ListPortfolio)
	h.Get("blog", c.ListBlogPosts)
	h.Get("blog/:slug", c.ShowBlogPost)
	h.Post("contact", c.SubmitContact)
}

func (c *contentController) ListServices(ctx *fiber.Ctx) error {
	res, err := c.contentService.ListServices(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success fetch services", res)
}

func (c *contentController) ShowService(ctx *fiber.Ctx) error {
	res, err := c.contentService.GetServiceBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success fetch service", res)
}

func (c *contentController) ListPortfolio(ctx *fiber.Ctx) error {
	res, err := c.contentService.ListPortfolio(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success fetch portfolio", res)
}

func (c *contentController) ListBlogPosts(ctx *fiber.Ctx) error {
	res, err := c.contentService.ListBlogPosts(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success fetch blog posts", res)
}

func (c *contentController) ShowBlogPost(ctx *fiber.Ctx) error {
	res, err := c.contentService.GetBlogPostBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success fetch blog post", res)
}

func (c *contentController) SubmitContact(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.contactService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Thanks for reaching out, we will get back to you soon", res)
}
