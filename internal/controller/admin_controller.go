package controller

import (
	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IAdminController is the CMS surface behind the dashboard: CRUD for
// services, portfolio items and blog posts, plus the contact inbox.
type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	contentService service.IContentService
	contactService service.IContactService
	jwtSecret      string
}

func NewAdminController(contentService service.IContentService, contactService service.IContactService, jwtSecret string) IAdminController {
	return &adminController{
		contentService: contentService,
		contactService: contactService,
		jwtSecret:      jwtSecret,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Use(serverutils.AdminMiddleware())

	h.Post("services", c.createService)
	h.Put("services/:id", c.updateService)
	h.Delete("services/:id", c.deleteService)

	h.Post("portfolio", c.createPortfolioItem)
	h.Put("portfolio/:id", c.updatePortfolioItem)
	h.Delete("portfolio/:id", c.deletePortfolioItem)

	h.Post("blog", c.createBlogPost)
	h.Put("blog/:id", c.updateBlogPost)
	h.Delete("blog/:id", c.deleteBlogPost)

	h.Get("contact-messages", c.listContactMessages)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.NewValidation("invalid id")
	}
	return id, nil
}

func (c *adminController) createService(ctx *fiber.Ctx) error {
	var req dto.ServiceRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	res, err := c.contentService.CreateService(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Service created", res)
}

func (c *adminController) updateService(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.ServiceRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	res, err := c.contentService.UpdateService(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Service updated", res)
}

func (c *adminController) deleteService(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.contentService.DeleteService(ctx.Context(), id); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, fiber.StatusOK, "Service deleted", nil)
}

func (c *adminController) createPortfolioItem(ctx *fiber.Ctx) error {
	var req dto.PortfolioItemRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	res, err := c.contentService.CreatePortfolioItem(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Portfolio item created", res)
}

func (c *adminController) updatePortfolioItem(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.PortfolioItemRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	res, err := c.contentService.UpdatePortfolioItem(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Portfolio item updated", res)
}

func (c *adminController) deletePortfolioItem(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.contentService.DeletePortfolioItem(ctx.Context(), id); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, fiber.StatusOK, "Portfolio item deleted", nil)
}

func (c *adminController) createBlogPost(ctx *fiber.Ctx) error {
	var req dto.BlogPostRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	res, err := c.contentService.CreateBlogPost(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Blog post created", res)
}

func (c *adminController) updateBlogPost(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.BlogPostRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	res, err := c.contentService.UpdateBlogPost(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Blog post updated", res)
}

func (c *adminController) deleteBlogPost(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.contentService.DeleteBlogPost(ctx.Context(), id); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, fiber.StatusOK, "Blog post deleted", nil)
}

func (c *adminController) listContactMessages(ctx *fiber.Ctx) error {
	res, err := c.contactService.ListMessages(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success fetch contact messages", res)
}
