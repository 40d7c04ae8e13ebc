package controller

import (
	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
	jwtSecret       string
}

func NewDocumentController(documentService service.IDocumentService, jwtSecret string) IDocumentController {
	return &documentController{
		documentService: documentService,
		jwtSecret:       jwtSecret,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/documents/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Post("", c.Ingest)
	h.Get("", c.List)
	h.Delete(":id", c.Delete)
}

func (c *documentController) Ingest(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.IngestDocumentRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.documentService.Ingest(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Document processed", res)
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.documentService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success fetch documents", res)
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	docId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidation("invalid document id")
	}

	if err := c.documentService.Delete(ctx.Context(), userId, docId); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, fiber.StatusOK, "Document deleted", nil)
}
