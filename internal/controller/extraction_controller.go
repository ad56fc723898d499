package controller

import (
	"ai-docchat-be/internal/dto"
	"ai-docchat-be/internal/mapper"
	"ai-docchat-be/internal/pkg/serverutils"
	"ai-docchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExtractionController interface {
	RegisterRoutes(r fiber.Router)
	Extract(ctx *fiber.Ctx) error
}

type extractionController struct {
	service service.IExtractionService
}

func NewExtractionController(service service.IExtractionService) IExtractionController {
	return &extractionController{service: service}
}

func (c *extractionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/extraction/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/extract", c.Extract)
}

func (c *extractionController) Extract(ctx *fiber.Ctx) error {
	var req dto.ExtractionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	refs := mapper.ToAttachmentReferences(req.Files)
	results := c.service.ExtractBatch(ctx.Context(), refs)

	res := dto.ExtractionResponse{
		Success:           true,
		FilesProcessed:    len(results),
		ExtractedContents: mapper.ToExtractedContentDTOs(refs, results),
	}

	return ctx.JSON(serverutils.SuccessResponse("Extraction completed", res))
}
