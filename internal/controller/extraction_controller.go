package controller

import (
	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/pkg/serverutils"
	"ventures-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExtractionController interface {
	RegisterRoutes(r fiber.Router)
	Store(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type extractionController struct {
	extractionService service.IExtractionService
}

func NewExtractionController(extractionService service.IExtractionService) IExtractionController {
	return &extractionController{
		extractionService: extractionService,
	}
}

func (c *extractionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/data-extraction")
	h.Post("", c.Store)
	h.Get("", c.List)
}

func (c *extractionController) Store(ctx *fiber.Ctx) error {
	var req dto.StoreExtractedDataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.extractionService.Store(ctx.Context(), &req); err != nil {
		return mapSessionError(ctx, err)
	}
	// Persistence is asynchronous; acknowledge intake.
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse[any]("Extraction queued", nil))
}

func (c *extractionController) List(ctx *fiber.Ctx) error {
	sessionID := ctx.Query("session_id")
	if sessionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "session_id query parameter is required"))
	}

	res, err := c.extractionService.List(ctx.Context(), sessionID, ctx.Query("data_type"))
	if err != nil {
		return mapSessionError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Extracted data", res))
}
