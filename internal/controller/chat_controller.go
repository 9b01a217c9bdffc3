package controller

import (
	"strconv"

	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/pkg/serverutils"
	"ventures-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Citations(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.SendChat)
	r.Get("/chat/history/:session_id", c.History)
	r.Get("/messages/:id/citations", c.Citations)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), &req)
	if err != nil {
		return mapSessionError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat processed", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	limit, _ := strconv.Atoi(ctx.Query("limit", "0"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	res, err := c.chatService.GetHistory(ctx.Context(), sessionID, limit, offset)
	if err != nil {
		return mapSessionError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *chatController) Citations(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid message id"))
	}

	res, err := c.chatService.GetCitations(ctx.Context(), id)
	if err != nil {
		return mapSessionError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Message citations", res))
}
