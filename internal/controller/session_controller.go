package controller

import (
	"errors"
	"time"

	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/pkg/serverutils"
	"ventures-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Bridge(ctx *fiber.Ctx) error
	SyncData(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Post("", c.Create)
	h.Post("bridge", c.Bridge)
	h.Post("sync-data", c.SyncData)
	h.Get(":id", c.Status)
	h.Post(":id/reset", c.Reset)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Create(ctx.Context(), &req)
	if err != nil {
		return mapSessionError(ctx, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "session_id",
		Value:    res.SessionId,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return ctx.JSON(serverutils.SuccessResponse("Session ready", res))
}

func (c *sessionController) Status(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")

	res, err := c.sessionService.GetStatus(ctx.Context(), sessionID)
	if err != nil {
		return mapSessionError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session status", res))
}

func (c *sessionController) Bridge(ctx *fiber.Ctx) error {
	var req dto.BridgeSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.EnsureLocal(ctx.Context(), req.SessionId, nil)
	if err != nil {
		return mapSessionError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session bridged", res))
}

func (c *sessionController) SyncData(ctx *fiber.Ctx) error {
	var req dto.SyncDataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.SyncFields(ctx.Context(), &req)
	if err != nil {
		return mapSessionError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session data synced", res))
}

func (c *sessionController) Reset(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")

	res, err := c.sessionService.Reset(ctx.Context(), sessionID)
	if err != nil {
		return mapSessionError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session reset", res))
}

// mapSessionError translates typed service errors to HTTP statuses. A
// StoreWriteError becomes a 503 so the backend's sync loop resubmits.
func mapSessionError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, service.ErrMessageNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, service.ErrMissingData):
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	var swe *service.StoreWriteError
	if errors.As(err, &swe) {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, swe.Error()))
	}

	return err
}
