package controller

import (
	"errors"

	"chatai-be/internal/dto"
	"chatai-be/internal/pkg/serverutils"
	"chatai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITalkController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	GetTalksByUser(ctx *fiber.Ctx) error
	StartTalk(ctx *fiber.Ctx) error
	UpdateTalk(ctx *fiber.Ctx) error
	DeleteTalk(ctx *fiber.Ctx) error
}

type talkController struct {
	service service.ITalkService
}

func NewTalkController(service service.ITalkService) ITalkController {
	return &talkController{service: service}
}

func (c *talkController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Get("/talk-user", authRequired, c.GetTalksByUser)
	r.Post("/talk", authRequired, c.StartTalk)
	r.Put("/talk", authRequired, c.UpdateTalk)
	r.Delete("/talk", authRequired, c.DeleteTalk)
}

func (c *talkController) GetTalksByUser(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	res, err := c.service.GetTalksByUser(ctx.Context(), identity.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *talkController) StartTalk(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	var req dto.StartTalkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Request body is required")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StartTalk(ctx.Context(), identity.UserId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *talkController) UpdateTalk(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	var req dto.UpdateTalkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Request body is required")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateTalk(ctx.Context(), identity.UserId, &req)
	if err != nil {
		if errors.Is(err, service.ErrTalkNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return err
	}

	return ctx.JSON(res)
}

func (c *talkController) DeleteTalk(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	talkIdParam := ctx.Query("talk_id")
	if talkIdParam == "" {
		return fiber.NewError(fiber.StatusBadRequest, "talk_id is required")
	}
	talkId, err := uuid.Parse(talkIdParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "talk_id is invalid")
	}

	if err := c.service.DeleteTalk(ctx.Context(), identity.UserId, talkId); err != nil {
		if errors.Is(err, service.ErrTalkNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return err
	}

	return ctx.JSON(fiber.Map{"message": "Talk and its messages deleted successfully"})
}
