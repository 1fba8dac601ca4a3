package controller

import (
	"errors"

	"chatai-be/internal/dto"
	"chatai-be/internal/pkg/serverutils"
	"chatai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	GetMessagesByTalk(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
}

type messageController struct {
	service service.IMessageService
}

func NewMessageController(service service.IMessageService) IMessageController {
	return &messageController{service: service}
}

func (c *messageController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Get("/messages-by-talk", authRequired, c.GetMessagesByTalk)
	r.Post("/message", authRequired, c.SendMessage)
}

func (c *messageController) GetMessagesByTalk(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	talkIdParam := ctx.Query("talk_id")
	if talkIdParam == "" {
		return fiber.NewError(fiber.StatusBadRequest, "talk_id is required as query parameter")
	}
	talkId, err := uuid.Parse(talkIdParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "talk_id is invalid")
	}

	res, err := c.service.GetMessagesByTalk(ctx.Context(), identity.UserId, talkId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *messageController) SendMessage(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Request body is required")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), identity.UserId, &req)
	if err != nil {
		if errors.Is(err, service.ErrTalkNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}
