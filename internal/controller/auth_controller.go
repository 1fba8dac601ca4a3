// FILE: internal/controller/auth_controller.go
package controller

import (
	"chatai-be/internal/dto"
	"chatai-be/internal/pkg/serverutils"
	"chatai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Post("/login", c.Login)
	r.Get("/me", authRequired, c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Could not verify"})
	}
	if req.Username == "" || req.Password == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Could not verify"})
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		// Unknown user and wrong password get the same answer.
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Could not verify"})
	}

	return ctx.JSON(res)
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)
	return ctx.JSON(dto.MeResponse{
		UserId: identity.UserId.String(),
		Email:  identity.Email,
		Name:   identity.Name,
	})
}
