package controller

import (
	"chatai-be/pkg/database"
	"chatai-be/pkg/n8n"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	db      *gorm.DB
	gateway n8n.Gateway
}

func NewHealthController(db *gorm.DB, gateway n8n.Gateway) IHealthController {
	return &healthController{db: db, gateway: gateway}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

// Health pings the database and probes the workflow engine. Only the
// database verdict decides healthy/unhealthy; n8n reachability is reported
// informationally since chat degrades gracefully without it.
func (c *healthController) Health(ctx *fiber.Ctx) error {
	n8nStatus := "unreachable"
	if c.gateway.CheckHealth() {
		n8nStatus = "reachable"
	}

	if err := database.Ping(c.db); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":   "unhealthy",
			"database": "disconnected",
			"n8n":      n8nStatus,
			"error":    err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{
		"status":   "healthy",
		"database": "connected",
		"n8n":      n8nStatus,
		"service":  "ChatAI API",
	})
}
