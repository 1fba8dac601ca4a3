package bootstrap

import (
	"chatai-be/internal/config"
	"chatai-be/internal/controller"
	"chatai-be/internal/pkg/logger"
	"chatai-be/internal/pkg/serverutils"
	"chatai-be/internal/repository/unitofwork"
	"chatai-be/internal/service"
	"chatai-be/pkg/n8n"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Container wires every dependency explicitly at process start. No package
// level singletons: the database handle and gateway client are constructed
// once here and injected downward.
type Container struct {
	AuthController    controller.IAuthController
	TalkController    controller.ITalkController
	MessageController controller.IMessageController
	HealthController  controller.IHealthController

	AuthRequired fiber.Handler
	Logger       logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Gateway
	gateway := n8n.NewClient(
		cfg.N8n.BaseURL,
		cfg.N8n.WebhookPath,
		cfg.N8n.TimeoutSeconds,
		sysLogger,
	)

	// 3. Services
	authService := service.NewAuthService(uowFactory, cfg.Jwt.Secret, cfg.Jwt.ExpiryMinutes)
	talkService := service.NewTalkService(uowFactory, gateway, sysLogger)
	messageService := service.NewMessageService(uowFactory, gateway, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		TalkController:    controller.NewTalkController(talkService),
		MessageController: controller.NewMessageController(messageService),
		HealthController:  controller.NewHealthController(db, gateway),

		AuthRequired: serverutils.NewJwtMiddleware(cfg.Jwt.Secret),
		Logger:       sysLogger,
	}
}
