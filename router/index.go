package router

import (
	"lunchbot/handler"
	"lunchbot/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, webhook *handler.Webhook, webhookSecret string) {
	app.Get("/health", handler.Health)
	app.Post("/", logger.New(), middleware.VerifyTelegramSecret(webhookSecret), webhook.Handle)
}
