package handler

import "github.com/gofiber/fiber/v2"

// Health cho Render/UptimeRobot ping kiểm tra bot còn sống
func Health(c *fiber.Ctx) error {
	return c.SendString("Bot is alive")
}
